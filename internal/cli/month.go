package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ami93120/mosque-calendar/internal/calendar"
	"github.com/ami93120/mosque-calendar/internal/display"
)

var (
	flagYear  int
	flagMonth int
)

func newMonthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "month",
		Short: "Render one month of the calendar",
		Long:  "Render the monthly prayer-time table with Hijri dates, holiday\nmarkers, and legends. Defaults to the current month.",
		RunE:  runMonth,
	}
	cmd.Flags().IntVar(&flagYear, "year", 0, "Gregorian year (default: current)")
	cmd.Flags().IntVar(&flagMonth, "month", 0, "Month 1-12 (default: current)")
	return cmd
}

func runMonth(cmd *cobra.Command, args []string) error {
	ctx, err := newRenderContext()
	if err != nil {
		return err
	}

	now := time.Now().In(ctx.loc)
	year, month := flagYear, flagMonth
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	if month < 1 || month > 12 {
		return fmt.Errorf("invalid month %d: must be 1-12", month)
	}

	renderThenRefresh(ctx, func() {
		printClientHeader(ctx.client)
		view := calendar.BuildMonth(year, time.Month(month), ctx.conv, ctx.calc,
			ctx.cls, ctx.cal, ctx.ov, ctx.loc)
		printMonth(view)
		printClientFooter(ctx.client)
	})
	return nil
}

// printMonth renders one monthly page: title, day table, legends.
func printMonth(view calendar.MonthView) {
	fmt.Println()
	title := fmt.Sprintf("%s %d", frMonths[view.Month-1], view.Year)
	if view.Title.HijriFR != "" {
		title += "  —  " + view.Title.HijriFR
	}
	fmt.Printf("  %s\n", display.Bold(title))
	if view.Title.HijriAR != "" {
		fmt.Printf("  %s\n", view.Title.HijriAR)
	}
	fmt.Println()

	table := display.NewTable([]string{
		"Date", "Fajr", "Sunrise", "Dhuhr", "Asr", "Maghrib", "Isha", "Hijri", "",
	})
	for _, d := range view.Days {
		table.AddRow(dayCells(d), dayStyle(d))
	}
	fmt.Print(table.Render())

	printLegend(view.Legend)
}

// dayCells formats one table row for a day.
func dayCells(d calendar.DayRow) []string {
	dateStr := fmt.Sprintf("%s %02d", frDaysShort[mondayIndex(int(d.Date.Weekday()))], d.Date.Day())

	var marks []string
	if d.Info.IsNewMoon {
		marks = append(marks, "●")
	}
	if d.Info.Label != "" {
		marks = append(marks, d.Info.Label)
	}

	return []string{
		dateStr,
		d.Times.Fajr, d.Times.Sunrise, d.Times.Dhuhr,
		d.Times.Asr, d.Times.Maghrib, d.Times.Isha,
		d.Hijri.Day,
		strings.Join(marks, " "),
	}
}

// dayStyle picks the row color. Eid renders like Friday; holidays only
// color the row when nothing more specific applies.
func dayStyle(d calendar.DayRow) display.Style {
	switch {
	case d.Info.IsEid, d.IsFriday:
		return display.Friday
	case d.Info.IsSchoolHoliday:
		return display.Holiday
	case d.Info.IsPublicHoliday:
		return display.PublicHoliday
	default:
		return nil
	}
}

// printLegend prints only the legend entries the month needs.
func printLegend(l calendar.Legend) {
	var lines []string
	if l.DST != "" {
		lines = append(lines, "⏱ "+l.DST)
	}
	if l.Eid != "" {
		lines = append(lines, "★ "+l.Eid)
	}
	if l.NewMoonMonth != "" {
		lines = append(lines, "● Nouvelle lune : "+l.NewMoonMonth)
	}
	if len(l.SchoolHolidayNames) > 0 {
		lines = append(lines, "Vacances : "+strings.Join(l.SchoolHolidayNames, " / "))
	}
	if l.HasPublicHoliday {
		lines = append(lines, "Jour férié")
	}
	if len(lines) == 0 {
		return
	}

	fmt.Println()
	for _, line := range lines {
		fmt.Printf("  %s\n", display.Event(line))
	}
	fmt.Println()
}

// parseYearArg parses an optional positional year argument.
func parseYearArg(args []string, fallback int) (int, error) {
	if len(args) == 0 {
		return fallback, nil
	}
	y, err := strconv.Atoi(args[0])
	if err != nil || y < 1 {
		return 0, fmt.Errorf("invalid year %q", args[0])
	}
	return y, nil
}
