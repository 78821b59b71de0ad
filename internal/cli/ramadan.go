package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ami93120/mosque-calendar/internal/calendar"
	"github.com/ami93120/mosque-calendar/internal/display"
)

func newRamadanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ramadan [YYYY]",
		Short: "Render the Ramadan timetable",
		Long:  "Render the daily Ramadan timetable for the given Gregorian year\n(default: current year). Hand-published timetables passed via\n--overrides replace the computed times.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRamadan,
	}
}

func runRamadan(cmd *cobra.Command, args []string) error {
	ctx, err := newRenderContext()
	if err != nil {
		return err
	}

	year, err := parseYearArg(args, time.Now().In(ctx.loc).Year())
	if err != nil {
		return err
	}

	rows, hijriYearAR := calendar.BuildRamadan(year, ctx.conv, ctx.calc, ctx.ov, ctx.loc)
	if len(rows) == 0 {
		return fmt.Errorf("no Ramadan days found in %d", year)
	}

	printClientHeader(ctx.client)
	fmt.Println()
	title := fmt.Sprintf("Ramadan %d", year)
	if hijriYearAR != "" {
		title += "  —  " + rows[0].Hijri.MonthAR + " " + hijriYearAR
	}
	fmt.Printf("  %s\n", display.Bold(title))
	fmt.Println()

	table := display.NewTable([]string{
		"Jour", "Date", "Fajr", "Sunrise", "Dhuhr", "Asr", "Maghrib", "Isha", "Hijri",
	})
	for _, d := range rows {
		var style display.Style
		if d.IsFriday {
			style = display.Friday
		}
		table.AddRow([]string{
			frDaysShort[mondayIndex(int(d.Date.Weekday()))],
			fmt.Sprintf("%02d %s", d.Date.Day(), frMonths[d.Date.Month()-1]),
			d.Times.Fajr, d.Times.Sunrise, d.Times.Dhuhr,
			d.Times.Asr, d.Times.Maghrib, d.Times.Isha,
			d.Hijri.Day,
		}, style)
	}
	fmt.Print(table.Render())
	fmt.Println()
	printClientFooter(ctx.client)
	return nil
}
