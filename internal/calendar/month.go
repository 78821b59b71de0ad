package calendar

import (
	"time"

	"github.com/ami93120/mosque-calendar/internal/hijri"
	"github.com/ami93120/mosque-calendar/internal/prayer"
)

// DayRow is one rendered day: the Gregorian date, its Hijri equivalent,
// the classified attributes, and the (possibly overridden) prayer times.
type DayRow struct {
	Date     time.Time
	Hijri    hijri.Date
	Info     DayInfo
	Times    prayer.Times
	IsFriday bool
}

// Legend summarizes the events present in a month so the rendered page
// only shows the relevant legend entries.
type Legend struct {
	// DST is the transition label when the month is March or October.
	DST string
	// Eid is the Eid label when the month contains one.
	Eid string
	// SchoolHolidayNames lists the distinct vacation period names, in
	// order of first appearance.
	SchoolHolidayNames []string
	HasPublicHoliday   bool
	// NewMoonMonth is the French name of the lunar month starting
	// within this month, if any.
	NewMoonMonth string
}

// Title is the Hijri month span heading: a single month ("Rajab 1448")
// or both when the lunar month changes mid-month ("Rajab / Chaabane
// 1448"), rendered in French and Arabic.
type Title struct {
	HijriFR string
	HijriAR string
}

// MonthView is everything a monthly page needs, in render order.
type MonthView struct {
	Year   int
	Month  time.Month
	Days   []DayRow
	Legend Legend
	Title  Title
}

// BuildMonth assembles the view for one Gregorian month. The calculator
// may be uninitialized, in which case every row carries the sentinel
// times.
func BuildMonth(year int, month time.Month, conv *hijri.Converter, calc *prayer.Calculator,
	cls *Classifier, cal *Calendar, ov prayer.Overrides, loc *time.Location) MonthView {

	if loc == nil {
		loc = time.Local
	}
	view := MonthView{Year: year, Month: month}

	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, loc)
		h := conv.Convert(date)
		info := cls.Classify(date, h, cal)

		times := calc.ComputeTimes(date)
		if ov != nil {
			times = ov.Apply(date, times)
		}

		view.Days = append(view.Days, DayRow{
			Date:     date,
			Hijri:    h,
			Info:     info,
			Times:    times,
			IsFriday: date.Weekday() == time.Friday,
		})
	}

	view.Legend = buildLegend(month, view.Days)
	view.Title = buildTitle(view.Days)
	return view
}

func buildLegend(month time.Month, days []DayRow) Legend {
	var l Legend
	switch month {
	case time.March:
		l.DST = labelSummerTime
	case time.October:
		l.DST = labelWinterTime
	}

	seen := make(map[string]bool)
	for _, d := range days {
		if d.Info.IsEid && l.Eid == "" {
			l.Eid = d.Info.Label
		}
		if d.Info.IsPublicHoliday {
			l.HasPublicHoliday = true
		}
		if d.Info.IsSchoolHoliday && d.Info.SchoolHolidayName != "" && !seen[d.Info.SchoolHolidayName] {
			seen[d.Info.SchoolHolidayName] = true
			l.SchoolHolidayNames = append(l.SchoolHolidayNames, d.Info.SchoolHolidayName)
		}
		if d.Info.IsNewMoon && l.NewMoonMonth == "" {
			l.NewMoonMonth = d.Hijri.MonthFR
		}
	}
	return l
}

func buildTitle(days []DayRow) Title {
	if len(days) == 0 {
		return Title{}
	}
	start, end := days[0].Hijri, days[len(days)-1].Hijri
	if start.MonthFR == "" || end.MonthFR == "" {
		return Title{}
	}
	if start.MonthFR == end.MonthFR {
		return Title{
			HijriFR: start.MonthFR + " " + start.Year,
			HijriAR: start.MonthAR + " " + start.YearAR,
		}
	}
	return Title{
		HijriFR: start.MonthFR + " / " + end.MonthFR + " " + end.Year,
		HijriAR: start.MonthAR + " / " + end.MonthAR + " " + end.YearAR,
	}
}

// BuildRamadan scans a Gregorian year for the days of Ramadan and
// returns their rows along with the Hijri year in Arabic digits. The
// scan runs day by day so a Ramadan straddling the year boundary still
// yields the days falling within the requested year.
func BuildRamadan(year int, conv *hijri.Converter, calc *prayer.Calculator,
	ov prayer.Overrides, loc *time.Location) ([]DayRow, string) {

	if loc == nil {
		loc = time.Local
	}

	var rows []DayRow
	var hijriYearAR string

	for date := time.Date(year, time.January, 1, 0, 0, 0, 0, loc); date.Year() == year; date = date.AddDate(0, 0, 1) {
		h := conv.Convert(date)
		if h.MonthKey != "ramadan" {
			continue
		}
		if hijriYearAR == "" {
			hijriYearAR = h.YearAR
		}

		times := calc.ComputeTimes(date)
		if ov != nil {
			times = ov.Apply(date, times)
		}

		rows = append(rows, DayRow{
			Date:     date,
			Hijri:    h,
			Times:    times,
			IsFriday: date.Weekday() == time.Friday,
		})
	}
	return rows, hijriYearAR
}
