package calendar

import (
	"time"

	"github.com/ami93120/mosque-calendar/internal/hijri"
)

// DayInfo is the composite classification of one day. Several flags can
// hold at once (a Friday that is also Eid and a public holiday); Label
// carries the most specific event name, with Eid overriding the rest.
type DayInfo struct {
	IsSchoolHoliday   bool
	SchoolHolidayName string
	IsPublicHoliday   bool
	IsNewMoon         bool
	IsEid             bool
	IsDST             bool
	// DSTDirection is "summer" (+1h) or "winter" (-1h) when IsDST.
	DSTDirection string
	Label        string
}

// DST labels as printed on the calendar.
const (
	labelSummerTime = "Heure d'été (+1h)"
	labelWinterTime = "Heure d'hiver (-1h)"
)

// Eid labels. Detection is calendar-based (1 Shawwal, 10 Dhu al-Hijjah);
// actual observance may shift by a day with the moon sighting.
const (
	LabelEidFitr = "Eid-ul-Fitr"
	LabelEidAdha = "Eid-ul-Adha"
)

// span is a compiled school-holiday interval in epoch milliseconds,
// start clamped to 00:00:00.000 and end to 23:59:59.999 local time.
type span struct {
	start int64
	end   int64
	name  string
}

// Classifier classifies days against a holiday calendar. The parsed
// interval list is compiled lazily on the first call after construction
// or invalidation and reused across a whole batch of dates.
type Classifier struct {
	loc    *time.Location
	parsed []span
	valid  bool
}

// NewClassifier creates a classifier resolving dates in loc.
func NewClassifier(loc *time.Location) *Classifier {
	if loc == nil {
		loc = time.Local
	}
	return &Classifier{loc: loc}
}

// Invalidate drops the compiled interval list. Must be called after the
// calendar's school-holiday data changes.
func (cl *Classifier) Invalidate() {
	cl.parsed = nil
	cl.valid = false
}

// compile parses the raw intervals once. Unparseable intervals are
// dropped rather than failing the whole batch.
func (cl *Classifier) compile(intervals []Interval) {
	cl.parsed = cl.parsed[:0]
	for _, iv := range intervals {
		start, err1 := time.ParseInLocation("2006-01-02", iv.Start, cl.loc)
		end, err2 := time.ParseInLocation("2006-01-02", iv.End, cl.loc)
		if err1 != nil || err2 != nil {
			continue
		}
		cl.parsed = append(cl.parsed, span{
			start: start.UnixMilli(),
			end:   end.AddDate(0, 0, 1).UnixMilli() - 1,
			name:  iv.Name,
		})
	}
	cl.valid = true
}

// Classify derives the day attributes for date given its Hijri
// equivalent and the holiday calendar. Pure apart from the lazily
// compiled interval cache.
func (cl *Classifier) Classify(date time.Time, h hijri.Date, cal *Calendar) DayInfo {
	var info DayInfo
	if cal == nil {
		return info
	}

	if !cl.valid {
		cl.compile(cal.SchoolHolidays)
	}

	// School holidays: first matching interval wins.
	t := date.UnixMilli()
	for _, s := range cl.parsed {
		if t >= s.start && t <= s.end {
			info.IsSchoolHoliday = true
			info.SchoolHolidayName = s.name
			break
		}
	}

	// Public holidays, keyed by the local calendar date.
	if name, ok := cal.PublicHolidays[date.Format("2006-01-02")]; ok {
		info.IsPublicHoliday = true
		info.Label = name
	}

	// EU DST transitions: last Sunday of March and October. The
	// day+7 > 31 check assumes a 31-day month; that holds for the two
	// months it fires in, and is a documented approximation otherwise.
	if date.Weekday() == time.Sunday && date.Day()+7 > 31 {
		switch date.Month() {
		case time.March:
			info.IsDST = true
			info.DSTDirection = "summer"
			info.Label = labelSummerTime
		case time.October:
			info.IsDST = true
			info.DSTDirection = "winter"
			info.Label = labelWinterTime
		}
	}

	// New moon and Eid, from the Hijri date.
	if h.Day == "1" {
		info.IsNewMoon = true
	}
	if h.Day == "1" && h.MonthKey == "shawwal" {
		info.IsEid = true
		info.Label = LabelEidFitr
	} else if h.Day == "10" && h.MonthKey == "dhu-al-hijjah" {
		info.IsEid = true
		info.Label = LabelEidAdha
	}

	return info
}
