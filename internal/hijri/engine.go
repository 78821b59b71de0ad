package hijri

import (
	"fmt"
	"time"

	gohijri "github.com/hablullah/go-hijri"
)

// Parts is the raw output of a calendar engine before normalization.
// Engines report the month either by name (MonthName, spelling varies by
// engine and locale) or by 1-based position (MonthIndex). When both are
// set, the index wins.
type Parts struct {
	Day        int
	MonthName  string
	MonthIndex int
	Year       int
}

// Engine converts a Gregorian instant into raw Hijri date parts.
type Engine interface {
	Parts(t time.Time) (Parts, error)
}

// civilEngine is the primary conversion path, backed by the go-hijri
// arithmetic calendar. Two corrections bring it onto the Islamic civil
// reference: the conversion runs on the instant's own calendar date
// (go-hijri truncates in UTC, which would slide Paris midnights onto
// the previous Gregorian day), and one day is added because go-hijri's
// Default pattern counts from the astronomical epoch, one day before
// the civil one. It reports months by their French names, the way the
// calendar has always displayed them, so the result still flows through
// the variant-normalization table.
type civilEngine struct{}

func (civilEngine) Parts(t time.Time) (Parts, error) {
	y, m, day := t.Date()
	at := time.Date(y, m, day, 12, 0, 0, 0, time.UTC).AddDate(0, 0, 1)

	d, err := gohijri.CreateHijriDate(at, gohijri.Default)
	if err != nil {
		return Parts{}, fmt.Errorf("civil conversion: %w", err)
	}
	if d.Month < 1 || d.Month > 12 {
		return Parts{}, fmt.Errorf("civil conversion: month %d out of range", d.Month)
	}
	return Parts{
		Day:       int(d.Day),
		MonthName: Months[d.Month-1].French,
		Year:      int(d.Year),
	}, nil
}

// probeDate is a fixed reference used to judge engine plausibility.
var probeDate = time.Date(2026, time.July, 1, 12, 0, 0, 0, time.UTC)

// engineReliable checks the engine against the tabular reference on the
// probe date. An engine that disagrees on any part (wrong epoch anchor,
// timezone truncation, an echoed Gregorian year) must not be trusted,
// because every lunar marker on the rendered pages would shift with it.
func engineReliable(e Engine) bool {
	p, err := e.Parts(probeDate)
	if err != nil {
		return false
	}

	wantDay, wantMonth, wantYear := kuwaitiDate(probeDate.Year(), int(probeDate.Month()), probeDate.Day())
	if p.Day != wantDay || p.Year != wantYear {
		return false
	}
	if p.MonthIndex != 0 {
		return p.MonthIndex == wantMonth
	}
	m, ok := MonthByName(p.MonthName)
	return ok && m.Key == Months[wantMonth-1].Key
}
