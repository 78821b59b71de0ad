package hijri

import (
	"fmt"
	"math"
	"time"
)

// kuwaitiEngine is the deterministic tabular fallback. It derives the
// Islamic civil date from the Julian day number (the so-called Kuwaiti
// algorithm) without touching any locale machinery, so it behaves the
// same on every platform.
type kuwaitiEngine struct{}

func (kuwaitiEngine) Parts(t time.Time) (Parts, error) {
	year, month, day := t.Date()
	if year < 1 {
		return Parts{}, fmt.Errorf("year %d predates the tabular calendar", year)
	}

	d, m, y := kuwaitiDate(year, int(month), day)
	return Parts{Day: d, MonthIndex: m, Year: y}, nil
}

// Tabular constants: a 30-year cycle holds 10631 days, and the civil
// epoch sits 8.01/60 days after the astronomical one.
const (
	lunarCycleDays = 10631
	meanLunarYear  = 10631.0 / 30.0
	epochAstro     = 1948084
	epochShift     = 8.01 / 60.0
)

// kuwaitiDate converts a Gregorian date to the tabular Islamic civil
// date. Returns (day, month 1-12, year).
func kuwaitiDate(gy, gm, gd int) (int, int, int) {
	m, y := gm, gy
	if m < 3 {
		y--
		m += 12
	}

	// Gregorian correction does not apply before 1583.
	b := 0
	if y >= 1583 {
		a := int(math.Floor(float64(y) / 100))
		b = 2 - a + int(math.Floor(float64(a)/4))
	}

	jd := int(math.Floor(365.25*float64(y+4716))) +
		int(math.Floor(30.6001*float64(m+1))) +
		gd + b - 1524

	z := float64(jd - epochAstro)
	cyc := math.Floor(z / lunarCycleDays)
	z -= lunarCycleDays * cyc
	j := math.Floor((z - epochShift) / meanLunarYear)
	iy := int(30*cyc) + int(j)
	z -= math.Floor(j*meanLunarYear + epochShift)

	im := int(math.Floor((z + 28.5001) / 29.5))
	if im == 13 {
		im = 12
	}
	id := int(z) - int(math.Floor(29.5001*float64(im)-29))

	return id, im, iy
}
