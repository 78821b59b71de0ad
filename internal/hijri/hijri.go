// Package hijri converts Gregorian dates to the Islamic civil calendar.
//
// The primary path goes through an arithmetic calendar engine whose month
// names (spelling varies wildly across engines and locales) are normalized
// against a canonical 12-month table. A capability probe falls back to a
// deterministic tabular algorithm when the engine returns implausible
// years. Conversion never panics: bad input yields the Unknown sentinel.
package hijri

import (
	"strconv"
	"time"
)

// Date is a fully resolved Hijri date ready for rendering.
type Date struct {
	// Day is the day of the lunar month as decimal digits, or "?" when
	// the conversion failed.
	Day string
	// MonthFR and MonthAR are the display names. For an unrecognized
	// month spelling both carry the raw engine output unchanged.
	MonthFR string
	MonthAR string
	// MonthKey is the canonical month identifier, empty when the month
	// could not be resolved.
	MonthKey string
	// Year is the Hijri year in Latin digits, YearAR the same in
	// Eastern Arabic digits.
	Year   string
	YearAR string
}

// Unknown is returned whenever a conversion fails.
var Unknown = Date{Day: "?"}

// Converter memoizes Gregorian-to-Hijri conversions per exact timestamp.
// The cache is append-only for the lifetime of the converter; callers
// iterate over a bounded set of dates (at most one year per run), so no
// eviction is needed.
type Converter struct {
	engine Engine
	cache  map[int64]Date
}

// NewConverter probes the primary calendar engine and falls back to the
// tabular algorithm if it is unreliable on this platform.
func NewConverter() *Converter {
	var eng Engine = civilEngine{}
	if !engineReliable(eng) {
		eng = kuwaitiEngine{}
	}
	return NewConverterWith(eng, nil)
}

// NewTabularConverter builds a converter on the deterministic tabular
// algorithm, bypassing the engine probe. Useful when results must be
// identical across platforms.
func NewTabularConverter() *Converter {
	return NewConverterWith(kuwaitiEngine{}, nil)
}

// NewConverterWith builds a converter around an explicit engine and
// memoization map. A nil cache allocates a fresh one; passing a shared
// map lets tests observe hits and reset state between cases.
func NewConverterWith(engine Engine, cache map[int64]Date) *Converter {
	if cache == nil {
		cache = make(map[int64]Date)
	}
	return &Converter{engine: engine, cache: cache}
}

// Fallback reports whether the converter runs on the tabular fallback
// rather than the primary engine.
func (c *Converter) Fallback() bool {
	_, ok := c.engine.(kuwaitiEngine)
	return ok
}

// Convert returns the Hijri date for t. Results are memoized keyed by
// the exact millisecond timestamp; failures return Unknown and are not
// cached.
func (c *Converter) Convert(t time.Time) Date {
	key := t.UnixMilli()
	if d, ok := c.cache[key]; ok {
		return d
	}

	parts, err := c.engine.Parts(t)
	if err != nil {
		return Unknown
	}
	if parts.Day < 1 || parts.Day > 30 || parts.Year < 1 {
		return Unknown
	}

	d := Date{
		Day:    strconv.Itoa(parts.Day),
		Year:   strconv.Itoa(parts.Year),
		YearAR: ToArabicDigits(strconv.Itoa(parts.Year)),
	}

	switch {
	case parts.MonthIndex != 0:
		m, ok := MonthByIndex(parts.MonthIndex)
		if !ok {
			return Unknown
		}
		d.MonthFR, d.MonthAR, d.MonthKey = m.French, m.Arabic, m.Key
	default:
		if m, ok := MonthByName(parts.MonthName); ok {
			d.MonthFR, d.MonthAR, d.MonthKey = m.French, m.Arabic, m.Key
		} else {
			// Best-effort degradation: keep the raw spelling rather
			// than dropping the month entirely.
			d.MonthFR, d.MonthAR = parts.MonthName, parts.MonthName
		}
	}

	c.cache[key] = d
	return d
}
