// Package prayer computes the six daily prayer times for the configured
// location. It is a thin adapter over the adhango astronomical solver:
// domain configuration maps onto solver parameters, and the solver's
// instants come back as zero-padded "HH:MM" strings with a "--:--"
// sentinel for anything that could not be computed.
package prayer

import (
	"fmt"

	"time"

	calc "github.com/mnadev/adhango/pkg/calc"
	data "github.com/mnadev/adhango/pkg/data"
	util "github.com/mnadev/adhango/pkg/util"
)

// Unset marks a prayer time that could not be computed, either because
// the calculator was never initialized or the solver produced an
// invalid instant. Callers render it as a placeholder.
const Unset = "--:--"

// Times holds one day's prayer times as "HH:MM" strings.
type Times struct {
	Fajr    string `json:"fajr"`
	Sunrise string `json:"sunrise"`
	Dhuhr   string `json:"dhuhr"`
	Asr     string `json:"asr"`
	Maghrib string `json:"maghrib"`
	Isha    string `json:"isha"`
}

// allUnset is the result of computing without an initialized calculator.
var allUnset = Times{
	Fajr: Unset, Sunrise: Unset, Dhuhr: Unset,
	Asr: Unset, Maghrib: Unset, Isha: Unset,
}

// Adjustments are per-prayer manual corrections in minutes, applied on
// top of the astronomical result (mosques round or shift announcements).
type Adjustments struct {
	Fajr    int `json:"fajr"`
	Sunrise int `json:"sunrise"`
	Dhuhr   int `json:"dhuhr"`
	Asr     int `json:"asr"`
	Maghrib int `json:"maghrib"`
	Isha    int `json:"isha"`
}

// Config carries the location and method parameters for one deployment.
type Config struct {
	Latitude  float64
	Longitude float64
	// AsrMethod selects the juristic method for Asr: "Shafi" (default)
	// or "Hanafi".
	AsrMethod string
	// Timezone is the IANA zone the printed times are local to.
	Timezone    string
	Adjustments Adjustments
}

// Calculator wraps the solver with fixed domain parameters: Fajr and
// Isha twilight angles at 18 degrees and the seventh-of-the-night high
// latitude rule, which keeps summer Isha out of degenerate windows at
// this latitude.
type Calculator struct {
	cfg    Config
	coords *util.Coordinates
	params *calc.CalculationParameters
	loc    *time.Location
}

// Initialize configures the calculation context. It is idempotent: a
// second call with an unchanged config keeps the existing context.
func (c *Calculator) Initialize(cfg Config) error {
	if c.coords != nil && cfg == c.cfg {
		return nil
	}

	coords, err := util.NewCoordinates(cfg.Latitude, cfg.Longitude)
	if err != nil {
		return fmt.Errorf("invalid coordinates: %w", err)
	}

	loc := time.Local
	if cfg.Timezone != "" {
		loc, err = time.LoadLocation(cfg.Timezone)
		if err != nil {
			return fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
		}
	}

	params := calc.GetMethodParameters(calc.MUSLIM_WORLD_LEAGUE)
	params.FajrAngle = 18
	params.IshaAngle = 18
	params.HighLatitudeRule = calc.SEVENTH_OF_THE_NIGHT
	if cfg.AsrMethod == "Hanafi" {
		params.Madhab = calc.HANAFI
	} else {
		params.Madhab = calc.SHAFI_HANBALI_MALIKI
	}
	params.Adjustments = calc.PrayerAdjustments{
		FajrAdj:    cfg.Adjustments.Fajr,
		SunriseAdj: cfg.Adjustments.Sunrise,
		DhuhrAdj:   cfg.Adjustments.Dhuhr,
		AsrAdj:     cfg.Adjustments.Asr,
		MaghribAdj: cfg.Adjustments.Maghrib,
		IshaAdj:    cfg.Adjustments.Isha,
	}

	c.cfg = cfg
	c.coords = coords
	c.params = params
	c.loc = loc
	return nil
}

// Initialized reports whether Initialize has succeeded at least once.
func (c *Calculator) Initialized() bool {
	return c.coords != nil && c.params != nil
}

// ComputeTimes returns the prayer times for the civil date of t. Before
// a successful Initialize it returns the all-sentinel result so callers
// can render placeholders instead of failing.
func (c *Calculator) ComputeTimes(t time.Time) Times {
	if !c.Initialized() {
		return allUnset
	}

	pt, err := calc.NewPrayerTimes(c.coords, data.NewDateComponents(t), c.params)
	if err != nil {
		return allUnset
	}
	if c.cfg.Timezone != "" {
		if err := pt.SetTimeZone(c.cfg.Timezone); err != nil {
			return allUnset
		}
	}

	return Times{
		Fajr:    formatClock(pt.Fajr),
		Sunrise: formatClock(pt.Sunrise),
		Dhuhr:   formatClock(pt.Dhuhr),
		Asr:     formatClock(pt.Asr),
		Maghrib: formatClock(pt.Maghrib),
		Isha:    formatClock(pt.Isha),
	}
}

// Location returns the time zone the calculator renders times in.
func (c *Calculator) Location() *time.Location {
	if c.loc == nil {
		return time.Local
	}
	return c.loc
}

// formatClock renders an instant as zero-padded 24-hour "HH:MM",
// substituting the sentinel for the zero value.
func formatClock(t time.Time) string {
	if t.IsZero() {
		return Unset
	}
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}
