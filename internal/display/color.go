// Package display renders the calendar views as aligned terminal
// tables, using raw ANSI escape codes. It respects the NO_COLOR
// convention (https://no-color.org/) and disables styling when stdout
// is piped or redirected.
package display

import "os"

// ANSI escape codes.
const (
	reset   = "\033[0m"
	bold    = "\033[1m"
	dim     = "\033[2m"
	green   = "\033[32m"
	yellow  = "\033[33m"
	magenta = "\033[35m"
	cyan    = "\033[36m"
)

// enabled reports whether color output is active. Set once at init.
var enabled bool

func init() {
	enabled = shouldEnable()
}

func shouldEnable() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	// FORCE_COLOR wins over terminal detection, for testing.
	if _, ok := os.LookupEnv("FORCE_COLOR"); ok {
		return true
	}
	return isTerminal(os.Stdout)
}

// isTerminal checks for a character device without cgo or extra deps.
func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

// SetEnabled overrides the auto-detected color state.
func SetEnabled(b bool) {
	enabled = b
}

func wrap(code, text string) string {
	if !enabled {
		return text
	}
	return code + text + reset
}

// Bold returns text rendered in bold.
func Bold(text string) string { return wrap(bold, text) }

// Dim returns text rendered in dim/faint.
func Dim(text string) string { return wrap(dim, text) }

// Friday highlights Friday and Eid rows (bold green, the print
// calendar's "special day" treatment).
func Friday(text string) string { return wrap(bold+green, text) }

// Holiday marks school-holiday rows.
func Holiday(text string) string { return wrap(yellow, text) }

// PublicHoliday marks public-holiday rows.
func PublicHoliday(text string) string { return wrap(magenta, text) }

// Event styles legend and event labels.
func Event(text string) string { return wrap(cyan, text) }
