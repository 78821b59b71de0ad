package prayer

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"time"
)

// Overrides patch computed times for specific dates, keyed by local
// "YYYY-MM-DD". Mosques publish hand-adjusted Ramadan timetables; those
// override the astronomical result at render time.
type Overrides map[string]Times

// LoadOverrides reads an override file. A missing file is not an error:
// it simply means nothing is overridden.
func LoadOverrides(path string) (Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Overrides{}, nil
		}
		return nil, fmt.Errorf("failed to read overrides: %w", err)
	}

	var o Overrides
	if err := json.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("invalid overrides file %s: %w", path, err)
	}
	return o, nil
}

// Apply overlays any override for the given date onto t. Only non-empty
// override fields replace the computed value.
func (o Overrides) Apply(date time.Time, t Times) Times {
	ov, ok := o[date.Format("2006-01-02")]
	if !ok {
		return t
	}
	if ov.Fajr != "" {
		t.Fajr = ov.Fajr
	}
	if ov.Sunrise != "" {
		t.Sunrise = ov.Sunrise
	}
	if ov.Dhuhr != "" {
		t.Dhuhr = ov.Dhuhr
	}
	if ov.Asr != "" {
		t.Asr = ov.Asr
	}
	if ov.Maghrib != "" {
		t.Maghrib = ov.Maghrib
	}
	if ov.Isha != "" {
		t.Isha = ov.Isha
	}
	return t
}

// columnSep splits override table rows on tabs, commas, or semicolons,
// whichever the spreadsheet export produced.
var columnSep = regexp.MustCompile(`[\t,;]+`)

// ParseOverrideTable converts a delimited timetable into Overrides. Each
// data row holds the six times in order (Fajr, Sunrise, Dhuhr, Asr,
// Maghrib, Isha); the first row is assigned to start and each following
// row to the next day. Blank lines and header rows are skipped; rows
// with fewer than six columns are reported but do not abort the run.
func ParseOverrideTable(r io.Reader, start time.Time) (Overrides, []string, error) {
	overrides := Overrides{}
	var skipped []string
	cursor := start

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || isHeaderRow(line) {
			continue
		}

		cols := columnSep.Split(line, -1)
		for i := range cols {
			cols[i] = strings.TrimSpace(cols[i])
		}
		if len(cols) < 6 {
			skipped = append(skipped, fmt.Sprintf("line %d: expected 6 columns, got %d", lineNo, len(cols)))
			continue
		}

		overrides[cursor.Format("2006-01-02")] = Times{
			Fajr:    cols[0],
			Sunrise: cols[1],
			Dhuhr:   cols[2],
			Asr:     cols[3],
			Maghrib: cols[4],
			Isha:    cols[5],
		}
		cursor = cursor.AddDate(0, 0, 1)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to read override table: %w", err)
	}

	return overrides, skipped, nil
}

// isHeaderRow detects column-title rows exported along with the data.
func isHeaderRow(line string) bool {
	l := strings.ToLower(line)
	return strings.HasPrefix(l, "fajr") || strings.HasPrefix(l, "date")
}

// WriteJSON emits the overrides as indented JSON with sorted date keys.
func (o Overrides) WriteJSON(w io.Writer) error {
	data, err := json.MarshalIndent(o, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal overrides: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write overrides: %w", err)
	}
	return nil
}
