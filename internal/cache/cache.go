// Package cache persists fetched holiday data between runs so the
// calendar renders correct data offline and the official APIs are hit
// at most once every 30 days.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ami93120/mosque-calendar/internal/calendar"
)

const (
	holidayFile = "holidays.json"
	// HolidayTTL is the freshness window for the cached holiday
	// snapshot. Official holiday data moves rarely; 30 days keeps the
	// render correct without hammering the APIs.
	HolidayTTL = 30 * 24 * time.Hour
)

// HolidayRecord is the persisted snapshot of fetched holiday data.
type HolidayRecord struct {
	// Timestamp is the fetch time in epoch milliseconds.
	Timestamp      int64               `json:"timestamp"`
	PublicHolidays map[string]string   `json:"publicHolidays"`
	SchoolHolidays []calendar.Interval `json:"schoolHolidays"`
}

// Store is a file-backed store rooted at a directory.
type Store struct {
	dir string
	// now is the clock, overridable in tests.
	now func() time.Time
}

// New creates a Store rooted at dir. If dir is empty it defaults to
// ~/.cache/mosque-calendar/.
func New(dir string) (*Store, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot determine home directory: %w", err)
		}
		dir = filepath.Join(home, ".cache", "mosque-calendar")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create cache directory %s: %w", dir, err)
	}

	return &Store{dir: dir, now: time.Now}, nil
}

// LoadHolidays reads the cached holiday snapshot. Returns nil when the
// cache is missing, unreadable, or older than the TTL.
func (s *Store) LoadHolidays() *HolidayRecord {
	data, err := os.ReadFile(filepath.Join(s.dir, holidayFile))
	if err != nil {
		return nil
	}

	var rec HolidayRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil
	}

	age := s.now().Sub(time.UnixMilli(rec.Timestamp))
	if age < 0 || age > HolidayTTL {
		return nil
	}
	return &rec
}

// SaveHolidays writes the holiday snapshot with the current timestamp.
func (s *Store) SaveHolidays(public map[string]string, school []calendar.Interval) error {
	rec := HolidayRecord{
		Timestamp:      s.now().UnixMilli(),
		PublicHolidays: public,
		SchoolHolidays: school,
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal holiday cache: %w", err)
	}

	path := filepath.Join(s.dir, holidayFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write holiday cache: %w", err)
	}
	return nil
}
