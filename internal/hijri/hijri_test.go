package hijri

import (
	"errors"
	"testing"
	"time"
)

// stubEngine records calls and replays a scripted response.
type stubEngine struct {
	parts Parts
	err   error
	calls int
}

func (s *stubEngine) Parts(time.Time) (Parts, error) {
	s.calls++
	return s.parts, s.err
}

func TestConverter_Convert(t *testing.T) {
	conv := NewConverterWith(kuwaitiEngine{}, nil)

	got := conv.Convert(time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC))
	want := Date{
		Day:      "23",
		MonthFR:  "Rajab",
		MonthAR:  "رجب",
		MonthKey: "rajab",
		Year:     "1448",
		YearAR:   "١٤٤٨",
	}
	if got != want {
		t.Errorf("Convert(2027-01-01) = %+v, want %+v", got, want)
	}
}

func TestConverter_MemoizesPerTimestamp(t *testing.T) {
	eng := &stubEngine{parts: Parts{Day: 1, MonthIndex: 10, Year: 1448}}
	cache := make(map[int64]Date)
	conv := NewConverterWith(eng, cache)

	at := time.Date(2027, time.March, 9, 0, 0, 0, 0, time.UTC)
	first := conv.Convert(at)
	second := conv.Convert(at)

	if first != second {
		t.Errorf("repeated conversion differs: %+v vs %+v", first, second)
	}
	if eng.calls != 1 {
		t.Errorf("engine called %d times, want 1", eng.calls)
	}
	if _, ok := cache[at.UnixMilli()]; !ok {
		t.Error("result missing from memoization map")
	}

	// A different instant is a different key.
	conv.Convert(at.Add(time.Hour))
	if eng.calls != 2 {
		t.Errorf("engine called %d times after new instant, want 2", eng.calls)
	}
}

func TestConverter_FailuresReturnUnknownUncached(t *testing.T) {
	eng := &stubEngine{err: errors.New("engine broken")}
	conv := NewConverterWith(eng, nil)

	at := time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC)
	if got := conv.Convert(at); got != Unknown {
		t.Errorf("Convert on erroring engine = %+v, want Unknown", got)
	}
	conv.Convert(at)
	if eng.calls != 2 {
		t.Errorf("failed conversion was cached: engine called %d times, want 2", eng.calls)
	}
}

func TestConverter_RejectsImplausibleParts(t *testing.T) {
	tests := []struct {
		name  string
		parts Parts
	}{
		{"day zero", Parts{Day: 0, MonthIndex: 1, Year: 1448}},
		{"day 31", Parts{Day: 31, MonthIndex: 1, Year: 1448}},
		{"year zero", Parts{Day: 1, MonthIndex: 1, Year: 0}},
		{"month 13", Parts{Day: 1, MonthIndex: 13, Year: 1448}},
	}

	at := time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC)
	for _, tt := range tests {
		conv := NewConverterWith(&stubEngine{parts: tt.parts}, nil)
		if got := conv.Convert(at); got != Unknown {
			t.Errorf("%s: Convert = %+v, want Unknown", tt.name, got)
		}
	}
}

func TestConverter_UnknownSpellingPassesThrough(t *testing.T) {
	eng := &stubEngine{parts: Parts{Day: 5, MonthName: "Frimaire", Year: 1448}}
	conv := NewConverterWith(eng, nil)

	got := conv.Convert(time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC))
	if got.MonthFR != "Frimaire" || got.MonthAR != "Frimaire" {
		t.Errorf("unknown month names = %q/%q, want raw passthrough", got.MonthFR, got.MonthAR)
	}
	if got.MonthKey != "" {
		t.Errorf("unknown month resolved to key %q, want empty", got.MonthKey)
	}
	if got.Day != "5" || got.Year != "1448" {
		t.Errorf("day/year = %q/%q, want 5/1448", got.Day, got.Year)
	}
}

func TestConverter_IndexWinsOverName(t *testing.T) {
	eng := &stubEngine{parts: Parts{Day: 1, MonthName: "Rajab", MonthIndex: 9, Year: 1448}}
	conv := NewConverterWith(eng, nil)

	got := conv.Convert(time.Date(2027, time.February, 7, 0, 0, 0, 0, time.UTC))
	if got.MonthKey != "ramadan" {
		t.Errorf("MonthKey = %q, want ramadan (index takes precedence)", got.MonthKey)
	}
}

func TestEngineReliable(t *testing.T) {
	if !engineReliable(civilEngine{}) {
		t.Error("civil engine judged unreliable")
	}
	// 2026-07-01 is 16 Muharram 1448 on the tabular reference; an engine
	// matching it by index or by name passes.
	byIndex := &stubEngine{parts: Parts{Day: 16, MonthIndex: 1, Year: 1448}}
	if !engineReliable(byIndex) {
		t.Error("engine matching the reference by index judged unreliable")
	}
	byName := &stubEngine{parts: Parts{Day: 16, MonthName: "mouharram", Year: 1448}}
	if !engineReliable(byName) {
		t.Error("engine matching the reference by name judged unreliable")
	}

	// Off by a single day means every lunar marker shifts: rejected.
	offByOne := &stubEngine{parts: Parts{Day: 15, MonthIndex: 1, Year: 1448}}
	if engineReliable(offByOne) {
		t.Error("engine one day off the reference judged reliable")
	}
	echo := &stubEngine{parts: Parts{Day: 16, MonthIndex: 1, Year: probeDate.Year()}}
	if engineReliable(echo) {
		t.Error("Gregorian-echoing engine judged reliable")
	}
	broken := &stubEngine{err: errors.New("no calendar data")}
	if engineReliable(broken) {
		t.Error("erroring engine judged reliable")
	}
}

// civilFixedPoints are the reference dates every engine must agree on,
// fed as local-midnight instants the way the view builders construct
// them.
var civilFixedPoints = []struct {
	gregorian string
	day       string
	monthKey  string
	year      string
}{
	{"2027-01-01", "23", "rajab", "1448"},
	{"2026-06-16", "1", "muharram", "1448"},
	{"2027-02-07", "1", "ramadan", "1448"},
	{"2027-03-09", "1", "shawwal", "1448"},   // Eid-ul-Fitr
	{"2027-05-16", "10", "dhu-al-hijjah", "1448"}, // Eid-ul-Adha
}

func TestCivilEngine_FixedPoints(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Fatal(err)
	}
	conv := NewConverterWith(civilEngine{}, nil)

	for _, tt := range civilFixedPoints {
		date, err := time.ParseInLocation("2006-01-02", tt.gregorian, loc)
		if err != nil {
			t.Fatal(err)
		}
		got := conv.Convert(date)
		if got.Day != tt.day || got.MonthKey != tt.monthKey || got.Year != tt.year {
			t.Errorf("civil %s = %s %s %s, want %s %s %s",
				tt.gregorian, got.Day, got.MonthKey, got.Year, tt.day, tt.monthKey, tt.year)
		}
	}
}

func TestNewConverter_MatchesReference(t *testing.T) {
	conv := NewConverter()
	if conv.Fallback() {
		t.Error("converter fell back to the tabular engine with a healthy primary")
	}

	// Whichever engine the probe selected, the rendered dates must sit on
	// the reference calendar.
	loc, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Fatal(err)
	}
	for _, tt := range civilFixedPoints {
		date, err := time.ParseInLocation("2006-01-02", tt.gregorian, loc)
		if err != nil {
			t.Fatal(err)
		}
		got := conv.Convert(date)
		if got.Day != tt.day || got.MonthKey != tt.monthKey || got.Year != tt.year {
			t.Errorf("%s = %s %s %s, want %s %s %s",
				tt.gregorian, got.Day, got.MonthKey, got.Year, tt.day, tt.monthKey, tt.year)
		}
	}
}
