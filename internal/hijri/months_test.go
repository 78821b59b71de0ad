package hijri

import "testing"

func TestMonths_TableIsCoherent(t *testing.T) {
	if len(Months) != 12 {
		t.Fatalf("Months has %d entries, want 12", len(Months))
	}

	seen := make(map[string]bool)
	for i, m := range Months {
		if m.Key == "" || m.French == "" || m.Arabic == "" {
			t.Errorf("month %d has empty fields: %+v", i+1, m)
		}
		if seen[m.Key] {
			t.Errorf("duplicate canonical key %q", m.Key)
		}
		seen[m.Key] = true
	}
}

func TestMonths_EveryVariantResolves(t *testing.T) {
	for variant, idx := range monthVariants {
		m, ok := MonthByName(variant)
		if !ok {
			t.Errorf("MonthByName(%q) not found", variant)
			continue
		}
		if m.Key != Months[idx].Key {
			t.Errorf("MonthByName(%q) = %q, want %q", variant, m.Key, Months[idx].Key)
		}
	}
}

func TestMonthByName(t *testing.T) {
	tests := []struct {
		name    string
		wantKey string
		wantOK  bool
	}{
		// Spelling variants across engines and locales.
		{"chawwal", "shawwal", true},
		{"Schawwal", "shawwal", true},
		{"  Chaabane  ", "shaban", true},
		{"cha'ban", "shaban", true},
		{"Dhou al-hijja", "dhu-al-hijjah", true},
		{"dhu al-hijjah", "dhu-al-hijjah", true},
		{"RAMADAN", "ramadan", true},
		{"mouharram", "muharram", true},
		{"joumada al oula", "jumada-al-ula", true},
		// Unknown spellings degrade, they do not resolve.
		{"frimaire", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		m, ok := MonthByName(tt.name)
		if ok != tt.wantOK {
			t.Errorf("MonthByName(%q) ok = %v, want %v", tt.name, ok, tt.wantOK)
			continue
		}
		if ok && m.Key != tt.wantKey {
			t.Errorf("MonthByName(%q) key = %q, want %q", tt.name, m.Key, tt.wantKey)
		}
	}
}

func TestMonthByIndex(t *testing.T) {
	if m, ok := MonthByIndex(1); !ok || m.Key != "muharram" {
		t.Errorf("MonthByIndex(1) = %+v, %v", m, ok)
	}
	if m, ok := MonthByIndex(12); !ok || m.Key != "dhu-al-hijjah" {
		t.Errorf("MonthByIndex(12) = %+v, %v", m, ok)
	}
	for _, n := range []int{0, 13, -1} {
		if _, ok := MonthByIndex(n); ok {
			t.Errorf("MonthByIndex(%d) ok = true, want false", n)
		}
	}
}

func TestToArabicDigits(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1448", "١٤٤٨"},
		{"0123456789", "٠١٢٣٤٥٦٧٨٩"},
		{"an 1448 H", "an ١٤٤٨ H"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ToArabicDigits(tt.in); got != tt.want {
			t.Errorf("ToArabicDigits(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
