package hijri

import "strings"

// Month is one of the 12 lunar months with its canonical key and the
// display names used on the printed calendar.
type Month struct {
	// Key is the canonical identifier, stable across all spelling variants.
	Key string
	// French is the name printed on the French side of the calendar.
	French string
	// Arabic is the name printed on the Arabic side.
	Arabic string
}

// Months lists the 12 lunar months in calendar order.
var Months = [12]Month{
	{Key: "muharram", French: "Mouharram", Arabic: "محرم"},
	{Key: "safar", French: "Safar", Arabic: "صفر"},
	{Key: "rabi-al-awwal", French: "Rabia al awal", Arabic: "ربيع الأول"},
	{Key: "rabi-al-thani", French: "Rabia ath-thani", Arabic: "ربيع الآخر"},
	{Key: "jumada-al-ula", French: "Joumada al oula", Arabic: "جمادى الأولى"},
	{Key: "jumada-al-akhirah", French: "Joumada ath-thania", Arabic: "جمادى الآخرة"},
	{Key: "rajab", French: "Rajab", Arabic: "رجب"},
	{Key: "shaban", French: "Chaabane", Arabic: "شعبان"},
	{Key: "ramadan", French: "Ramadan", Arabic: "رمضان"},
	{Key: "shawwal", French: "Chawwal", Arabic: "شوال"},
	{Key: "dhu-al-qadah", French: "Dhou al qi`da", Arabic: "ذو القعدة"},
	{Key: "dhu-al-hijjah", French: "Dhou al-hijja", Arabic: "ذو الحجة"},
}

// monthVariants maps every month-name spelling observed across calendar
// engines (ICU locales, diacritics, hyphenation, transliteration schemes)
// to a 0-based index into Months. Keys are lowercase and trimmed.
var monthVariants = map[string]int{
	// Muharram
	"mouharram": 0, "muharram": 0, "mouḥarram": 0, "al-muharram": 0,
	// Safar
	"safar": 1, "ṣafar": 1, "safar ul muzaffar": 1,
	// Rabi al-Awwal
	"rabia al awal": 2, "rabi' al-awwal": 2, "rabi al-awwal": 2,
	"rabīʿ al-awwal": 2, "rabi i": 2, "rabiʻ i": 2, "rabi' ul-awwal": 2,
	// Rabi al-Thani
	"rabia ath-thani": 3, "rabi' al-thani": 3, "rabi al-thani": 3,
	"rabīʿ ath-thānī": 3, "rabi ii": 3, "rabiʻ ii": 3, "rabi' ul-akhir": 3,
	// Jumada al-Ula
	"joumada al oula": 4, "jumada al-ula": 4, "jumada al-awwal": 4,
	"jumādá al-ūlá": 4, "jumada i": 4, "joumada al awal": 4,
	// Jumada al-Akhirah
	"joumada ath-thania": 5, "jumada al-akhirah": 5, "jumada al-thani": 5,
	"jumādá al-ākhirah": 5, "jumada ii": 5, "joumada ath thania": 5,
	// Rajab
	"rajab": 6, "radjab": 6, "rajab al-murajab": 6,
	// Shaban
	"chaabane": 7, "chaʻban": 7, "cha'ban": 7, "chabane": 7,
	"sha'ban": 7, "shaban": 7, "shaʿbān": 7, "schabane": 7,
	// Ramadan
	"ramadan": 8, "ramadhan": 8, "ramaḍān": 8, "ramazan": 8,
	// Shawwal
	"chawwal": 9, "schawwal": 9, "shawwal": 9, "shawwāl": 9, "chawal": 9,
	// Dhu al-Qadah
	"dhou al qi`da": 10, "dhou al qi'da": 10, "dhu al-qi'dah": 10,
	"dhu al-qadah": 10, "dhū al-qaʿdah": 10, "dhu'l-qa'dah": 10,
	// Dhu al-Hijjah
	"dhou al-hijja": 11, "dhou al hijja": 11, "dhu al-hijjah": 11,
	"dhū al-ḥijjah": 11, "dhu'l-hijja": 11, "dhou al-hija": 11,
}

// MonthByName resolves a month-name spelling variant to its canonical
// month. The second return is false when the spelling is unknown.
func MonthByName(name string) (Month, bool) {
	idx, ok := monthVariants[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Month{}, false
	}
	return Months[idx], true
}

// MonthByIndex resolves a 1-based month position to its canonical month.
func MonthByIndex(n int) (Month, bool) {
	if n < 1 || n > 12 {
		return Month{}, false
	}
	return Months[n-1], true
}

// arabicDigits substitutes Eastern Arabic digits for Latin ones.
var arabicDigits = [10]rune{'٠', '١', '٢', '٣', '٤', '٥', '٦', '٧', '٨', '٩'}

// ToArabicDigits transliterates every Latin digit in s to its Eastern
// Arabic equivalent. Non-digit runes pass through unchanged.
func ToArabicDigits(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) * 2)
	for _, r := range s {
		if r >= '0' && r <= '9' {
			sb.WriteRune(arabicDigits[r-'0'])
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
