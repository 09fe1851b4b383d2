package scraper

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"vemabot/types"
)

// Date parsing failures are non-fatal: the tile carrying the text is
// skipped, the run continues.
var (
	// ErrUnparseableDate means no recognized date pattern matched
	ErrUnparseableDate = errors.New("unparseable date")

	// ErrInvalidCalendarDate means the pattern matched but the values do
	// not name a real calendar day (e.g. 31. 4. 2025)
	ErrInvalidCalendarDate = errors.New("invalid calendar date")
)

var (
	// "16. 5. 2025" with optional whitespace around the dots
	numericDateRe = regexp.MustCompile(`(\d{1,2})\s*\.\s*(\d{1,2})\s*\.\s*(\d{4})`)

	// "16. května 2025": day, month word, year
	wordDateRe = regexp.MustCompile(`(\d{1,2})\s*\.\s*(\p{L}+)\s+(\d{4})`)
)

// monthStems maps the first three characters of a diacritic-folded,
// lowercased month word to its month number. Covers Czech and Slovak
// month names in both nominative and genitive inflections; several
// months have two stems because the languages diverge.
var monthStems = map[string]time.Month{
	"led": time.January, "jan": time.January,
	"uno": time.February, "feb": time.February,
	"bre": time.March, "mar": time.March,
	"dub": time.April, "apr": time.April,
	"kve": time.May, "maj": time.May,
	"cer": time.June, "jun": time.June,
	"jul": time.July,
	"srp": time.August, "aug": time.August,
	"zar": time.September, "sep": time.September,
	"rij": time.October, "okt": time.October,
	"lis": time.November, "nov": time.November,
	"pro": time.December, "dec": time.December,
}

// juneStem disambiguates Czech červenec (July) from červen (June),
// which collide on the three-character stem "cer". June is exactly
// "cerven" after folding, or a genitive like "cervna" that diverges
// earlier; any word continuing past "cerven" is a July inflection
// (cervenec, cervence).
const juneStem = "cerven"

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldDiacritics strips combining marks, turning "května" into "kvetna".
func foldDiacritics(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		return s
	}
	return folded
}

// resolveMonthWord maps a month word in Czech or Slovak to its month
// number via the stem table.
func resolveMonthWord(word string) (time.Month, bool) {
	folded := strings.ToLower(foldDiacritics(word))
	if strings.HasPrefix(folded, juneStem) && len(folded) > len(juneStem) {
		return time.July, true
	}
	if len(folded) < 3 {
		return 0, false
	}
	month, ok := monthStems[folded[:3]]
	return month, ok
}

// ParseDate extracts a calendar date from raw tile text. The numeric
// "D. M. YYYY" pattern takes priority; "D. <month word> YYYY" with a
// Czech or Slovak month name is the fallback.
func ParseDate(raw string) (types.Date, error) {
	if m := numericDateRe.FindStringSubmatch(raw); m != nil {
		month, _ := strconv.Atoi(m[2])
		return makeDate(m[1], time.Month(month), m[3])
	}
	if m := wordDateRe.FindStringSubmatch(raw); m != nil {
		month, ok := resolveMonthWord(m[2])
		if !ok {
			return types.Date{}, ErrUnparseableDate
		}
		return makeDate(m[1], month, m[3])
	}
	return types.Date{}, ErrUnparseableDate
}

// makeDate validates day/month/year by checking that time.Date does not
// normalize them into a different day.
func makeDate(dayStr string, month time.Month, yearStr string) (types.Date, error) {
	day, _ := strconv.Atoi(dayStr)
	year, _ := strconv.Atoi(yearStr)
	if month < time.January || month > time.December {
		return types.Date{}, ErrInvalidCalendarDate
	}
	d := types.NewDate(year, month, day)
	if d.Day() != day || d.Month() != month || d.Year() != year {
		return types.Date{}, ErrInvalidCalendarDate
	}
	return d, nil
}
