package cell

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

const monthPattern = `januari|februari|maart|april|mei|juni|juli|augustus|september|oktober|november|december|` +
	`jan|feb|mrt|mar|apr|jun|jul|aug|sept|sep|okt|oct|nov|dec`

var monthByName = map[string]time.Month{
	"januari": time.January, "jan": time.January,
	"februari": time.February, "feb": time.February,
	"maart": time.March, "mrt": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"mei":  time.May,
	"juni": time.June, "jun": time.June,
	"juli": time.July, "jul": time.July,
	"augustus": time.August, "aug": time.August,
	"september": time.September, "sept": time.September, "sep": time.September,
	"oktober": time.October, "okt": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

var (
	numericDateRe = regexp.MustCompile(`\b(\d{1,2})[-/.](\d{1,2})(?:[-/.](\d{4}|\d{2}))?\b`)
	namedDateRe   = regexp.MustCompile(`(?i)\b(\d{1,2})\s*(` + monthPattern + `)\b\.?(?:\s+(\d{4}))?`)
	dayRangeRe    = regexp.MustCompile(`(?i)\b(\d{1,2})\s*(?:t/m|t\.m\.|tot en met|tot|-)\s*(\d{1,2})\s*(` + monthPattern + `)\b\.?(?:\s+(\d{4}))?`)
	fullYearRe    = regexp.MustCompile(`\b(20\d{2})\s*[/-]\s*(20\d{2}|\d{2})\b`)
	prefixedSJRe  = regexp.MustCompile(`(?i)\b(?:schooljaar|sj)\.?\s*:?\s*(\d{2})\s*[/-]\s*(\d{2})\b`)
	shortSJToken  = regexp.MustCompile(`^(\d{2})[-_/](\d{2})$`)
)

// dateMatch is one date found in a text.
type dateMatch struct {
	start, end int
	day        int
	month      time.Month
	year       int // 0 when the text has no year
}

// ParseDate returns the first date in text as YYYY-MM-DD.
func ParseDate(text, schooljaar string) (string, bool) {
	matches := findDates(Normalize(text))
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].format(schooljaar)
}

// ParseDateRange returns the first and last date in text. end is empty when
// the text holds a single date; both are empty when it holds none.
func ParseDateRange(text, schooljaar string) (start, end string) {
	t := Normalize(text)

	if m := dayRangeRe.FindStringSubmatch(t); m != nil {
		month := monthByName[strings.ToLower(m[3])]
		year := atoi(m[4])
		a := dateMatch{day: atoi(m[1]), month: month, year: year}
		b := dateMatch{day: atoi(m[2]), month: month, year: year}
		if s, ok := a.format(schooljaar); ok {
			if e, ok := b.format(schooljaar); ok {
				return s, e
			}
		}
	}

	matches := findDates(t)
	if len(matches) == 0 {
		return "", ""
	}
	start, ok := matches[0].format(schooljaar)
	if !ok {
		return "", ""
	}
	if len(matches) > 1 {
		last, ok := matches[len(matches)-1].format(schooljaar)
		if ok && last != start {
			end = last
		}
	}
	return start, end
}

// ParseExplicitDates is ParseDateRange restricted to unambiguous dates:
// explicit ranges, dates with a year and dates with a month name. It is used
// on week cells, where "3/4" is a week pair and not the 3rd of April.
func ParseExplicitDates(text, schooljaar string) (start, end string) {
	t := Normalize(text)
	if dayRangeRe.MatchString(t) || namedDateRe.MatchString(t) || dateRangeRe.MatchString(t) || fullDateRe.MatchString(t) {
		return ParseDateRange(t, schooljaar)
	}
	return "", ""
}

// ParseSchoolYear finds a school year such as "2025/2026", "2025-26" or
// "schooljaar 25/26" and returns it as "YYYY/YYYY".
func ParseSchoolYear(text string) (string, bool) {
	t := Normalize(text)
	for _, m := range fullYearRe.FindAllStringSubmatch(t, -1) {
		if sj, ok := schoolYear(atoi(m[1]), m[2]); ok {
			return sj, true
		}
	}
	for _, m := range prefixedSJRe.FindAllStringSubmatch(t, -1) {
		if sj, ok := schoolYear(2000+atoi(m[1]), m[2]); ok {
			return sj, true
		}
	}
	return "", false
}

// ParseSchoolYearToken recognises a bare "24-25" token, as used in file
// names.
func ParseSchoolYearToken(tok string) (string, bool) {
	m := shortSJToken.FindStringSubmatch(strings.TrimSpace(tok))
	if m == nil {
		return "", false
	}
	first := atoi(m[1])
	if first < 15 || first > 60 {
		return "", false
	}
	return schoolYear(2000+first, m[2])
}

// SchoolYearOf returns the school year containing t.
func SchoolYearOf(t time.Time) string {
	y := t.Year()
	if t.Month() < time.August {
		y--
	}
	return strconv.Itoa(y) + "/" + strconv.Itoa(y+1)
}

// SchoolYearBounds returns both calendar years of a "YYYY/YYYY" school year.
func SchoolYearBounds(schooljaar string) (first, second int, ok bool) {
	parts := strings.Split(strings.TrimSpace(schooljaar), "/")
	if len(parts) != 2 {
		return 0, 0, false
	}
	first, err1 := strconv.Atoi(parts[0])
	second, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || second != first+1 {
		return 0, 0, false
	}
	return first, second, true
}

func schoolYear(first int, secondText string) (string, bool) {
	second := atoi(secondText)
	if len(secondText) == 2 {
		second += first / 100 * 100
	}
	if second != first+1 {
		return "", false
	}
	return strconv.Itoa(first) + "/" + strconv.Itoa(second), true
}

func findDates(t string) []dateMatch {
	var out []dateMatch
	for _, idx := range numericDateRe.FindAllStringSubmatchIndex(t, -1) {
		m := dateMatch{
			start: idx[0], end: idx[1],
			day:   atoi(t[idx[2]:idx[3]]),
			month: time.Month(atoi(t[idx[4]:idx[5]])),
		}
		if idx[6] >= 0 {
			m.year = expandYear(t[idx[6]:idx[7]])
		}
		if m.valid() {
			out = append(out, m)
		}
	}
	for _, idx := range namedDateRe.FindAllStringSubmatchIndex(t, -1) {
		m := dateMatch{
			start: idx[0], end: idx[1],
			day:   atoi(t[idx[2]:idx[3]]),
			month: monthByName[strings.ToLower(t[idx[4]:idx[5]])],
		}
		if idx[6] >= 0 {
			m.year = atoi(t[idx[6]:idx[7]])
		}
		if m.valid() {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].start < out[j].start })
	return out
}

func (m dateMatch) valid() bool {
	return m.day >= 1 && m.day <= 31 && m.month >= time.January && m.month <= time.December
}

func (m dateMatch) format(schooljaar string) (string, bool) {
	year := m.year
	if year == 0 {
		year = yearForMonth(m.month, schooljaar)
	}
	d := time.Date(year, m.month, m.day, 0, 0, 0, 0, time.UTC)
	if d.Day() != m.day || d.Month() != m.month {
		return "", false
	}
	return d.Format(DateLayout), true
}

// DateLayout is the ISO date layout used for every date field.
const DateLayout = "2006-01-02"

func yearForMonth(month time.Month, schooljaar string) int {
	if first, second, ok := SchoolYearBounds(schooljaar); ok {
		if month >= time.August {
			return first
		}
		return second
	}
	return time.Now().Year()
}

func expandYear(s string) int {
	y := atoi(s)
	if len(s) == 2 {
		y += 2000
	}
	return y
}

func atoi(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}
