package cell

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// MinWeek and MaxWeek bound valid ISO week numbers.
const (
	MinWeek = 1
	MaxWeek = 53
)

// WeekDetails is the parsed form of a week cell.
type WeekDetails struct {
	Weeks     []int
	SpanStart int
	SpanEnd   int
	Label     string
}

const datePart = `(?:\d{1,2}[-/.]\d{1,2}(?:[-/.](?:\d{4}|\d{2}))?|\d{1,2}\s*(?:` + monthPattern + `)\b\.?(?:\s+\d{4})?)`

var (
	dateRangeRe     = regexp.MustCompile(`(?i)` + datePart + `\s*(?:t/m|t\.m\.|tot en met|tot|\s-\s)\s*` + datePart)
	fullDateRe      = regexp.MustCompile(`\b(\d{1,2})[-/.](\d{1,2})[-/.](\d{4}|\d{2})\b`)
	parenRe         = regexp.MustCompile(`\([^)]*\)`)
	emptyParenRe    = regexp.MustCompile(`\(\s*\)`)
	rangeWordRe     = regexp.MustCompile(`(?i)t/m|t\.m\.|\btot en met\b|\btot\b|\ben\b`)
	dayMonthRe      = regexp.MustCompile(`\b(\d{1,2})[-/.](\d{1,2})\b`)
	connectorRe     = regexp.MustCompile(`(?i)(\d)\s*(?:\ben\b|&|\+)\s*(\d)`)
	weekThroughRe   = regexp.MustCompile(`(?i)(\d{1,2})\s*(?:t/m|tm|tot en met)\s*(?:(?:week|wk)\.?\s*)?(\d{1,2})\b`)
	leadingRe       = regexp.MustCompile(`^\s*(\d{1,2})(?:\s*[-/]\s*(\d{1,2}))?\b`)
	weekWordRe      = regexp.MustCompile(`(?i)\b(?:week|wk|w)\.?\s*(\d{1,2})\b`)
	pairRe          = regexp.MustCompile(`\b(\d{1,2})\s*[-/]\s*(\d{1,2})\b`)
	digitSeparatorR = regexp.MustCompile(`\d\s*[-/]\s*\d`)
	pureNumberRe    = regexp.MustCompile(`^\s*(\d{1,2})\s*$`)
)

// ParseWeeks returns the weeks named in a week cell, deduplicated, in
// first-seen order.
func ParseWeeks(text string) []int {
	t := prepareWeekText(text)
	if t == "" {
		return nil
	}

	var found []int
	seen := make(map[int]bool)
	add := func(values ...string) {
		for _, v := range values {
			if v == "" {
				continue
			}
			n, err := strconv.Atoi(v)
			if err != nil || n < MinWeek || n > MaxWeek || seen[n] {
				continue
			}
			seen[n] = true
			found = append(found, n)
		}
	}

	if m := leadingRe.FindStringSubmatch(t); m != nil {
		add(m[1], m[2])
	}
	for _, m := range weekWordRe.FindAllStringSubmatch(t, -1) {
		add(m[1])
	}
	for _, m := range pairRe.FindAllStringSubmatch(t, -1) {
		add(m[1], m[2])
	}
	if digitSeparatorR.MatchString(t) {
		add(scanNumberTokens(t)...)
	}
	if m := pureNumberRe.FindStringSubmatch(t); m != nil {
		add(m[1])
	}

	return found
}

// ParseWeekDetails returns the weeks of a cell with their span and the raw
// label. The span covers the first and last week found.
func ParseWeekDetails(text string) WeekDetails {
	d := WeekDetails{
		Weeks: ParseWeeks(text),
		Label: Clean(text),
	}
	if len(d.Weeks) > 0 {
		d.SpanStart = d.Weeks[0]
		d.SpanEnd = d.Weeks[len(d.Weeks)-1]
	}
	return d
}

// HasWeekDigits reports whether text carries any week number.
func HasWeekDigits(text string) bool {
	return len(ParseWeeks(text)) > 0
}

// StripDateRanges removes date ranges from text and tidies the leftover
// separators and empty parentheses. Single dates are kept.
func StripDateRanges(text string) string {
	t := dateRangeRe.ReplaceAllStringFunc(Normalize(text), func(s string) string {
		if len(findDates(s)) >= 2 {
			return " "
		}
		return s
	})
	t = dayRangeRe.ReplaceAllString(t, " ")
	t = emptyParenRe.ReplaceAllString(t, " ")
	t = strings.Trim(t, " -:,;/|")
	return strings.TrimSpace(spaceRun.ReplaceAllString(t, " "))
}

// IsOnlyDates reports whether text holds nothing but dates, date ranges and
// separators.
func IsOnlyDates(text string) bool {
	t := Normalize(text)
	matches := findDates(t)
	if len(matches) == 0 {
		return false
	}
	var sb strings.Builder
	pos := 0
	for _, m := range matches {
		if m.start < pos {
			continue
		}
		sb.WriteString(t[pos:m.start])
		sb.WriteString(" ")
		pos = m.end
	}
	sb.WriteString(t[pos:])
	rest := rangeWordRe.ReplaceAllString(sb.String(), " ")
	return strings.IndexFunc(rest, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}) < 0
}

func prepareWeekText(text string) string {
	t := stripDateText(Normalize(text))
	t = weekThroughRe.ReplaceAllString(t, "$1-$2")
	for {
		next := connectorRe.ReplaceAllString(t, "$1/$2")
		if next == t {
			break
		}
		t = next
	}
	return strings.TrimSpace(t)
}

// stripDateText removes date ranges, full dates, dates with month names and
// parenthesised day-month pairs. Day-month pairs are only removed when they
// form a valid calendar day, so week chains like 45-46-47 survive.
func stripDateText(t string) string {
	t = dateRangeRe.ReplaceAllStringFunc(t, func(s string) string {
		if len(findDates(s)) >= 2 {
			return " "
		}
		return s
	})
	t = dayRangeRe.ReplaceAllString(t, " ")
	t = fullDateRe.ReplaceAllStringFunc(t, func(s string) string {
		m := fullDateRe.FindStringSubmatch(s)
		if validDayMonth(m[1], m[2]) {
			return " "
		}
		return s
	})
	t = namedDateRe.ReplaceAllStringFunc(t, func(s string) string {
		if len(findDates(s)) > 0 {
			return " "
		}
		return s
	})
	t = parenRe.ReplaceAllStringFunc(t, func(s string) string {
		return dayMonthRe.ReplaceAllStringFunc(s, func(dm string) string {
			m := dayMonthRe.FindStringSubmatch(dm)
			if validDayMonth(m[1], m[2]) {
				return " "
			}
			return dm
		})
	})
	return emptyParenRe.ReplaceAllString(t, " ")
}

func validDayMonth(day, month string) bool {
	d, m := atoi(day), atoi(month)
	return d >= 1 && d <= 31 && m >= 1 && m <= 12
}

// scanNumberTokens returns every one- or two-digit number in t in order.
// Numbers glued to a preceding letter ("H3") or part of longer digit runs
// are skipped; "wk52" is kept.
func scanNumberTokens(t string) []string {
	var out []string
	runes := []rune(t)
	for i := 0; i < len(runes); {
		if !unicode.IsDigit(runes[i]) {
			i++
			continue
		}
		j := i
		for j < len(runes) && unicode.IsDigit(runes[j]) {
			j++
		}
		if j-i <= 2 && allowedBefore(runes, i) {
			out = append(out, string(runes[i:j]))
		}
		i = j
	}
	return out
}

func allowedBefore(runes []rune, i int) bool {
	if i == 0 || !unicode.IsLetter(runes[i-1]) {
		return true
	}
	k := i
	for k > 0 && unicode.IsLetter(runes[k-1]) {
		k--
	}
	switch strings.ToLower(string(runes[k:i])) {
	case "wk", "week", "w":
		return true
	}
	return false
}
