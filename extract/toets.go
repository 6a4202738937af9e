package extract

import (
	"regexp"
	"strings"

	"github.com/tsawler/vlier/cell"
	"github.com/tsawler/vlier/keywords"
	"github.com/tsawler/vlier/model"
)

var (
	wegingRe          = regexp.MustCompile(`(?i)\bweging\s*:?\s*(\d+(?:[.,]\d+)?\s*(?:x|%)?)`)
	percentRe         = regexp.MustCompile(`\(?\b(\d{1,3}\s*%)\)?`)
	timesRe           = regexp.MustCompile(`(?i)\(?\b(\d{1,2}\s*x)\)?(?:\s|$|[),.;])`)
	herkansingRe      = regexp.MustCompile(`(?i)\bherkansing\s*:?\s*(ja|nee)\b`)
	nietHerkansbaarRe = regexp.MustCompile(`(?i)\(?\bniet\s+herkansbaar\b\)?`)
	herkansbaarRe     = regexp.MustCompile(`(?i)\(?\bherkansbaar\b\)?`)
)

// parseToets reads an assessment description such as
// "SO H3 (20%) niet herkansbaar". It returns nil for empty text.
func parseToets(text string) *model.Toets {
	rest := cell.Clean(text)
	if rest == "" {
		return nil
	}

	t := &model.Toets{}
	var v string
	if v, rest = take(wegingRe, rest); v != "" {
		t.Weging = compact(v)
	} else if v, rest = take(percentRe, rest); v != "" {
		t.Weging = compact(v)
	} else if v, rest = take(timesRe, rest); v != "" {
		t.Weging = compact(v)
	}

	if v, rest = take(herkansingRe, rest); v != "" {
		t.Herkansing = strings.ToLower(v)
	} else if _, r, ok := cut(nietHerkansbaarRe, rest); ok {
		t.Herkansing, rest = "nee", r
	} else if _, r, ok := cut(herkansbaarRe, rest); ok {
		t.Herkansing, rest = "ja", r
	}

	rest = strings.Join(strings.Fields(emptyParens.ReplaceAllString(rest, " ")), " ")
	t.Type = strings.Trim(rest, " -:,;|")
	if t.IsZero() {
		return nil
	}
	return t
}

var emptyParens = regexp.MustCompile(`\(\s*\)`)

// take returns the first submatch of re in s and s without the match.
func take(re *regexp.Regexp, s string) (string, string) {
	loc := re.FindStringSubmatchIndex(s)
	if loc == nil || loc[2] < 0 {
		return "", s
	}
	return s[loc[2]:loc[3]], s[:loc[0]] + " " + s[loc[1]:]
}

func cut(re *regexp.Regexp, s string) (string, string, bool) {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return "", s, false
	}
	return s[loc[0]:loc[1]], s[:loc[0]] + " " + s[loc[1]:], true
}

func compact(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// examFromText returns the assessment named on the first line of texts that
// contains an exam term as a whole word.
func examFromText(kw *keywords.Config, texts ...string) *model.Toets {
	for _, text := range texts {
		for _, line := range strings.Split(cell.Normalize(text), "\n") {
			if _, ok := keywords.ContainsWord(line, kw.ExamTerms); ok {
				return parseToets(line)
			}
		}
	}
	return nil
}

// findDeadline returns the first date that follows a deadline term in
// texts.
func findDeadline(kw *keywords.Config, schooljaar string, texts ...string) string {
	for _, text := range texts {
		t := cell.Normalize(text)
		if t == "" {
			continue
		}
		folded := keywords.Fold(t)
		for _, term := range kw.DeadlineTerms {
			if _, ok := keywords.ContainsWord(t, []string{term}); !ok {
				continue
			}
			ft := keywords.Fold(strings.TrimSpace(term))
			i := strings.Index(folded, ft)
			if i < 0 {
				continue
			}
			if d, ok := cell.ParseDate(folded[i+len(ft):], schooljaar); ok {
				return d
			}
		}
	}
	return ""
}
