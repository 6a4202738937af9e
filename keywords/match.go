package keywords

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// shortKeyword is the rune length up to which header keywords must match a
// whole word. "so" must not match "persoon".
const shortKeyword = 3

// Fold returns s case-folded for comparison.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// Contains reports whether text contains keyword: as a case-insensitive
// substring, or as a whole word for keywords of up to three runes.
func Contains(text, keyword string) bool {
	return containsFolded(Fold(text), Fold(strings.TrimSpace(keyword)), false)
}

// ContainsAny returns the first keyword contained in text.
func ContainsAny(text string, keywords []string) (string, bool) {
	folded := Fold(text)
	for _, kw := range keywords {
		if containsFolded(folded, Fold(strings.TrimSpace(kw)), false) {
			return kw, true
		}
	}
	return "", false
}

// ContainsWord returns the first term that occurs in text as a whole word
// or phrase.
func ContainsWord(text string, terms []string) (string, bool) {
	folded := Fold(text)
	for _, term := range terms {
		if containsFolded(folded, Fold(strings.TrimSpace(term)), true) {
			return term, true
		}
	}
	return "", false
}

func containsFolded(text, kw string, wholeWord bool) bool {
	if kw == "" {
		return false
	}
	if !wholeWord && utf8.RuneCountInString(kw) > shortKeyword {
		return strings.Contains(text, kw)
	}
	for start := 0; start < len(text); {
		i := strings.Index(text[start:], kw)
		if i < 0 {
			return false
		}
		i += start
		end := i + len(kw)
		if isBoundary(text, i, true) && isBoundary(text, end, false) {
			return true
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		start = i + size
	}
	return false
}

// isBoundary reports whether position pos in s is a word boundary. before
// selects the rune to inspect: the one ending at pos or the one starting at it.
func isBoundary(s string, pos int, before bool) bool {
	var r rune
	if before {
		if pos == 0 {
			return true
		}
		r, _ = utf8.DecodeLastRuneInString(s[:pos])
	} else {
		if pos >= len(s) {
			return true
		}
		r, _ = utf8.DecodeRuneInString(s[pos:])
	}
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
