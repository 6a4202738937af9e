package header

import (
	"regexp"
	"strings"

	"github.com/tsawler/vlier/cell"
	"github.com/tsawler/vlier/keywords"
)

// MaxHeaderRows bounds the number of physical rows merged into one header.
const MaxHeaderRows = 3

var (
	dataLeadRe   = regexp.MustCompile(`(?i)^(?:w(?:ee)?k\.?\s*)?\d{1,2}\b`)
	annotationRe = regexp.MustCompile(`^[(\[][^()\[\]]*[)\]]$`)
)

// FindIndex returns the index of the first header containing any keyword.
func FindIndex(headers []string, kws []string) (int, bool) {
	for i, h := range headers {
		if strings.TrimSpace(h) == "" {
			continue
		}
		if _, ok := keywords.ContainsAny(h, kws); ok {
			return i, true
		}
	}
	return -1, false
}

// LooksLikeData reports whether a cell holds schedule data rather than header
// text: a leading week number or a date.
func LooksLikeData(text string) bool {
	t := cell.Normalize(text)
	if t == "" {
		return false
	}
	if dataLeadRe.MatchString(t) {
		return true
	}
	_, ok := cell.ParseDate(t, "")
	return ok
}

// MergeRows detects how many of the leading rows form the header and merges
// them column-wise. The first row is always a header row; each following row
// joins it while it holds no data-looking cell, names at least one header
// keyword or only carries bracketed annotations, and MaxHeaderRows is not
// reached.
func MergeRows(rows [][]string, kw *keywords.Config) (int, []string) {
	if len(rows) == 0 {
		return 0, nil
	}
	if kw == nil {
		kw = keywords.Default()
	}

	width := 0
	for _, r := range rows {
		if len(r) > width {
			width = len(r)
		}
	}

	merged := make([]string, width)
	parts := make([][]string, width)
	appendRow := func(r []string) {
		for j, text := range r {
			text = cell.Clean(text)
			if text == "" {
				continue
			}
			if n := len(parts[j]); n > 0 && parts[j][n-1] == text {
				continue
			}
			parts[j] = append(parts[j], text)
		}
	}

	appendRow(rows[0])
	count := 1
	all := kw.AllHeaders()
	for count < len(rows) && count < MaxHeaderRows {
		r := rows[count]
		if !isHeaderContinuation(r, all) {
			break
		}
		appendRow(r)
		count++
	}

	for j := range merged {
		merged[j] = strings.Join(parts[j], " ")
	}
	return count, merged
}

// isHeaderContinuation reports whether row wraps the header above it. It
// may hold no data-looking cell and must name a header keyword, unless every
// filled cell is a bracketed annotation such as "(blz.)" or "[%]".
func isHeaderContinuation(row []string, all []string) bool {
	named, filled, annotations := false, 0, 0
	for _, text := range row {
		if LooksLikeData(text) {
			return false
		}
		t := cell.Clean(text)
		if t == "" {
			continue
		}
		filled++
		if annotationRe.MatchString(t) {
			annotations++
		}
		if _, ok := keywords.ContainsAny(text, all); ok {
			named = true
		}
	}
	return named || (filled > 0 && annotations == filled)
}
