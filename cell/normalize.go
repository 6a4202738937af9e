package cell

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var dashReplacer = strings.NewReplacer(
	"‐", "-", "‑", "-", "‒", "-", "–", "-",
	"—", "-", "―", "-", "−", "-", "﹘", "-",
	"﹣", "-", "－", "-",
)

var spaceRun = regexp.MustCompile(`[ \t\f\v]+`)

// Normalize applies NFKC, maps every dash variant to an ASCII hyphen and
// collapses horizontal whitespace. Line breaks are kept.
func Normalize(s string) string {
	s = norm.NFKC.String(s)
	s = dashReplacer.Replace(s)
	s = spaceRun.ReplaceAllString(s, " ")
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(strings.TrimRight(l, "\r"))
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// Clean normalizes s and joins its lines with single spaces.
func Clean(s string) string {
	return strings.Join(strings.Fields(Normalize(s)), " ")
}
