package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tsawler/vlier/cell"
	"github.com/tsawler/vlier/header"
	"github.com/tsawler/vlier/keywords"
	"github.com/tsawler/vlier/model"
)

var (
	weekLineRe  = regexp.MustCompile(`(?i)^((?:week|wk)\.?\s*\d{1,2}(?:\s*(?:[-/&+,]|en|t/m)\s*\d{1,2})*(?:\s*\([^)]*\))?)\s*[:.)-]?\s*(.*)$`)
	labelLineRe = regexp.MustCompile(`(?i)^(huiswerk|hw|opdrachten|opdracht|toets|inleveren|deadline|bronnen|bron|notities|notitie|opmerkingen|opmerking|les)\s*:\s*(.*)$`)
)

// lineHeaders maps line labels to the header text of the synthetic column
// they fill.
var lineHeaders = map[string]string{
	"huiswerk":    "Huiswerk",
	"hw":          "Huiswerk",
	"opdracht":    "Opdracht",
	"opdrachten":  "Opdracht",
	"toets":       "Toets",
	"inleveren":   "Inleveren",
	"deadline":    "Inleveren",
	"bron":        "Bronnen",
	"bronnen":     "Bronnen",
	"notitie":     "Notities",
	"notities":    "Notities",
	"opmerking":   "Notities",
	"opmerkingen": "Notities",
	"les":         "Les",
}

// lineEntry accumulates the lines of one week block.
type lineEntry struct {
	headers []string
	cells   []string
}

func newLineEntry(week, topic string) *lineEntry {
	return &lineEntry{
		headers: []string{"Week", "Onderwerp"},
		cells:   []string{week, topic},
	}
}

func (l *lineEntry) add(headerText, text string) {
	for i, h := range l.headers {
		if h == headerText {
			l.cells[i] = joinLines([]string{l.cells[i], text})
			return
		}
	}
	l.headers = append(l.headers, headerText)
	l.cells = append(l.cells, text)
}

// lineEntries parses schedule text without a table. A line starting with a
// week ("Week 12: Hoofdstuk 3") opens an entry; following lines are added
// to its topic, or to a field when labelled ("Huiswerk: ...").
func lineEntries(lines []string, kw *keywords.Config, schooljaar, prefix string) []model.RawEntry {
	var out []model.RawEntry
	var cur *lineEntry
	start := 0

	flush := func() {
		if cur == nil {
			return
		}
		b := &rowBuilder{
			kw:         kw,
			cols:       header.MapColumns(cur.headers, kw),
			schooljaar: schooljaar,
		}
		if e, ok := b.entry(cur.cells, nil); ok {
			e.SourceRowID = fmt.Sprintf("%sl%d", prefix, start)
			out = append(out, e)
		}
		cur = nil
	}

	for i, raw := range lines {
		line := cell.Clean(raw)
		if line == "" {
			continue
		}
		if m := weekLineRe.FindStringSubmatch(line); m != nil {
			flush()
			cur = newLineEntry(m[1], m[2])
			start = i
			continue
		}
		if cur == nil {
			continue
		}
		if m := labelLineRe.FindStringSubmatch(line); m != nil {
			cur.add(lineHeaders[strings.ToLower(m[1])], m[2])
			continue
		}
		cur.add("Onderwerp", line)
	}
	flush()
	return out
}
