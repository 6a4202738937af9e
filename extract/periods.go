package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tsawler/vlier/cell"
	"github.com/tsawler/vlier/docx"
	"github.com/tsawler/vlier/keywords"
	"github.com/tsawler/vlier/model"
)

// maxHeadingWords bounds the length of a period heading.
const maxHeadingWords = 8

var periodHeadingRe = regexp.MustCompile(`(?i)\bperiode\s*([1-4])\b`)

// referenceWords open sentences that mention a period without starting
// its section, as in "In periode 2 gaan we verder".
var referenceWords = map[string]bool{
	"zie": true, "in": true, "na": true, "vanaf": true, "tot": true,
	"tijdens": true, "sinds": true, "vanuit": true, "over": true, "voor": true,
}

var relativeWords = []string{"volgende", "vorige"}

// Period is the metadata and rows of one period of a guide.
type Period struct {
	Meta *model.DocMeta `json:"meta"`
	Rows []model.DocRow `json:"rows"`
}

// periodHeading reports whether a paragraph starts a period section and
// returns its period.
func periodHeading(text string) (int, bool) {
	t := cell.Clean(text)
	words := strings.Fields(t)
	if len(words) == 0 || len(words) > maxHeadingWords {
		return 0, false
	}
	m := periodHeadingRe.FindStringSubmatch(t)
	if m == nil {
		return 0, false
	}
	if referenceWords[keywords.Fold(strings.Trim(words[0], ":,.-"))] {
		return 0, false
	}
	if _, ok := keywords.ContainsWord(t, relativeWords); ok {
		return 0, false
	}
	n, _ := strconv.Atoi(m[1])
	return n, true
}

// headingLike reports whether a period mention reads as a title: the period
// number ends the paragraph, or the paragraph is at most three words.
func headingLike(text string) bool {
	t := strings.TrimRight(cell.Clean(text), " :.-")
	if len(strings.Fields(t)) <= 3 {
		return true
	}
	loc := periodHeadingRe.FindStringIndex(t)
	return loc != nil && loc[1] == len(t)
}

// section is the body of one period.
type section struct {
	periode int
	blocks  []docx.Block
}

// headingStarts returns the block index of every period heading that opens
// a section. Each table is governed by one heading from the paragraphs
// since the previous table: the last title-like period mention, else the
// last mention. Other mentions in that stretch and mentions after the last
// table are references. A body without tables switches on every mention.
func headingStarts(blocks []docx.Block) map[int]int {
	starts := make(map[int]int)
	hasTable := false
	for _, b := range blocks {
		if b.Table != nil {
			hasTable = true
			break
		}
	}

	strong, weak := -1, -1
	for i, b := range blocks {
		if b.Paragraph != nil {
			if _, ok := periodHeading(b.Paragraph.Text); ok {
				if !hasTable {
					starts[i], _ = periodHeading(b.Paragraph.Text)
					continue
				}
				weak = i
				if headingLike(b.Paragraph.Text) {
					strong = i
				}
			}
			continue
		}
		if b.Table == nil {
			continue
		}
		pick := strong
		if pick < 0 {
			pick = weak
		}
		if pick >= 0 {
			starts[pick], _ = periodHeading(blocks[pick].Paragraph.Text)
		}
		strong, weak = -1, -1
	}
	return starts
}

// splitSections assigns every block to the period heading before it.
// Blocks before the first heading belong to the first heading's period.
// Headings naming a period seen before continue that period's section.
// The second result is false when the body has no period heading.
func splitSections(blocks []docx.Block) ([]section, bool) {
	starts := headingStarts(blocks)
	cur := 0
	for i := range blocks {
		if n, ok := starts[i]; ok {
			cur = n
			break
		}
	}
	if cur == 0 {
		return []section{{blocks: blocks}}, false
	}

	var out []section
	index := make(map[int]int)
	for i, b := range blocks {
		if n, ok := starts[i]; ok {
			cur = n
		}
		j, ok := index[cur]
		if !ok {
			j = len(out)
			index[cur] = j
			out = append(out, section{periode: cur})
		}
		out[j].blocks = append(out[j].blocks, b)
	}
	return out, true
}

func (s section) paragraphs() []string {
	var out []string
	for _, b := range s.blocks {
		if b.Paragraph != nil {
			out = append(out, b.Paragraph.Text)
		}
	}
	return out
}

func (s section) tables() []*model.Table {
	var out []*model.Table
	for _, b := range s.blocks {
		if b.Table != nil {
			out = append(out, b.Table)
		}
	}
	return out
}
