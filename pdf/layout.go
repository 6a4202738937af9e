package pdf

import (
	"math"
	"sort"
	"strings"

	"github.com/tsawler/vlier/model"
)

const (
	// wordGap is the gap, relative to the font size, that separates words.
	wordGap = 0.15
	// spanGap is the gap, relative to the font size, that separates spans
	// (table cells or tab-aligned text).
	spanGap = 1.0
	// rowGap is the vertical distance, relative to the font size, above
	// which a line always starts a new table row.
	rowGap = 2.2
)

// Line is a row of fragments sharing a baseline, ordered left to right.
type Line struct {
	Y         float64
	Fragments []Fragment
}

// Span is a run of fragments without a column-sized gap.
type Span struct {
	Text  string
	X     float64
	Right float64
}

// GroupLines groups fragments into lines from the top of the page down.
func GroupLines(frags []Fragment) []Line {
	sorted := make([]Fragment, 0, len(frags))
	for _, f := range frags {
		if strings.TrimSpace(f.Text) != "" {
			sorted = append(sorted, f)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Y > sorted[j].Y })

	var lines []Line
	for _, f := range sorted {
		if n := len(lines); n > 0 {
			cur := &lines[n-1]
			if math.Abs(cur.Y-f.Y) <= tolerance(cur.Fragments[0].Size, f.Size) {
				cur.Fragments = append(cur.Fragments, f)
				continue
			}
		}
		lines = append(lines, Line{Y: f.Y, Fragments: []Fragment{f}})
	}

	for i := range lines {
		fs := lines[i].Fragments
		sort.SliceStable(fs, func(a, b int) bool { return fs[a].X < fs[b].X })
	}
	return lines
}

func tolerance(a, b float64) float64 {
	return math.Max(math.Max(a, b)*0.5, 1)
}

// Size returns the largest font size on the line.
func (l Line) Size() float64 {
	size := 0.0
	for _, f := range l.Fragments {
		size = math.Max(size, f.Size)
	}
	return size
}

// Text returns the line text with words separated by single spaces.
func (l Line) Text() string {
	parts := make([]string, 0, 4)
	for _, s := range l.Spans() {
		parts = append(parts, s.Text)
	}
	return strings.Join(parts, " ")
}

// Spans splits the line at column-sized gaps.
func (l Line) Spans() []Span {
	var spans []Span
	var sb strings.Builder
	var cur *Span

	flush := func() {
		if cur != nil {
			cur.Text = strings.TrimSpace(sb.String())
			if cur.Text != "" {
				spans = append(spans, *cur)
			}
		}
		sb.Reset()
		cur = nil
	}

	for i, f := range l.Fragments {
		if cur != nil {
			prev := l.Fragments[i-1]
			gap := f.X - prev.Right()
			size := math.Max(prev.Size, f.Size)
			switch {
			case gap > size*spanGap:
				flush()
			case gap > size*wordGap && !endsSpace(sb.String()) && !strings.HasPrefix(f.Text, " "):
				sb.WriteByte(' ')
			}
		}
		if cur == nil {
			cur = &Span{X: f.X}
		}
		sb.WriteString(f.Text)
		cur.Right = math.Max(cur.Right, f.Right())
	}
	flush()
	return spans
}

func endsSpace(s string) bool {
	return s == "" || strings.HasSuffix(s, " ")
}

// SpanTexts returns the texts of the spans of a line.
func (l Line) SpanTexts() []string {
	spans := l.Spans()
	out := make([]string, len(spans))
	for i, s := range spans {
		out[i] = s.Text
	}
	return out
}

// Grid holds the column boundaries derived from a header line.
type Grid struct {
	// Bounds[i] is the left boundary of column i+1.
	Bounds []float64
}

// GridFromLine derives columns from the spans of a header line. Each
// boundary lies halfway between two neighbouring header spans.
func GridFromLine(l Line) Grid {
	spans := l.Spans()
	g := Grid{}
	for i := 1; i < len(spans); i++ {
		g.Bounds = append(g.Bounds, (spans[i-1].Right+spans[i].X)/2)
	}
	return g
}

// Columns returns the number of columns.
func (g Grid) Columns() int {
	return len(g.Bounds) + 1
}

// Column returns the column a span starting at x belongs to.
func (g Grid) Column(x float64) int {
	col := 0
	for i, b := range g.Bounds {
		if x >= b {
			col = i + 1
		}
	}
	return col
}

// Cells assigns the spans of a line to columns. Spans falling into the same
// column are joined with a space.
func (g Grid) Cells(l Line) []string {
	cells := make([]string, g.Columns())
	for _, s := range l.Spans() {
		c := g.Column(s.X)
		if cells[c] != "" {
			cells[c] += " "
		}
		cells[c] += s.Text
	}
	return cells
}

// Table rebuilds a table from lines laid out on the grid. A line with text
// in the anchor column, or separated from the previous line by a wide gap,
// starts a new row; other lines continue the cells of the current row.
// The header line and the first line below it always start rows.
func (g Grid) Table(lines []Line, anchor, index int) *model.Table {
	tbl := &model.Table{Index: index}
	var texts [][]string
	prevY, prevSize := 0.0, 0.0

	for i, l := range lines {
		cells := g.Cells(l)
		newRow := i <= 1 || len(texts) == 0
		if anchor >= 0 && anchor < len(cells) && cells[anchor] != "" {
			newRow = true
		}
		if i > 0 && prevY-l.Y > math.Max(prevSize, l.Size())*rowGap {
			newRow = true
		}

		if newRow {
			texts = append(texts, cells)
		} else {
			row := texts[len(texts)-1]
			for c, t := range cells {
				if t == "" {
					continue
				}
				if row[c] != "" {
					row[c] += "\n"
				}
				row[c] += t
			}
		}
		prevY, prevSize = l.Y, l.Size()
	}

	for r, row := range texts {
		cells := make([]model.Cell, len(row))
		for c, t := range row {
			cells[c] = model.Cell{Text: t, Origin: model.CellRef{Row: r, Col: c}}
		}
		tbl.Rows = append(tbl.Rows, cells)
	}
	return tbl
}
