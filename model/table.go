package model

import "strings"

// CellRef identifies a physical table cell.
type CellRef struct {
	Row int
	Col int
}

// Cell is one grid position of a Table.
type Cell struct {
	Text string

	// Origin is the physical cell this position belongs to. Positions
	// covered by a horizontally or vertically merged cell share an origin.
	Origin CellRef

	// Links holds hyperlink targets found in the cell.
	Links []Link
}

// Link is a hyperlink inside a cell or paragraph.
type Link struct {
	Text string
	URL  string
}

// Table is a rectangular grid of cells.
type Table struct {
	Rows [][]Cell

	// Index is the position of the table among the tables of its source.
	Index int
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the width of the widest row.
func (t *Table) ColCount() int {
	n := 0
	for _, row := range t.Rows {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

// Texts returns the cell texts of row i, padded to the table width.
func (t *Table) Texts(i int) []string {
	out := make([]string, t.ColCount())
	if i < 0 || i >= len(t.Rows) {
		return out
	}
	for j, c := range t.Rows[i] {
		out[j] = c.Text
	}
	return out
}

// TextGrid returns all cell texts.
func (t *Table) TextGrid() [][]string {
	grid := make([][]string, len(t.Rows))
	for i := range t.Rows {
		grid[i] = t.Texts(i)
	}
	return grid
}

// GetText returns the table as tab-separated lines.
func (t *Table) GetText() string {
	var sb strings.Builder
	for i := range t.Rows {
		sb.WriteString(strings.Join(t.Texts(i), "\t"))
		sb.WriteString("\n")
	}
	return sb.String()
}
