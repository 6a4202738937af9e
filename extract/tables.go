package extract

import (
	"fmt"

	"github.com/tsawler/vlier/header"
	"github.com/tsawler/vlier/keywords"
	"github.com/tsawler/vlier/model"
)

// maxTitleRows is the number of rows above the header, such as a table
// title, that are skipped while looking for it.
const maxTitleRows = 2

// findHeader locates the header of a schedule table. It returns the first
// header row, the number of header rows and the column map.
func findHeader(grid [][]string, kw *keywords.Config) (start, count int, cols header.Columns, ok bool) {
	for s := 0; s <= maxTitleRows && s < len(grid); s++ {
		n, merged := header.MergeRows(grid[s:], kw)
		c := header.MapColumns(merged, kw)
		if c.IsSchedule() {
			return s, n, c, true
		}
	}
	return 0, 0, header.Columns{}, false
}

// tableEntries builds the entries of a schedule table. Tables without a
// schedule header yield nothing.
func tableEntries(tbl *model.Table, kw *keywords.Config, schooljaar string, neighbors bool, prefix string) []model.RawEntry {
	grid := tbl.TextGrid()
	start, n, cols, ok := findHeader(grid, kw)
	if !ok {
		return nil
	}
	b := &rowBuilder{
		kw:         kw,
		cols:       cols,
		schooljaar: schooljaar,
		neighbors:  neighbors,
		extra:      mergedHeaderColumns(tbl, start, n, cols),
	}
	return b.tableRows(tbl, start+n, prefix)
}

// tableRows builds entries from the rows of tbl starting at first.
func (b *rowBuilder) tableRows(tbl *model.Table, first int, prefix string) []model.RawEntry {
	var out []model.RawEntry
	for i := first; i < len(tbl.Rows); i++ {
		cells, links := rowCells(tbl, i)
		e, ok := b.entry(cells, links)
		if !ok {
			continue
		}
		e.SourceRowID = fmt.Sprintf("%st%d-r%d", prefix, tbl.Index, i)
		out = append(out, e)
	}
	return out
}

// rowCells returns the texts and links of row i. A cell repeated across
// several grid columns is read once, at its first column.
func rowCells(tbl *model.Table, i int) ([]string, []model.Link) {
	cells := tbl.Texts(i)
	var links []model.Link
	row := tbl.Rows[i]
	for j, c := range row {
		if j > 0 && row[j-1].Origin == c.Origin {
			cells[j] = ""
			continue
		}
		links = append(links, c.Links...)
	}
	return cells, links
}

// mergedHeaderColumns maps every field column to the unclaimed columns
// that share one of its header cells. Rows spanned by a single title cell
// are ignored.
func mergedHeaderColumns(tbl *model.Table, start, count int, cols header.Columns) map[int][]int {
	width := tbl.ColCount()
	extra := make(map[int][]int)
	for i := 0; i < width; i++ {
		if cols.FieldAt(i) == header.FieldNone {
			continue
		}
		for j := i + 1; j < width && sharesHeader(tbl, start, count, i, j); j++ {
			if cols.FieldAt(j) == header.FieldNone {
				extra[i] = append(extra[i], j)
			}
		}
	}
	return extra
}

func sharesHeader(tbl *model.Table, start, count, i, j int) bool {
	for r := start; r < start+count && r < len(tbl.Rows); r++ {
		row := tbl.Rows[r]
		if j >= len(row) || row[0].Origin == row[len(row)-1].Origin {
			continue
		}
		if row[i].Origin == row[j].Origin {
			return true
		}
	}
	return false
}
