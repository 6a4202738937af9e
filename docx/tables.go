package docx

import "github.com/tsawler/vlier/model"

// buildTable expands a raw table into a rectangular grid. Horizontally
// spanned cells fill every column they cover; vertically merged
// continuations repeat the text of the cell above and share its origin.
func buildTable(raw rawTable, index int) *model.Table {
	tbl := &model.Table{Index: index}
	width := 0

	for i, row := range raw.rows {
		var grid []model.Cell
		for k := 0; k < row.gridBefore; k++ {
			grid = append(grid, model.Cell{Origin: model.CellRef{Row: i, Col: len(grid)}})
		}

		for _, c := range row.cells {
			col := len(grid)
			cell := model.Cell{
				Text:   c.text,
				Origin: model.CellRef{Row: i, Col: col},
				Links:  c.links,
			}

			switch {
			case c.vMerge == "continue" && i > 0:
				if above, ok := cellAt(tbl, i-1, col); ok {
					cell = above
				}
			case c.hMerge == "continue" && col > 0:
				cell = grid[col-1]
			}

			for k := 0; k < c.gridSpan; k++ {
				grid = append(grid, cell)
			}
		}

		if len(grid) > width {
			width = len(grid)
		}
		tbl.Rows = append(tbl.Rows, grid)
	}

	for i := range tbl.Rows {
		for len(tbl.Rows[i]) < width {
			col := len(tbl.Rows[i])
			tbl.Rows[i] = append(tbl.Rows[i], model.Cell{Origin: model.CellRef{Row: i, Col: col}})
		}
	}
	return tbl
}

func cellAt(tbl *model.Table, row, col int) (model.Cell, bool) {
	if row < 0 || row >= len(tbl.Rows) || col >= len(tbl.Rows[row]) {
		return model.Cell{}, false
	}
	return tbl.Rows[row][col], true
}
