package rows

import (
	"github.com/tsawler/vlier/model"
)

// EnsureRows returns a copy of rows in which every row has an explicit
// enabled flag. Rows without one are enabled.
func EnsureRows(rows []model.DocRow) []model.DocRow {
	out := make([]model.DocRow, len(rows))
	for i, r := range rows {
		if r.Enabled == nil {
			r.SetEnabled(true)
		} else {
			r.SetEnabled(*r.Enabled)
		}
		out[i] = r
	}
	return out
}

// AutoDisableDuplicates disables rows that repeat an earlier enabled row.
//
// Rows are visited once in document order. A row with a date is disabled
// when an enabled row with the same date was seen before. A row without a
// date is disabled when an enabled row with the same week was seen before.
// Rows sharing only a week but carrying different dates stay enabled. Rows
// that are already disabled are left alone and do not count as seen.
func AutoDisableDuplicates(rows []model.DocRow) []model.DocRow {
	out := EnsureRows(rows)
	dates := make(map[string]int)
	weeks := make(map[int]int)

	for i := range out {
		r := &out[i]
		if !r.IsEnabled() {
			continue
		}

		if r.Datum != "" {
			if _, seen := dates[r.Datum]; seen {
				r.SetEnabled(false)
				continue
			}
		} else if r.Week > 0 {
			if _, seen := weeks[r.Week]; seen {
				r.SetEnabled(false)
				continue
			}
		}

		if r.Datum != "" {
			dates[r.Datum] = i
		}
		if r.Week > 0 {
			weeks[r.Week] = i
		}
	}
	return out
}

// Normalize runs EnsureRows, NormalizeDates and AutoDisableDuplicates.
func Normalize(schooljaar string, rows []model.DocRow) []model.DocRow {
	return AutoDisableDuplicates(NormalizeDates(schooljaar, EnsureRows(rows)))
}
