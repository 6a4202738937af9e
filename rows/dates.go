package rows

import (
	"time"

	"github.com/tsawler/vlier/cell"
	"github.com/tsawler/vlier/model"
)

// NormalizeDates aligns the dates of rows with their weeks.
//
// When a row has a week and a date whose ISO week differs, the date moves to
// the Monday of the week within schooljaar and the end date shifts by the
// same number of days. A row with a date but no week gets the ISO week of
// the date. When schooljaar is empty the school year of the row's own date
// is used.
func NormalizeDates(schooljaar string, rows []model.DocRow) []model.DocRow {
	out := make([]model.DocRow, len(rows))
	for i, r := range rows {
		normalizeDate(schooljaar, &r)
		out[i] = r
	}
	return out
}

func normalizeDate(schooljaar string, r *model.DocRow) {
	if r.Datum == "" {
		return
	}
	iso, ok := cell.ISOWeek(r.Datum)
	if !ok {
		return
	}

	if r.Week == 0 {
		r.Week = iso
		r.Weeks = []int{iso}
		r.WeekSpanStart, r.WeekSpanEnd = iso, iso
		return
	}
	if iso == r.Week {
		return
	}

	sj := schooljaar
	if _, _, ok := cell.SchoolYearBounds(sj); !ok {
		d, _ := time.Parse(cell.DateLayout, r.Datum)
		sj = cell.SchoolYearOf(d)
	}
	monday := cell.WeekStart(r.Week, sj)
	delta, ok := cell.DaysBetween(r.Datum, monday)
	if !ok {
		return
	}
	r.Datum = monday
	if r.DatumEind != "" {
		r.DatumEind = cell.ShiftDate(r.DatumEind, delta)
	}
}
