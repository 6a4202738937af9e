package rows

import (
	"testing"

	"github.com/tsawler/vlier/model"
)

func TestComputeWarnings(t *testing.T) {
	meta := &model.DocMeta{Vak: "Biologie"}
	disabled := row(44, "2025-10-28", "X")
	disabled.SetEnabled(false)

	tests := []struct {
		name   string
		meta   *model.DocMeta
		rows   []model.DocRow
		ignore bool
		want   Warnings
	}{
		{
			name: "clean",
			meta: meta,
			rows: []model.DocRow{row(44, "2025-10-28", "X"), row(45, "", "Y")},
		},
		{
			name: "unknown subject",
			meta: &model.DocMeta{Vak: model.UnknownVak},
			want: Warnings{UnknownSubject: true},
		},
		{
			name: "nil meta",
			want: Warnings{UnknownSubject: true},
		},
		{
			name: "missing week",
			meta: meta,
			rows: []model.DocRow{row(0, "", "X")},
			want: Warnings{MissingWeek: true},
		},
		{
			name: "disabled row without week",
			meta: meta,
			rows: func() []model.DocRow {
				r := row(0, "", "X")
				r.SetEnabled(false)
				return []model.DocRow{r}
			}(),
		},
		{
			name: "duplicate date",
			meta: meta,
			rows: []model.DocRow{row(44, "2025-10-28", "X"), row(45, "2025-10-28", "Y")},
			want: Warnings{DuplicateDate: true},
		},
		{
			name: "disabled duplicate counted",
			meta: meta,
			rows: []model.DocRow{row(44, "2025-10-28", "X"), disabled},
			want: Warnings{DuplicateWeek: true},
		},
		{
			name:   "disabled duplicate ignored",
			meta:   meta,
			rows:   []model.DocRow{row(44, "2025-10-28", "X"), disabled},
			ignore: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeWarnings(tt.meta, tt.rows, tt.ignore); got != tt.want {
				t.Errorf("ComputeWarnings() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDedupWarnings(t *testing.T) {
	rows := AutoDisableDuplicates([]model.DocRow{
		row(44, "2025-10-28", "X"),
		row(44, "2025-10-28", "X"),
		row(45, "2025-11-04", "Y"),
	})
	w := ComputeWarnings(&model.DocMeta{Vak: "Economie"}, rows, false)
	if !w.DuplicateWeek || w.DuplicateDate {
		t.Errorf("ComputeWarnings() = %+v, want only DuplicateWeek", w)
	}
	if !w.Any() {
		t.Error("Any() = false, want true")
	}
}
