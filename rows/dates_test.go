package rows

import (
	"testing"

	"github.com/tsawler/vlier/model"
)

func TestNormalizeDates(t *testing.T) {
	tests := []struct {
		name       string
		schooljaar string
		in         model.DocRow
		wantWeek   int
		wantDatum  string
		wantEind   string
	}{
		{
			name:       "matching week",
			schooljaar: "2025/2026",
			in:         model.DocRow{Week: 36, Datum: "2025-09-02", DatumEind: "2025-09-05"},
			wantWeek:   36, wantDatum: "2025-09-02", wantEind: "2025-09-05",
		},
		{
			name:       "date moved to week",
			schooljaar: "2025/2026",
			in:         model.DocRow{Week: 37, Datum: "2025-09-02", DatumEind: "2025-09-05"},
			wantWeek:   37, wantDatum: "2025-09-08", wantEind: "2025-09-11",
		},
		{
			name:       "week in second half",
			schooljaar: "2025/2026",
			in:         model.DocRow{Week: 2, Datum: "2025-12-23"},
			wantWeek:   2, wantDatum: "2026-01-05",
		},
		{
			name:     "school year from date",
			in:       model.DocRow{Week: 45, Datum: "2025-10-28"},
			wantWeek: 45, wantDatum: "2025-11-03",
		},
		{
			name:       "week from date",
			schooljaar: "2025/2026",
			in:         model.DocRow{Datum: "2026-01-07"},
			wantWeek:   2, wantDatum: "2026-01-07",
		},
		{
			name:     "no date",
			in:       model.DocRow{Week: 12},
			wantWeek: 12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDates(tt.schooljaar, []model.DocRow{tt.in})[0]
			if got.Week != tt.wantWeek || got.Datum != tt.wantDatum || got.DatumEind != tt.wantEind {
				t.Errorf("NormalizeDates() = week %d %q %q, want %d %q %q",
					got.Week, got.Datum, got.DatumEind, tt.wantWeek, tt.wantDatum, tt.wantEind)
			}
		})
	}
}

func TestNormalizeDatesSetsWeeks(t *testing.T) {
	got := NormalizeDates("", []model.DocRow{{Datum: "2025-09-03"}})[0]
	if len(got.Weeks) != 1 || got.Weeks[0] != 36 || got.WeekSpanStart != 36 || got.WeekSpanEnd != 36 {
		t.Errorf("weeks = %v %d-%d, want [36] 36-36", got.Weeks, got.WeekSpanStart, got.WeekSpanEnd)
	}
}
