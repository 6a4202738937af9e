package header

import (
	"reflect"
	"testing"

	"github.com/tsawler/vlier/keywords"
)

func TestFindIndex(t *testing.T) {
	headers := []string{"Week", "Datum", "Onderwerp", "Huiswerk"}

	tests := []struct {
		name     string
		keywords []string
		want     int
		wantOK   bool
	}{
		{"first match", []string{"huiswerk", "onderwerp"}, 2, true},
		{"case insensitive", []string{"DATUM"}, 1, true},
		{"substring", []string{"werk"}, 3, true},
		{"no match", []string{"toets"}, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindIndex(headers, tt.keywords)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("FindIndex() = %d, %v, want %d, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestMergeRows(t *testing.T) {
	rows := [][]string{
		{"Week", "Les", ""},
		{"", "Onderwerp", "Huiswerk"},
		{"1", "Intro", "Maak opdracht"},
	}

	count, merged := MergeRows(rows, keywords.Default())
	if count != 2 {
		t.Fatalf("MergeRows() count = %d, want 2", count)
	}
	want := []string{"Week", "Les Onderwerp", "Huiswerk"}
	if !reflect.DeepEqual(merged, want) {
		t.Errorf("MergeRows() merged = %q, want %q", merged, want)
	}
	if len(rows[count:]) != 1 || rows[count][1] != "Intro" {
		t.Errorf("data rows = %v, want only the Intro row", rows[count:])
	}
}

func TestMergeRowsSingleHeader(t *testing.T) {
	rows := [][]string{
		{"Week", "Onderwerp"},
		{"Kerstvakantie", ""},
		{"2", "Hoofdstuk 4"},
	}
	count, merged := MergeRows(rows, nil)
	if count != 1 {
		t.Errorf("MergeRows() count = %d, want 1", count)
	}
	if merged[1] != "Onderwerp" {
		t.Errorf("merged = %q", merged)
	}
}

func TestMergeRowsRepeatedMergedCell(t *testing.T) {
	rows := [][]string{
		{"Week", "Opdracht", "Opdracht"},
		{"Week", "Omschrijving", "Inleveren"},
		{"36", "a", "b"},
	}
	count, merged := MergeRows(rows, nil)
	if count != 2 {
		t.Fatalf("count = %d, want 2", count)
	}
	want := []string{"Week", "Opdracht Omschrijving", "Opdracht Inleveren"}
	if !reflect.DeepEqual(merged, want) {
		t.Errorf("merged = %q, want %q", merged, want)
	}
}

func TestMergeRowsAnnotationRow(t *testing.T) {
	tests := []struct {
		name      string
		rows      [][]string
		wantCount int
		wantMerge []string
	}{
		{
			name:      "wrapped annotation",
			rows:      [][]string{{"Week", "Huiswerk", "Toets"}, {"", "(blz.)", "[%]"}, {"36", "Lees 12-20", ""}},
			wantCount: 2,
			wantMerge: []string{"Week", "Huiswerk (blz.)", "Toets [%]"},
		},
		{
			name:      "annotation next to plain text",
			rows:      [][]string{{"Week", "Onderwerp"}, {"(vakantie)", "Kerstvakantie"}},
			wantCount: 1,
			wantMerge: []string{"Week", "Onderwerp"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			count, merged := MergeRows(tt.rows, nil)
			if count != tt.wantCount {
				t.Fatalf("MergeRows() count = %d, want %d", count, tt.wantCount)
			}
			if !reflect.DeepEqual(merged, tt.wantMerge) {
				t.Errorf("MergeRows() merged = %q, want %q", merged, tt.wantMerge)
			}
		})
	}
}

func TestMergeRowsEmpty(t *testing.T) {
	if count, merged := MergeRows(nil, nil); count != 0 || merged != nil {
		t.Errorf("MergeRows(nil) = %d, %v", count, merged)
	}
}

func TestLooksLikeData(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"1", true},
		{"wk 36", true},
		{"28-10", true},
		{"Week", false},
		{"Onderwerp", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := LooksLikeData(tt.text); got != tt.want {
			t.Errorf("LooksLikeData(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestMapColumns(t *testing.T) {
	headers := []string{"Week/datum", "Les", "Lesstof", "Huiswerk", "Inleverdatum", "Toets", "Bronnen", "Opmerkingen"}
	c := MapColumns(headers, keywords.Default())

	tests := []struct {
		field Field
		want  int
	}{
		{FieldWeek, 0},
		{FieldDate, 0},
		{FieldLesson, 1},
		{FieldSubject, 2},
		{FieldHomework, 3},
		{FieldHandin, 4},
		{FieldExam, 5},
		{FieldResource, 6},
		{FieldNote, 7},
	}
	for _, tt := range tests {
		got, ok := c.Index(tt.field)
		if !ok || got != tt.want {
			t.Errorf("Index(%s) = %d, %v, want %d", tt.field, got, ok, tt.want)
		}
	}

	if c.FieldAt(0) != FieldWeek {
		t.Errorf("FieldAt(0) = %s, want week", c.FieldAt(0))
	}
	if c.FieldAt(4) != FieldHandin {
		t.Errorf("FieldAt(4) = %s, want handin", c.FieldAt(4))
	}
	if c.Has(FieldAssignment) {
		t.Error("assignment should not be mapped")
	}
	if !c.IsSchedule() {
		t.Error("IsSchedule() = false, want true")
	}
}

func TestMapColumnsNotSchedule(t *testing.T) {
	c := MapColumns([]string{"Naam", "Onderwerp"}, nil)
	if c.IsSchedule() {
		t.Error("IsSchedule() = true for a table without week or date")
	}
	if c.FieldAt(0) != FieldNone || c.FieldAt(10) != FieldNone {
		t.Error("FieldAt() should report none for unmapped columns")
	}
}
