package postprocess

import (
	"testing"

	"github.com/tsawler/vlier/model"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		vak    string
		prefix string
		ok     bool
	}{
		{"Aardrijkskunde", "aardrijkskunde", true},
		{"  AARDRIJKSKUNDE havo", "aardrijkskunde", true},
		{"Lichamelijke  Opvoeding", "lichamelijke opvoeding", true},
		{"Lichamelijke opvoeding 2", "lichamelijke opvoeding", true},
		{"Biologie", "", false},
		{"Ak", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.vak, func(t *testing.T) {
			r, ok := Lookup(tt.vak)
			if ok != tt.ok || r.Prefix != tt.prefix {
				t.Errorf("Lookup(%q) = %q, %v, want %q, %v", tt.vak, r.Prefix, ok, tt.prefix, tt.ok)
			}
		})
	}
}

func TestNotesAsExam(t *testing.T) {
	tests := []struct {
		name      string
		row       model.DocRow
		changed   bool
		wantType  string
		wantNotes string
	}{
		{
			name:     "so label",
			row:      model.DocRow{Notities: "SO hoofdstuk 2"},
			changed:  true,
			wantType: "SO hoofdstuk 2",
		},
		{
			name:     "praktische opdracht",
			row:      model.DocRow{Notities: "Praktische opdracht kaarten"},
			changed:  true,
			wantType: "Praktische opdracht kaarten",
		},
		{
			name:     "existing type kept",
			row:      model.DocRow{Notities: "PW H3", Toets: &model.Toets{Type: "Toetsweek", Weging: "2"}},
			changed:  true,
			wantType: "Toetsweek; PW H3",
		},
		{
			name:      "plain note",
			row:       model.DocRow{Notities: "Neem atlas mee"},
			wantNotes: "Neem atlas mee",
		},
		{
			name:      "multi line",
			row:       model.DocRow{Notities: "SO H1\nNeem atlas mee"},
			wantNotes: "SO H1\nNeem atlas mee",
		},
		{
			name:      "so inside word",
			row:       model.DocRow{Notities: "Soorten landschap"},
			wantNotes: "Soorten landschap",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := tt.row
			if got := NotesAsExam(&row); got != tt.changed {
				t.Fatalf("NotesAsExam() = %v, want %v", got, tt.changed)
			}
			gotType := ""
			if row.Toets != nil {
				gotType = row.Toets.Type
			}
			if gotType != tt.wantType {
				t.Errorf("toets.type = %q, want %q", gotType, tt.wantType)
			}
			if row.Notities != tt.wantNotes {
				t.Errorf("notities = %q, want %q", row.Notities, tt.wantNotes)
			}
		})
	}
}

func TestSplitDayEvents(t *testing.T) {
	row := model.DocRow{
		Onderwerp: "Atletiek",
		Notities:  "Dinsdag 12-11 sportdag\n- 14/11 zwemmen\nSportkleding mee",
	}
	if !SplitDayEvents(&row) {
		t.Fatal("SplitDayEvents() = false, want true")
	}
	if want := "Atletiek\nDinsdag 12-11 sportdag\n14/11 zwemmen"; row.Onderwerp != want {
		t.Errorf("onderwerp = %q, want %q", row.Onderwerp, want)
	}
	if row.Notities != "Sportkleding mee" {
		t.Errorf("notities = %q, want %q", row.Notities, "Sportkleding mee")
	}
}

func TestSplitDayEventsOnlyEvents(t *testing.T) {
	row := model.DocRow{Notities: "vr 15-11 toernooi"}
	if !SplitDayEvents(&row) {
		t.Fatal("SplitDayEvents() = false, want true")
	}
	if row.Onderwerp != "vr 15-11 toernooi" || row.Notities != "" {
		t.Errorf("row = %q / %q, want event moved and notes empty", row.Onderwerp, row.Notities)
	}
}

func TestSplitDayEventsNoEvents(t *testing.T) {
	row := model.DocRow{Onderwerp: "Turnen", Notities: "Handdoek mee"}
	if SplitDayEvents(&row) {
		t.Error("SplitDayEvents() = true, want false")
	}
	if row.Onderwerp != "Turnen" || row.Notities != "Handdoek mee" {
		t.Errorf("row changed: %q / %q", row.Onderwerp, row.Notities)
	}
}

func TestApplyUnmatchedSubject(t *testing.T) {
	row := model.DocRow{Notities: "SO H1"}
	if Apply("Geschiedenis", &row) {
		t.Error("Apply() = true for subject without rule")
	}
	if row.Notities != "SO H1" || row.Toets != nil {
		t.Errorf("row changed: %+v", row)
	}
	if Apply("Aardrijkskunde", nil) {
		t.Error("Apply(nil) = true")
	}
}

func TestApplyAardrijkskunde(t *testing.T) {
	row := model.DocRow{Notities: "toets H4"}
	if !Apply("Aardrijkskunde", &row) {
		t.Fatal("Apply() = false")
	}
	if row.Toets == nil || row.Toets.Type != "toets H4" || row.Notities != "" {
		t.Errorf("row = %+v, want note moved into toets", row)
	}
}
