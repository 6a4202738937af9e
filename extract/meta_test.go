package extract

import (
	"testing"
	"time"

	"github.com/tsawler/vlier/model"
)

func TestScanFilename(t *testing.T) {
	tests := []struct {
		filename string
		want     hints
	}{
		{
			filename: "Studiewijzer_Biologie_4H_P2_24-25.docx",
			want:     hints{vak: "Biologie", niveau: model.NiveauHAVO, leerjaar: "4", periode: 2, schooljaar: "2024/2025"},
		},
		{
			filename: "vwo5-geschiedenis-periode3.pdf",
			want:     hints{vak: "Geschiedenis", niveau: model.NiveauVWO, leerjaar: "5", periode: 3},
		},
		{
			filename: "/tmp/upload/economie havo 4.docx",
			want:     hints{vak: "Economie", niveau: model.NiveauHAVO, leerjaar: "4"},
		},
		{
			filename: "studiewijzer.docx",
			want:     hints{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			var h hints
			h.scanFilename(tt.filename)
			if h != tt.want {
				t.Errorf("scanFilename() = %+v, want %+v", h, tt.want)
			}
		})
	}
}

func TestHintsScan(t *testing.T) {
	tests := []struct {
		text string
		want hints
	}{
		{"Biologie | 5 vwo | Periode 3 | Schooljaar 2025-2026", hints{niveau: model.NiveauVWO, leerjaar: "5", periode: 3, schooljaar: "2025/2026"}},
		{"HAVO 4 periode 1", hints{niveau: model.NiveauHAVO, leerjaar: "4", periode: 1}},
		{"Leerjaar 3 atheneum", hints{niveau: model.NiveauVWO, leerjaar: "3"}},
		{"4e klas gymnasium", hints{niveau: model.NiveauVWO, leerjaar: "4"}},
		{"Schooljaar 2025/2026", hints{schooljaar: "2025/2026"}},
		{"Lees hoofdstuk 3", hints{}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			var h hints
			h.scan(tt.text)
			if h != tt.want {
				t.Errorf("scan(%q) = %+v, want %+v", tt.text, h, tt.want)
			}
		})
	}
}

func TestHintsFirstValueWins(t *testing.T) {
	var h hints
	h.scan("3 havo periode 2")
	h.scan("5 vwo periode 4")
	if h.niveau != model.NiveauHAVO || h.leerjaar != "3" || h.periode != 2 {
		t.Errorf("hints = %+v, want the first values", h)
	}
}

func TestScanSubject(t *testing.T) {
	tests := []struct {
		name       string
		paragraphs []string
		want       string
	}{
		{"brackets", []string{"Welkom", "Studiewijzer [Aardrijkskunde] 3 havo"}, "Aardrijkskunde"},
		{"dash", []string{"Studiewijzer – Lichamelijke opvoeding - klas 3"}, "Lichamelijke opvoeding"},
		{"colon", []string{"Studiewijzer: Biologie 4 VWO"}, "Biologie"},
		{"brackets before dash", []string{"Studiewijzer - Wiskunde", "[Wiskunde B]"}, "Wiskunde B"},
		{"none", []string{"Planning", "Week 1"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h hints
			h.scanSubject(tt.paragraphs)
			if h.vak != tt.want {
				t.Errorf("scanSubject() = %q, want %q", h.vak, tt.want)
			}
		})
	}
}

func TestScanSubjectOnlyLeadingParagraphs(t *testing.T) {
	paragraphs := make([]string, metaParagraphs)
	paragraphs = append(paragraphs, "[Natuurkunde]")
	var h hints
	h.scanSubject(paragraphs)
	if h.vak != "" {
		t.Errorf("scanSubject() = %q, want no subject past the leading paragraphs", h.vak)
	}
}

func TestSubjectText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Biologie 4 VWO", "Biologie"},
		{"Nederlands (havo)", "Nederlands"},
		{"Economie periode 2", "Economie"},
		{"2025", ""},
		{"Studiewijzer", ""},
		{"Onbekend", ""},
		{"een hele lange zin die geen vak is", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := subjectText(tt.in); got != tt.want {
				t.Errorf("subjectText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestWeekRange(t *testing.T) {
	rows := []model.DocRow{
		{Onderwerp: "Intro"},
		{Week: 46, Weeks: []int{46}},
		{Week: 52, Weeks: []int{52, 1}},
		{Week: 3},
		{Onderwerp: "Afsluiting"},
	}
	begin, end := weekRange(rows)
	if begin != 46 || end != 3 {
		t.Errorf("weekRange() = %d, %d, want 46, 3", begin, end)
	}

	begin, end = weekRange(rows[1:3])
	if begin != 46 || end != 1 {
		t.Errorf("weekRange() = %d, %d, want 46, 1", begin, end)
	}
}

func TestWeekRangeFromText(t *testing.T) {
	begin, end := weekRangeFromText([]string{"Inleiding", "Deze periode loopt van week 46 t/m week 4."})
	if begin != 46 || end != 4 {
		t.Errorf("weekRangeFromText() = %d, %d, want 46, 4", begin, end)
	}
}

func TestBuildMeta(t *testing.T) {
	o := newOptions([]Option{WithNow(func() time.Time {
		return time.Date(2025, 9, 1, 10, 30, 0, 0, time.UTC)
	})})

	if m := buildMeta(hints{}, 0, "leeg.docx", nil, nil, o); m != nil {
		t.Errorf("buildMeta() = %+v, want nil without subject and rows", m)
	}

	rows := []model.DocRow{{Week: 36}, {Week: 38}}
	m := buildMeta(hints{}, 0, "/tmp/x/planning.docx", rows, nil, o)
	if m == nil {
		t.Fatal("buildMeta() = nil, want meta for rows without subject")
	}
	if m.Vak != model.UnknownVak || m.Niveau != model.NiveauHAVO || m.Leerjaar != "1" || m.Periode != 1 {
		t.Errorf("defaults = %q %q %q %d", m.Vak, m.Niveau, m.Leerjaar, m.Periode)
	}
	if m.Bestand != "planning.docx" {
		t.Errorf("Bestand = %q, want planning.docx", m.Bestand)
	}
	if m.BeginWeek != 36 || m.EindWeek != 38 {
		t.Errorf("weeks = %d-%d, want 36-38", m.BeginWeek, m.EindWeek)
	}
	if m.UploadedAt != "2025-09-01T10:30:00Z" {
		t.Errorf("UploadedAt = %q", m.UploadedAt)
	}
	if m.GuideID != model.StableGuideID(*m) || m.FileID != m.GuideID {
		t.Errorf("GuideID = %q, FileID = %q", m.GuideID, m.FileID)
	}
}
