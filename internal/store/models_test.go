package store

import (
	"testing"

	"github.com/tsawler/vlier/model"
)

func TestGuideFromMeta(t *testing.T) {
	meta := model.DocMeta{Vak: "Economie", Niveau: model.NiveauHAVO, Leerjaar: "4", Periode: 1, Schooljaar: "2025/2026"}

	g := GuideFromMeta(meta)
	if g.ID != model.StableGuideID(meta) {
		t.Errorf("ID = %q, want %q", g.ID, model.StableGuideID(meta))
	}
	if g.Vak != "Economie" || g.Niveau != "HAVO" || g.Leerjaar != "4" || g.Periode != 1 || g.Schooljaar != "2025/2026" {
		t.Errorf("GuideFromMeta() = %+v", g)
	}

	meta.GuideID = "fixed"
	if got := GuideFromMeta(meta).ID; got != "fixed" {
		t.Errorf("ID = %q, want %q", got, "fixed")
	}
}

func TestVersionColumns(t *testing.T) {
	v := Version{}
	v.Meta = newMeta(model.DocMeta{Vak: "Economie"})
	if got := v.Meta.Data().Vak; got != "Economie" {
		t.Errorf("Meta.Data().Vak = %q, want %q", got, "Economie")
	}
	raw, err := v.Meta.Value()
	if err != nil {
		t.Fatalf("Meta.Value() error = %v", err)
	}
	var back Version
	if err := back.Meta.Scan(raw); err != nil {
		t.Fatalf("Meta.Scan() error = %v", err)
	}
	if back.Meta.Data().Vak != "Economie" {
		t.Errorf("scanned Vak = %q, want %q", back.Meta.Data().Vak, "Economie")
	}
}
