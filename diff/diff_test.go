package diff

import (
	"testing"

	"github.com/tsawler/vlier/model"
)

func sample() []model.DocRow {
	return []model.DocRow{
		{Week: 36, Onderwerp: "Cellen", Huiswerk: "Lees 1.1"},
		{Week: 37, Onderwerp: "Weefsels", Toets: &model.Toets{Type: "SO", Weging: "1x"}},
	}
}

func TestComputeAllAdded(t *testing.T) {
	sum, entries := Compute(nil, sample())
	if sum != (Summary{Added: 2}) {
		t.Errorf("Summary = %+v, want 2 added", sum)
	}
	for _, e := range entries {
		if e.Status != StatusAdded {
			t.Errorf("entry %d status = %s, want added", e.Index, e.Status)
		}
		if f := e.Fields["week"]; f.Status != StatusAdded || f.Old != nil {
			t.Errorf("entry %d week = %+v, want added from nil", e.Index, f)
		}
	}
}

func TestComputeAllRemoved(t *testing.T) {
	sum, entries := Compute(sample(), []model.DocRow{})
	if sum != (Summary{Removed: 2}) {
		t.Errorf("Summary = %+v, want 2 removed", sum)
	}
	if f := entries[1].Fields["onderwerp"]; f.Status != StatusRemoved || f.Old != "Weefsels" || f.New != nil {
		t.Errorf("onderwerp = %+v, want removed Weefsels", f)
	}
}

func TestComputeUnchanged(t *testing.T) {
	sum, entries := Compute(sample(), sample())
	if sum.Added != 0 || sum.Removed != 0 || sum.Changed != 0 || sum.Unchanged != 2 {
		t.Errorf("Summary = %+v, want 2 unchanged", sum)
	}
	for _, e := range entries {
		if e.Status != StatusUnchanged {
			t.Errorf("entry %d status = %s, want unchanged", e.Index, e.Status)
		}
	}
}

func TestComputeFieldStatuses(t *testing.T) {
	old := sample()
	next := sample()
	next[0].Onderwerp = "Cellen en organellen"
	next[0].Huiswerk = ""
	next[0].Notities = "Practicum"
	next[1].Toets = &model.Toets{Type: "SO", Weging: "2x"}
	next = append(next, model.DocRow{Week: 38})

	sum, entries := Compute(old, next)
	if sum != (Summary{Added: 1, Changed: 2}) {
		t.Errorf("Summary = %+v, want 1 added 2 changed", sum)
	}

	tests := []struct {
		index int
		field string
		want  Status
	}{
		{0, "onderwerp", StatusChanged},
		{0, "huiswerk", StatusRemoved},
		{0, "notities", StatusAdded},
		{0, "week", StatusUnchanged},
		{0, "toets", StatusUnchanged},
		{1, "toets", StatusChanged},
		{2, "week", StatusAdded},
	}
	for _, tt := range tests {
		if got := entries[tt.index].Fields[tt.field].Status; got != tt.want {
			t.Errorf("entry %d %s = %s, want %s", tt.index, tt.field, got, tt.want)
		}
	}
}

func TestComputeEnabledDefault(t *testing.T) {
	a := model.DocRow{Week: 40}
	b := model.DocRow{Week: 40}
	b.SetEnabled(true)

	sum, _ := Compute([]model.DocRow{a}, []model.DocRow{b})
	if sum.Unchanged != 1 {
		t.Errorf("Summary = %+v, want unchanged", sum)
	}

	b.SetEnabled(false)
	_, entries := Compute([]model.DocRow{a}, []model.DocRow{b})
	if f := entries[0].Fields["enabled"]; f.Status != StatusChanged || f.Old != true || f.New != false {
		t.Errorf("enabled = %+v, want changed true to false", f)
	}
}
