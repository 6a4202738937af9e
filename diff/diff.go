package diff

import (
	"encoding/json"
	"reflect"

	"github.com/tsawler/vlier/model"
)

// Status is the diff status of a row or field.
type Status string

const (
	StatusAdded     Status = "added"
	StatusRemoved   Status = "removed"
	StatusChanged   Status = "changed"
	StatusUnchanged Status = "unchanged"
)

// Fields lists the compared row fields by their JSON name, in output order.
var Fields = []string{
	"week", "weeks", "week_span_start", "week_span_end", "week_label",
	"datum", "datum_eind", "les", "onderwerp", "leerdoelen", "huiswerk",
	"opdracht", "inleverdatum", "toets", "bronnen", "notities",
	"klas_of_groep", "locatie", "source_row_id", "enabled",
}

// Field is the diff of one field.
type Field struct {
	Status Status `json:"status"`
	Old    any    `json:"old"`
	New    any    `json:"new"`
}

// Entry is the diff of the rows at one position.
type Entry struct {
	Index  int              `json:"index"`
	Status Status           `json:"status"`
	Fields map[string]Field `json:"fields"`
}

// Summary counts rows per status.
type Summary struct {
	Added     int `json:"added"`
	Removed   int `json:"removed"`
	Changed   int `json:"changed"`
	Unchanged int `json:"unchanged"`
}

func (s *Summary) count(st Status) {
	switch st {
	case StatusAdded:
		s.Added++
	case StatusRemoved:
		s.Removed++
	case StatusChanged:
		s.Changed++
	case StatusUnchanged:
		s.Unchanged++
	}
}

// Compute compares the rows of two versions position by position.
func Compute(prev, next []model.DocRow) (Summary, []Entry) {
	n := max(len(prev), len(next))
	var sum Summary
	entries := make([]Entry, 0, n)

	for i := 0; i < n; i++ {
		var o, nw map[string]any
		if i < len(prev) {
			o = values(prev[i])
		}
		if i < len(next) {
			nw = values(next[i])
		}

		e := Entry{Index: i, Fields: make(map[string]Field, len(Fields))}
		switch {
		case o == nil:
			e.Status = StatusAdded
		case nw == nil:
			e.Status = StatusRemoved
		default:
			e.Status = StatusUnchanged
		}

		for _, name := range Fields {
			f := compare(o[name], nw[name])
			switch e.Status {
			case StatusAdded:
				f.Status = StatusAdded
			case StatusRemoved:
				f.Status = StatusRemoved
			}
			if f.Status != StatusUnchanged && e.Status == StatusUnchanged {
				e.Status = StatusChanged
			}
			e.Fields[name] = f
		}

		sum.count(e.Status)
		entries = append(entries, e)
	}
	return sum, entries
}

func compare(o, n any) Field {
	f := Field{Old: o, New: n}
	switch {
	case o == nil && n == nil:
		f.Status = StatusUnchanged
	case o == nil:
		f.Status = StatusAdded
	case n == nil:
		f.Status = StatusRemoved
	case reflect.DeepEqual(o, n):
		f.Status = StatusUnchanged
	default:
		f.Status = StatusChanged
	}
	return f
}

// values returns the fields of a row in their JSON form. Empty values are
// left out, so an empty string and a missing list compare equal.
func values(r model.DocRow) map[string]any {
	if r.Enabled == nil {
		r.SetEnabled(true)
	}
	data, err := json.Marshal(r)
	if err != nil {
		return map[string]any{}
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil || m == nil {
		return map[string]any{}
	}
	for k, v := range m {
		if empty(v) {
			delete(m, k)
		}
	}
	return m
}

func empty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		for _, x := range t {
			if !empty(x) {
				return false
			}
		}
		return true
	}
	return false
}
