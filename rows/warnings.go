package rows

import (
	"github.com/tsawler/vlier/model"
)

// Warnings flags extraction results that need review.
type Warnings struct {
	UnknownSubject bool `json:"unknownSubject"`
	MissingWeek    bool `json:"missingWeek"`
	DuplicateDate  bool `json:"duplicateDate"`
	DuplicateWeek  bool `json:"duplicateWeek"`
}

// Any reports whether any warning is set.
func (w Warnings) Any() bool {
	return w.UnknownSubject || w.MissingWeek || w.DuplicateDate || w.DuplicateWeek
}

// ComputeWarnings inspects a parsed guide. Only enabled rows count for
// missing weeks and repeated dates. Repeated weeks are counted over every
// row, or over enabled rows alone when ignoreDisabledDuplicates is set.
func ComputeWarnings(meta *model.DocMeta, rows []model.DocRow, ignoreDisabledDuplicates bool) Warnings {
	var w Warnings
	w.UnknownSubject = meta == nil || !meta.HasSubject()

	dates := make(map[string]bool)
	weeks := make(map[int]bool)
	for _, r := range rows {
		enabled := r.IsEnabled()

		if enabled && len(r.AllWeeks()) == 0 {
			w.MissingWeek = true
		}
		if enabled && r.Datum != "" {
			if dates[r.Datum] {
				w.DuplicateDate = true
			}
			dates[r.Datum] = true
		}
		if r.Week > 0 && (enabled || !ignoreDisabledDuplicates) {
			if weeks[r.Week] {
				w.DuplicateWeek = true
			}
			weeks[r.Week] = true
		}
	}
	return w
}
