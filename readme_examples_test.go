package vlier_test

import (
	"fmt"
	"log"

	"github.com/tsawler/vlier"
	"github.com/tsawler/vlier/diff"
	"github.com/tsawler/vlier/keywords"
	"github.com/tsawler/vlier/rows"
)

// These examples verify the README code samples compile correctly.
// They are not meant to be run as actual tests since they require files.

func Example_parseGuide() {
	// Works with both DOCX and PDF files
	guide, err := vlier.Open("studiewijzer.docx").Guide()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(guide.Meta.Vak, guide.Meta.Niveau, guide.Meta.Leerjaar)
	for _, r := range guide.Rows {
		fmt.Println(r.Week, r.Datum, r.Onderwerp)
	}

	if guide.Warnings.Any() {
		fmt.Printf("review needed: %+v\n", guide.Warnings)
	}
}

func Example_uploadedFile() {
	// Uploaded files often live under a temporary name. The original name
	// still carries subject and level hints.
	guide, err := vlier.Open("/tmp/upload-8123").
		Name("Studiewijzer_Biologie_4V_P2.docx").
		Periode(2).
		Guide()
	_ = guide
	_ = err
}

func Example_allPeriods() {
	guides, err := vlier.Open("studiewijzer.docx").Periods()
	if err != nil {
		log.Fatal(err)
	}
	for _, g := range guides {
		fmt.Printf("periode %d: %d rows\n", g.Meta.Periode, len(g.Rows))
	}
}

func Example_customKeywords() {
	kw, err := keywords.Load("keywords.json")
	if err != nil {
		log.Fatal(err)
	}
	guide, err := vlier.Open("studiewijzer.pdf").Keywords(kw).OCR().Guide()
	_ = guide
	_ = err
}

func Example_rawRows() {
	// Skip date normalization and deduplication, then apply them by hand.
	guide, err := vlier.Open("studiewijzer.docx").Raw().Guide()
	if err != nil {
		log.Fatal(err)
	}
	normalized := rows.Normalize(guide.Meta.Schooljaar, guide.Rows)
	warnings := rows.ComputeWarnings(guide.Meta, normalized, true)
	_ = warnings
}

func Example_compareVersions() {
	before := vlier.Must(vlier.Open("v1.docx").Guide())
	after := vlier.Must(vlier.Open("v2.docx").Guide())

	summary, entries := diff.Compute(before.Rows, after.Rows)
	fmt.Printf("%d changed, %d added, %d removed\n", summary.Changed, summary.Added, summary.Removed)
	for _, e := range entries {
		if e.Status == diff.StatusChanged {
			for field, f := range e.Fields {
				if f.Status == diff.StatusChanged {
					fmt.Printf("row %d %s: %v -> %v\n", e.Index, field, f.Old, f.New)
				}
			}
		}
	}
}
