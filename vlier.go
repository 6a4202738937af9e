// Package vlier provides a fluent API for extracting the schedule of a
// Dutch study guide ("studiewijzer") from a DOCX or PDF file.
//
// Basic usage:
//
//	guide, err := vlier.Open("biologie.docx").Guide()
//	if err != nil {
//	    // handle error
//	}
//	if guide.Warnings.Any() {
//	    log.Printf("review needed: %+v", guide.Warnings)
//	}
//
// With options:
//
//	guide, err := vlier.Open("/tmp/upload-1234").
//	    Name("Studiewijzer_Biologie_4V_P2.docx").
//	    Periode(2).
//	    Keywords(kw).
//	    Guide()
//
// Multi-period DOCX guides yield one guide per period:
//
//	guides, err := vlier.Open("biologie.docx").Periods()
//
// For lower-level access the extract, rows and diff packages are available.
package vlier

import (
	"github.com/tsawler/vlier/model"
	"github.com/tsawler/vlier/rows"
)

// Guide is the parsed metadata and rows of one period of a study guide,
// with the warnings a reviewer should look at. Meta is nil when neither a
// subject nor schedule rows were found.
type Guide struct {
	Meta     *model.DocMeta `json:"meta"`
	Rows     []model.DocRow `json:"rows"`
	Warnings rows.Warnings  `json:"warnings"`
}

// Open returns a Parser for the file at path. The file is only read by a
// terminal operation such as Guide.
//
// Example:
//
//	guide, err := vlier.Open("studiewijzer.pdf").Guide()
func Open(path string) *Parser {
	return &Parser{
		path:    path,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	guide := vlier.Must(vlier.Open("studiewijzer.docx").Guide())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
