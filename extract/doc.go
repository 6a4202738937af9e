// Package extract turns DOCX and PDF study guides into schedule rows and
// document metadata.
//
// The readers in the docx and pdf packages deliver tables and text; this
// package decides what they mean. It finds the subject, level, year, period
// and school year of a guide, locates the schedule tables, maps their
// columns with the header package and builds one row per schedule entry:
//
//	meta, err := extract.MetaFromDOCX("biologie.docx", "biologie.docx", nil)
//	rows, err := extract.RowsFromDOCX("biologie.docx", "biologie.docx", nil)
//
// A DOCX file may hold several periods, each introduced by a short heading
// such as "Planning periode 2". [AllPeriodsFromDOCX] returns one [Period]
// per section; the target argument of the other DOCX functions selects one.
//
// PDF pages are laid out into lines, and a header line that names schedule
// columns defines the table grid. Because PDF cells are often misaligned,
// an empty cell may take its text from up to three blank-headed neighbours
// to its right. Pages without a table fall back to line parsing
// ("Week 12: onderwerp"), and pages without a text layer can be OCRed with
// [WithOCR].
//
// Extraction is best effort. Missing subjects or weeks are not errors; they
// are reported by the rows package as warnings.
package extract
