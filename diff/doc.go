// Package diff compares two versions of a guide's rows.
//
// Rows are paired by position: row i of the old version is compared with
// row i of the new one. Each field of a pair is marked added, removed,
// changed or unchanged, and the row takes the status changed when any field
// differs. Inserting a row in the middle therefore reports every following
// row as changed.
package diff
