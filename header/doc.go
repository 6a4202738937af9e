// Package header maps table header text to semantic schedule columns.
//
// Header cells are matched against the keyword sets of a
// [keywords.Config]. [FindIndex] returns the first header containing any of
// a set of keywords. [MergeRows] folds wrapped headers that span several
// physical rows into a single header row, and [MapColumns] assigns every
// column to at most one [Field].
package header
