// Package postprocess applies subject-specific cleanup rules to extracted
// rows.
//
// Rules are kept in a table keyed by a subject-name prefix. [Apply] looks up
// the rule for a subject, matching the prefix case-insensitively, and runs
// it on one row. Subjects without a rule pass through unchanged.
package postprocess
