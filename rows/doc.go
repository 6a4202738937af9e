// Package rows normalizes extracted schedule rows before they are stored.
//
// The steps run in a fixed order in [Normalize]: every row gets an explicit
// enabled flag, dates are aligned with their weeks, and repeated week/date
// rows are disabled. Disabled rows stay in the slice so a reviewer can turn
// them back on.
//
// [ComputeWarnings] reports the heuristics that need a human look: a missing
// subject, rows without a week, and repeated dates or weeks.
package rows
