// Package cell parses the free-text content of schedule table cells into
// week numbers, week spans and ISO dates.
//
// Week cells come in many shapes: "5", "wk 52-1-2", "Week 3/4",
// "46 en 47" or "Week 46 (25-11 t/m 29-11)". [ParseWeeks] strips explicit
// date ranges first, so day and month digits are never read as weeks, then
// applies a fixed sequence of patterns and keeps every week in 1..53 in
// first-seen order.
//
// Date cells use day-month order, either numeric ("28-10", "28/10/2025") or
// with a Dutch month name ("28 okt", "28 oktober 2025"). A missing year is
// taken from the school year: months from August onward belong to its first
// calendar year, earlier months to the second.
package cell
