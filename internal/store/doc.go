// Package store persists study guides and their append-only versions in
// PostgreSQL.
//
// A Guide is keyed by model.StableGuideID, so re-uploading the same subject,
// level, year, period and school year appends to the same history. Versions
// are numbered from 1 and never updated after they are written.
package store
