// Package model defines the data types shared by the extraction pipeline.
//
// # Guides and rows
//
// A parsed study guide ("studiewijzer") is described by a [DocMeta] and an
// ordered list of [DocRow] values, one per schedule entry:
//
//	meta := model.DocMeta{Vak: "Biologie", Niveau: model.NiveauVWO, Leerjaar: "4", Periode: 2}
//	meta.GuideID = model.StableGuideID(meta)
//
// The guide id is a deterministic hash of the subject, level, year, period and
// school year, so re-uploads of the same guide share an id without any
// explicit document identity.
//
// Extractors build [RawEntry] values first. A RawEntry carries parser-only
// state such as the holiday flag and is converted with [RawEntry.Row].
//
// # Tables
//
// [Table] and [Cell] are the format-neutral grid that the DOCX and PDF readers
// produce. Cells spanning several grid positions are repeated at every
// position they cover; [Cell.Origin] identifies the physical cell so a single
// merged cell is never read twice as two different fields.
//
// # Geometry
//
// [BBox], [Point] and [Matrix] describe positions in PDF user space.
package model
