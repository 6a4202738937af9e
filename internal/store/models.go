package store

import (
	"time"

	"gorm.io/datatypes"

	"github.com/tsawler/vlier/diff"
	"github.com/tsawler/vlier/model"
	"github.com/tsawler/vlier/rows"
)

// Guide is one study guide. LatestVersion is 0 until the first commit.
type Guide struct {
	ID            string    `gorm:"primaryKey;size:32" json:"id"`
	Vak           string    `gorm:"not null;default:''" json:"vak"`
	Niveau        string    `gorm:"size:16;not null;default:''" json:"niveau"`
	Leerjaar      string    `gorm:"size:8;not null;default:''" json:"leerjaar"`
	Periode       int       `gorm:"not null;default:0" json:"periode"`
	Schooljaar    string    `gorm:"size:16;not null;default:''" json:"schooljaar"`
	LatestVersion int       `gorm:"not null;default:0" json:"latestVersion"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// TableName implements gorm's tabler.
func (Guide) TableName() string { return "guides" }

// GuideFromMeta returns the guide a version with meta belongs to.
func GuideFromMeta(meta model.DocMeta) Guide {
	id := meta.GuideID
	if id == "" {
		id = model.StableGuideID(meta)
	}
	return Guide{
		ID:         id,
		Vak:        meta.Vak,
		Niveau:     string(meta.Niveau),
		Leerjaar:   meta.Leerjaar,
		Periode:    meta.Periode,
		Schooljaar: meta.Schooljaar,
	}
}

// Changes is the diff of a version against its predecessor.
type Changes struct {
	Summary diff.Summary `json:"summary"`
	Entries []diff.Entry `json:"entries"`
}

// Version is one committed snapshot of a guide.
type Version struct {
	GuideID   string                            `gorm:"primaryKey;size:32" json:"guideId"`
	VersionID int                               `gorm:"primaryKey;autoIncrement:false" json:"versionId"`
	Bestand   string                            `gorm:"not null;default:''" json:"bestand"`
	Meta      datatypes.JSONType[model.DocMeta] `gorm:"type:jsonb;not null" json:"meta"`
	Rows      datatypes.JSONSlice[model.DocRow] `gorm:"column:doc_rows;type:jsonb;not null" json:"rows"`
	Diff      datatypes.JSONType[Changes]       `gorm:"type:jsonb;not null" json:"diff"`
	Warnings  datatypes.JSONType[rows.Warnings] `gorm:"type:jsonb;not null" json:"warnings"`
	CreatedAt time.Time                         `json:"createdAt"`
}

// TableName implements gorm's tabler.
func (Version) TableName() string { return "guide_versions" }

func newMeta(m model.DocMeta) datatypes.JSONType[model.DocMeta] {
	return datatypes.NewJSONType(m)
}
