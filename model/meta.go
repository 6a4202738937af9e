package model

import (
	"crypto/sha1"
	"encoding/hex"
	"strconv"
	"strings"
)

// Niveau is the education level of a study guide.
type Niveau string

// Supported education levels.
const (
	NiveauHAVO Niveau = "HAVO"
	NiveauVWO  Niveau = "VWO"
)

// UnknownVak is stored when no subject could be detected.
const UnknownVak = "Onbekend"

// DocMeta holds per-document metadata.
type DocMeta struct {
	FileID     string `json:"fileId"`
	GuideID    string `json:"guideId"`
	Bestand    string `json:"bestand"`
	Vak        string `json:"vak"`
	Niveau     Niveau `json:"niveau"`
	Leerjaar   string `json:"leerjaar"`
	Periode    int    `json:"periode"`
	BeginWeek  int    `json:"beginWeek"`
	EindWeek   int    `json:"eindWeek"`
	Schooljaar string `json:"schooljaar,omitempty"`
	UploadedAt string `json:"uploadedAt"`
	VersionID  int    `json:"versionId"`
}

// HasSubject reports whether a real subject was detected.
func (m DocMeta) HasSubject() bool {
	v := strings.TrimSpace(m.Vak)
	return v != "" && !strings.EqualFold(v, UnknownVak)
}

// WrapsYear reports whether the week range crosses a calendar year boundary.
func (m DocMeta) WrapsYear() bool {
	return m.BeginWeek > 0 && m.EindWeek > 0 && m.EindWeek < m.BeginWeek
}

// StableGuideID returns the deterministic guide id for meta: the first 16 hex
// characters of the SHA-1 of the lowercased, whitespace-collapsed subject,
// level, year, period and school year.
func StableGuideID(meta DocMeta) string {
	parts := []string{
		normalizeKey(meta.Vak),
		normalizeKey(string(meta.Niveau)),
		normalizeKey(meta.Leerjaar),
		strconv.Itoa(meta.Periode),
		normalizeKey(meta.Schooljaar),
	}
	sum := sha1.Sum([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])[:16]
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
