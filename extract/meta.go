package extract

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/tsawler/vlier/cell"
	"github.com/tsawler/vlier/keywords"
	"github.com/tsawler/vlier/model"
)

// metaParagraphs is the number of leading paragraphs searched for the
// subject.
const metaParagraphs = 25

// Defaults for values a guide does not state.
const (
	defaultNiveau   = model.NiveauHAVO
	defaultLeerjaar = "1"
	defaultPeriode  = 1
)

var (
	bracketRe      = regexp.MustCompile(`\[([^\[\]]{2,60})\]`)
	studiewijzerRe = regexp.MustCompile(`(?i)\bstudiewijzer\s*(?:-|:)\s*(.+)$`)
	vakStopRe      = regexp.MustCompile(`(?i)\s[-|,(:/]|\b(?:havo|vwo|atheneum|gymnasium|mavo|vmbo|periode|klas|leerjaar|schooljaar|sj|week)\b|\b[1-6]\s*(?:h|v)\b|\d`)
	niveauRe       = regexp.MustCompile(`(?i)\b(havo|vwo|atheneum|gymnasium)\b`)
	yearLevelRe    = regexp.MustCompile(`(?i)\b([1-6])\s*-?\s*(havo|vwo|atheneum|gymnasium)\b|\b([1-6])(h|v)\b`)
	levelYearRe    = regexp.MustCompile(`(?i)\b(havo|vwo)\s*-?\s*([1-6])\b|\b(h|v)([1-6])\b`)
	leerjaarRe     = regexp.MustCompile(`(?i)\b(?:leerjaar|klas|jaar)\s*:?\s*([1-6])\b|\b([1-6])e?\s+(?:klas|leerjaar)\b`)
	periodeRe      = regexp.MustCompile(`(?i)\bperiode\s*:?\s*([1-4])\b`)
	filePeriodeRe  = regexp.MustCompile(`(?i)^(?:p|per|periode)([1-4])$`)
	weekRangeRe    = regexp.MustCompile(`(?i)\b(?:week|wk)\s*(\d{1,2})\s*(?:t/m|tot en met|tot|-)\s*(?:(?:week|wk)\s*)?(\d{1,2})\b`)
)

// hints collects metadata found in document text. The first value found for
// each field wins.
type hints struct {
	vak        string
	niveau     model.Niveau
	leerjaar   string
	periode    int
	schooljaar string
}

// scan fills the fields other than the subject from text.
func (h *hints) scan(text string) {
	t := cell.Normalize(text)
	if t == "" {
		return
	}
	if h.niveau == "" || h.leerjaar == "" {
		if m := yearLevelRe.FindStringSubmatch(t); m != nil {
			if m[1] != "" {
				h.setLevel(m[2], m[1])
			} else {
				h.setLevel(m[4], m[3])
			}
		}
	}
	if h.niveau == "" || h.leerjaar == "" {
		if m := levelYearRe.FindStringSubmatch(t); m != nil {
			if m[1] != "" {
				h.setLevel(m[1], m[2])
			} else {
				h.setLevel(m[3], m[4])
			}
		}
	}
	if h.niveau == "" {
		if m := niveauRe.FindStringSubmatch(t); m != nil {
			h.niveau = niveauOf(m[1])
		}
	}
	if h.leerjaar == "" {
		if m := leerjaarRe.FindStringSubmatch(t); m != nil {
			h.leerjaar = m[1] + m[2]
		}
	}
	if h.periode == 0 {
		if m := periodeRe.FindStringSubmatch(t); m != nil {
			h.periode, _ = strconv.Atoi(m[1])
		}
	}
	if h.schooljaar == "" {
		if sj, ok := cell.ParseSchoolYear(t); ok {
			h.schooljaar = sj
		}
	}
}

func (h *hints) setLevel(level, year string) {
	if h.niveau == "" {
		h.niveau = niveauOf(level)
	}
	if h.leerjaar == "" {
		h.leerjaar = year
	}
}

func niveauOf(s string) model.Niveau {
	switch strings.ToLower(s) {
	case "havo", "h":
		return model.NiveauHAVO
	case "vwo", "v", "atheneum", "gymnasium":
		return model.NiveauVWO
	}
	return ""
}

// scanSubject looks for the subject in the leading paragraphs: bracketed
// text first, then the text after "Studiewijzer -".
func (h *hints) scanSubject(paragraphs []string) {
	if h.vak != "" {
		return
	}
	if len(paragraphs) > metaParagraphs {
		paragraphs = paragraphs[:metaParagraphs]
	}
	for _, p := range paragraphs {
		for _, m := range bracketRe.FindAllStringSubmatch(cell.Clean(p), -1) {
			if v := subjectText(m[1]); v != "" {
				h.vak = v
				return
			}
		}
	}
	for _, p := range paragraphs {
		if m := studiewijzerRe.FindStringSubmatch(cell.Clean(p)); m != nil {
			if v := subjectText(m[1]); v != "" {
				h.vak = v
				return
			}
		}
	}
}

// scanFilename reads a file name such as
// "Studiewijzer_Biologie_4H_P2_24-25.docx".
func (h *hints) scanFilename(filename string) {
	base := filepath.Base(filename)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." {
		return
	}

	var words []string
	for _, tok := range strings.FieldsFunc(base, func(r rune) bool {
		return r == '_' || r == '.' || unicode.IsSpace(r)
	}) {
		if sj, ok := cell.ParseSchoolYearToken(tok); ok {
			if h.schooljaar == "" {
				h.schooljaar = sj
			}
			continue
		}
		for _, part := range strings.Split(tok, "-") {
			if part == "" {
				continue
			}
			if m := filePeriodeRe.FindStringSubmatch(part); m != nil {
				if h.periode == 0 {
					h.periode, _ = strconv.Atoi(m[1])
				}
				continue
			}
			if isLevelToken(part) {
				h.scan(part)
				continue
			}
			words = append(words, part)
		}
	}

	joined := strings.Join(words, " ")
	h.scan(joined)
	if h.vak == "" {
		h.vak = filenameSubject(words)
	}
}

func isLevelToken(s string) bool {
	return yearLevelRe.MatchString(s) && yearLevelRe.FindString(s) == s ||
		levelYearRe.MatchString(s) && levelYearRe.FindString(s) == s
}

func filenameSubject(words []string) string {
	var kept []string
	for _, w := range words {
		f := keywords.Fold(w)
		switch {
		case f == "studiewijzer" || f == "sw" || f == "planning" || f == "pta":
			continue
		case niveauRe.MatchString(w) || strings.IndexFunc(w, unicode.IsDigit) >= 0:
			continue
		case f == "periode" || f == "klas" || f == "leerjaar" || f == "schooljaar":
			continue
		}
		kept = append(kept, w)
	}
	return capitalize(subjectText(strings.Join(kept, " ")))
}

// subjectText trims level, period and year details off a subject candidate.
func subjectText(s string) string {
	s = cell.Clean(s)
	if loc := vakStopRe.FindStringIndex(s); loc != nil {
		s = s[:loc[0]]
	}
	s = strings.Trim(s, " -:|,.;/")
	if s == "" || utf8.RuneCountInString(s) < 2 || len(strings.Fields(s)) > 5 {
		return ""
	}
	if strings.IndexFunc(s, unicode.IsLetter) < 0 {
		return ""
	}
	if keywords.Fold(s) == "studiewijzer" || strings.EqualFold(s, model.UnknownVak) {
		return ""
	}
	return s
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// weekRangeFromText finds "week N t/m M" in texts.
func weekRangeFromText(texts []string) (begin, end int) {
	for _, t := range texts {
		m := weekRangeRe.FindStringSubmatch(cell.Normalize(t))
		if m == nil {
			continue
		}
		b, _ := strconv.Atoi(m[1])
		e, _ := strconv.Atoi(m[2])
		if b >= cell.MinWeek && b <= cell.MaxWeek && e >= cell.MinWeek && e <= cell.MaxWeek {
			return b, e
		}
	}
	return 0, 0
}

// weekRange returns the first week of the first row and the last week of the
// last row that carry weeks.
func weekRange(rows []model.DocRow) (begin, end int) {
	for _, r := range rows {
		if w := r.AllWeeks(); len(w) > 0 {
			begin = w[0]
			break
		}
	}
	for i := len(rows) - 1; i >= 0; i-- {
		if w := rows[i].AllWeeks(); len(w) > 0 {
			end = w[len(w)-1]
			break
		}
	}
	return begin, end
}

// buildMeta assembles the metadata of one section. It returns nil when the
// section has neither a subject nor rows.
func buildMeta(h hints, periode int, filename string, rows []model.DocRow, texts []string, o *options) *model.DocMeta {
	meta := model.DocMeta{
		Bestand:    filepath.Base(filename),
		Vak:        h.vak,
		Niveau:     h.niveau,
		Leerjaar:   h.leerjaar,
		Periode:    periode,
		Schooljaar: h.schooljaar,
		UploadedAt: o.now().UTC().Format(time.RFC3339),
	}
	if !meta.HasSubject() && len(rows) == 0 {
		return nil
	}
	if meta.Vak == "" {
		meta.Vak = model.UnknownVak
	}
	if meta.Niveau == "" {
		meta.Niveau = defaultNiveau
	}
	if meta.Leerjaar == "" {
		meta.Leerjaar = defaultLeerjaar
	}
	if meta.Periode == 0 {
		meta.Periode = defaultPeriode
	}

	meta.BeginWeek, meta.EindWeek = weekRange(rows)
	if meta.BeginWeek == 0 {
		meta.BeginWeek, meta.EindWeek = weekRangeFromText(texts)
	}

	meta.GuideID = model.StableGuideID(meta)
	meta.FileID = meta.GuideID
	return &meta
}

// dateContext returns the school year used to complete dates without a
// year.
func dateContext(schooljaar string, o *options) string {
	if schooljaar != "" {
		return schooljaar
	}
	return cell.SchoolYearOf(o.now())
}
