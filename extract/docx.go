package extract

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/tsawler/vlier/docx"
	"github.com/tsawler/vlier/model"
	"github.com/tsawler/vlier/postprocess"
)

// docxGuide is an opened DOCX guide split into period sections.
type docxGuide struct {
	filename string
	hints    hints
	sections []section
	headed   bool
	texts    []string
	o        *options
}

func openDOCX(path, filename string, o *options) (*docxGuide, error) {
	r, err := docx.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open docx %s: %w", filename, err)
	}
	defer r.Close()

	blocks := r.Blocks()
	g := &docxGuide{filename: filename, o: o}
	for _, b := range blocks {
		if b.Paragraph != nil {
			g.texts = append(g.texts, b.Paragraph.Text)
		}
	}

	g.hints.scan(r.FooterText())
	g.hints.scan(r.HeaderText())
	g.hints.scanSubject(g.texts)
	if t := r.Title(); t != "" {
		g.hints.scanSubject([]string{t})
		g.hints.scan(t)
	}
	for i, t := range g.texts {
		if i == metaParagraphs {
			break
		}
		g.hints.scan(t)
	}
	g.hints.scanFilename(filename)

	g.sections, g.headed = splitSections(blocks)
	o.log.Debug("docx opened",
		zap.String("file", filename),
		zap.Int("blocks", len(blocks)),
		zap.Int("sections", len(g.sections)),
		zap.String("vak", g.hints.vak))
	return g, nil
}

// section returns the section for target, or the first section when target
// is nil. Without period headings the whole body is one section and target
// sets its period.
func (g *docxGuide) section(target *int) (section, bool) {
	if !g.headed {
		s := g.sections[0]
		s.periode = g.hints.periode
		if target != nil {
			s.periode = *target
		}
		return s, true
	}
	if target == nil {
		return g.sections[0], true
	}
	for _, s := range g.sections {
		if s.periode == *target {
			return s, true
		}
	}
	return section{}, false
}

// period extracts the rows and metadata of a section.
func (g *docxGuide) period(s section) Period {
	schooljaar := dateContext(g.hints.schooljaar, g.o)

	var entries []model.RawEntry
	for _, tbl := range s.tables() {
		entries = append(entries, tableEntries(tbl, g.o.kw, schooljaar, false, "")...)
	}
	if len(entries) == 0 {
		entries = lineEntries(s.paragraphs(), g.o.kw, schooljaar, "")
	}
	rows := finishRows(entries, g.hints.vak)

	texts := s.paragraphs()
	if !g.headed {
		texts = g.texts
	}
	return Period{
		Meta: buildMeta(g.hints, s.periode, g.filename, rows, texts, g.o),
		Rows: rows,
	}
}

// finishRows converts entries to rows and applies the subject rules.
func finishRows(entries []model.RawEntry, vak string) []model.DocRow {
	rows := make([]model.DocRow, 0, len(entries))
	for _, e := range entries {
		row := e.Row()
		postprocess.Apply(vak, &row)
		rows = append(rows, row)
	}
	return rows
}

// MetaFromDOCX returns the metadata of a DOCX guide. target selects a period
// in a multi-period document; nil selects the first. The result is nil when
// the guide has neither a subject nor schedule rows, or when target names a
// period the document does not contain.
func MetaFromDOCX(path, filename string, target *int, opts ...Option) (*model.DocMeta, error) {
	o := newOptions(opts)
	g, err := openDOCX(path, filename, o)
	if err != nil {
		return nil, err
	}
	s, ok := g.section(target)
	if !ok {
		return nil, nil
	}
	return g.period(s).Meta, nil
}

// RowsFromDOCX returns the schedule rows of a DOCX guide. target selects a
// period as in MetaFromDOCX.
func RowsFromDOCX(path, filename string, target *int, opts ...Option) ([]model.DocRow, error) {
	o := newOptions(opts)
	g, err := openDOCX(path, filename, o)
	if err != nil {
		return nil, err
	}
	s, ok := g.section(target)
	if !ok {
		return nil, nil
	}
	return g.period(s).Rows, nil
}

// AllPeriodsFromDOCX returns every period of a DOCX guide that has rows, in
// document order. A guide without rows yields its metadata alone when a
// subject was found.
func AllPeriodsFromDOCX(path, filename string, opts ...Option) ([]Period, error) {
	o := newOptions(opts)
	g, err := openDOCX(path, filename, o)
	if err != nil {
		return nil, err
	}

	var out []Period
	var first *Period
	for i := range g.sections {
		s := g.sections[i]
		if !g.headed {
			s.periode = g.hints.periode
		}
		p := g.period(s)
		if p.Meta == nil {
			continue
		}
		if len(p.Rows) > 0 {
			out = append(out, p)
		} else if first == nil {
			first = &p
		}
	}
	if len(out) == 0 && first != nil {
		out = append(out, *first)
	}

	periods := make([]int, len(out))
	for i, p := range out {
		periods[i] = p.Meta.Periode
	}
	o.log.Debug("docx periods", zap.String("file", filename), zap.Ints("periods", periods))
	return out, nil
}
