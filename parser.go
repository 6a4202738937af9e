package vlier

import (
	"time"

	"go.uber.org/zap"

	"github.com/tsawler/vlier/extract"
	"github.com/tsawler/vlier/format"
	"github.com/tsawler/vlier/keywords"
	"github.com/tsawler/vlier/model"
	"github.com/tsawler/vlier/rows"
)

// Parser provides a fluent interface for parsing a study guide.
// Each configuration method returns a new Parser, so a configured Parser
// can be shared and reused safely.
type Parser struct {
	path    string
	options parseOptions
}

func (p *Parser) clone() *Parser {
	return &Parser{path: p.path, options: p.options.clone()}
}

// ============================================================================
// Configuration Methods (return new Parser instance)
// ============================================================================

// Name sets the original file name. Uploaded files are often stored under
// a temporary path; the name still carries subject and level hints.
//
// Example:
//
//	guide, err := vlier.Open(tmp).Name("Biologie_4V_P2.docx").Guide()
func (p *Parser) Name(filename string) *Parser {
	c := p.clone()
	c.options.name = filename
	return c
}

// Periode selects the period of a multi-period DOCX guide.
//
// Example:
//
//	guide, err := vlier.Open("biologie.docx").Periode(2).Guide()
func (p *Parser) Periode(n int) *Parser {
	c := p.clone()
	c.options.periode = &n
	return c
}

// Keywords replaces the built-in keyword sets.
func (p *Parser) Keywords(kw *keywords.Config) *Parser {
	c := p.clone()
	if kw != nil {
		c.options.kw = kw
	}
	return c
}

// Logger sets the logger used while parsing.
func (p *Parser) Logger(log *zap.Logger) *Parser {
	c := p.clone()
	if log != nil {
		c.options.log = log
	}
	return c
}

// OCR enables text recognition for scanned PDF pages. It only has effect
// in binaries built with the ocr tag.
func (p *Parser) OCR() *Parser {
	c := p.clone()
	c.options.ocr = true
	return c
}

// Now sets the clock used for upload timestamps and for dates without a
// school year.
func (p *Parser) Now(now func() time.Time) *Parser {
	c := p.clone()
	c.options.now = now
	return c
}

// Raw returns rows as extracted, without date normalization or
// deduplication.
func (p *Parser) Raw() *Parser {
	c := p.clone()
	c.options.raw = true
	return c
}

// CountDisabledDuplicates makes the duplicate week warning count disabled
// rows too.
func (p *Parser) CountDisabledDuplicates() *Parser {
	c := p.clone()
	c.options.ignoreDisabled = false
	return c
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Format returns the detected format of the file.
func (p *Parser) Format() (format.Format, error) {
	return extract.FormatOf(p.path, p.filename())
}

// Meta returns the metadata of the guide, or nil when no subject and no
// schedule rows were found.
func (p *Parser) Meta() (*model.DocMeta, error) {
	g, err := p.Guide()
	if err != nil {
		return nil, err
	}
	return g.Meta, nil
}

// Rows returns the schedule rows of the guide.
func (p *Parser) Rows() ([]model.DocRow, error) {
	g, err := p.Guide()
	if err != nil {
		return nil, err
	}
	return g.Rows, nil
}

// Guide parses the guide. For a multi-period DOCX the period chosen with
// Periode is returned, or the first period otherwise.
//
// When the metadata is found but reading the rows fails, the error is
// logged and the guide is returned without rows.
func (p *Parser) Guide() (*Guide, error) {
	ft, err := p.Format()
	if err != nil {
		return nil, err
	}

	if ft == format.DOCX && p.options.periode != nil {
		return p.targetPeriod()
	}

	periods, err := extract.Periods(p.path, p.filename(), p.extractOptions()...)
	if err != nil {
		return nil, err
	}
	if len(periods) == 0 {
		return p.finish(nil, nil), nil
	}
	return p.finish(periods[0].Meta, periods[0].Rows), nil
}

// Periods parses every period of the guide. PDF guides and DOCX guides
// without period headings yield at most one.
//
// Example:
//
//	guides, err := vlier.Open("biologie.docx").Periods()
//	for _, g := range guides {
//	    fmt.Println(g.Meta.Periode, len(g.Rows))
//	}
func (p *Parser) Periods() ([]*Guide, error) {
	periods, err := extract.Periods(p.path, p.filename(), p.extractOptions()...)
	if err != nil {
		return nil, err
	}
	out := make([]*Guide, 0, len(periods))
	for _, period := range periods {
		out = append(out, p.finish(period.Meta, period.Rows))
	}
	return out, nil
}

func (p *Parser) targetPeriod() (*Guide, error) {
	opts := p.extractOptions()
	meta, err := extract.MetaFromDOCX(p.path, p.filename(), p.options.periode, opts...)
	if err != nil {
		return nil, err
	}
	rs, err := extract.RowsFromDOCX(p.path, p.filename(), p.options.periode, opts...)
	if err != nil {
		if meta == nil {
			return nil, err
		}
		p.options.log.Warn("reading rows failed, continuing without rows",
			zap.String("file", p.filename()), zap.Error(err))
		rs = nil
	}
	return p.finish(meta, rs), nil
}

func (p *Parser) finish(meta *model.DocMeta, rs []model.DocRow) *Guide {
	if !p.options.raw {
		schooljaar := ""
		if meta != nil {
			schooljaar = meta.Schooljaar
		}
		rs = rows.Normalize(schooljaar, rs)
	}
	if rs == nil {
		rs = []model.DocRow{}
	}
	return &Guide{
		Meta:     meta,
		Rows:     rs,
		Warnings: rows.ComputeWarnings(meta, rs, p.options.ignoreDisabled),
	}
}

func (p *Parser) filename() string {
	if p.options.name != "" {
		return p.options.name
	}
	return p.path
}

func (p *Parser) extractOptions() []extract.Option {
	opts := []extract.Option{
		extract.WithKeywords(p.options.kw),
		extract.WithLogger(p.options.log),
		extract.WithOCR(p.options.ocr),
	}
	if p.options.now != nil {
		opts = append(opts, extract.WithNow(p.options.now))
	}
	return opts
}
