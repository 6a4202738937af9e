package extract

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/tsawler/vlier/cell"
	"github.com/tsawler/vlier/header"
	"github.com/tsawler/vlier/model"
	"github.com/tsawler/vlier/ocr"
	"github.com/tsawler/vlier/pdf"
)

var pageNumberRe = regexp.MustCompile(`(?i)^(?:pagina|page|blz\.?|p\.)?\s*\d{1,3}(?:\s*(?:van|of|/)\s*\d{1,3})?$`)

// pdfTable is the table layout carried from page to page.
type pdfTable struct {
	grid    pdf.Grid
	line    pdf.Line
	headers []string
	cols    header.Columns
	anchor  int
}

// pdfPage is the text of one page. lines is nil for OCRed pages.
type pdfPage struct {
	number int
	lines  []pdf.Line
	texts  []string
}

// pdfGuide is an opened PDF guide.
type pdfGuide struct {
	filename string
	doc      *pdf.Document
	hints    hints
	texts    []string
	o        *options

	table  *pdfTable
	tables int
	ocr    *ocr.Client
	ocrErr error
}

func openPDF(path, filename string, o *options) (*pdfGuide, error) {
	doc, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", filename, err)
	}
	return &pdfGuide{filename: filename, doc: doc, o: o}, nil
}

func (g *pdfGuide) close() {
	if g.ocr != nil {
		if err := g.ocr.Close(); err != nil {
			g.o.log.Warn("closing ocr client", zap.Error(err))
		}
	}
}

// parse reads every page and returns the metadata and rows.
func (g *pdfGuide) parse() (*model.DocMeta, []model.DocRow) {
	defer g.close()

	pages := make([]pdfPage, 0, g.doc.NumPages())
	for n := 1; n <= g.doc.NumPages(); n++ {
		p := g.readPage(n)
		pages = append(pages, p)
		g.texts = append(g.texts, p.texts...)
	}

	if t := g.doc.Title(); t != "" {
		g.hints.scanSubject([]string{t})
	}
	g.hints.scanSubject(g.texts)
	for i, t := range g.texts {
		if i == metaParagraphs {
			break
		}
		g.hints.scan(t)
	}
	g.hints.scan(g.doc.Title())
	g.hints.scanFilename(g.filename)

	schooljaar := dateContext(g.hints.schooljaar, g.o)
	var entries []model.RawEntry
	for _, p := range pages {
		entries = append(entries, g.pageEntries(p, schooljaar)...)
	}
	rows := finishRows(entries, g.hints.vak)
	g.o.log.Debug("pdf parsed",
		zap.String("file", g.filename),
		zap.Int("pages", len(pages)),
		zap.Int("tables", g.tables),
		zap.Int("rows", len(rows)))
	return buildMeta(g.hints, g.hints.periode, g.filename, rows, g.texts, g.o), rows
}

// readPage returns the text lines of page n, OCRing pages without a text
// layer when enabled.
func (g *pdfGuide) readPage(n int) pdfPage {
	p := pdfPage{number: n}
	page, err := g.doc.Page(n)
	if err != nil {
		g.o.log.Warn("skipping pdf page", zap.String("file", g.filename), zap.Int("page", n), zap.Error(err))
		return p
	}
	if page.HasText() {
		p.lines = trimPageNumbers(page.Lines())
		p.texts = make([]string, len(p.lines))
		for i, l := range p.lines {
			p.texts[i] = l.Text()
		}
		return p
	}
	for _, l := range strings.Split(g.recognize(n), "\n") {
		if l = cell.Clean(l); l != "" {
			p.texts = append(p.texts, l)
		}
	}
	return p
}

// recognize OCRs the images of page n.
func (g *pdfGuide) recognize(n int) string {
	if !g.o.ocr {
		g.o.log.Warn("pdf page has no text layer", zap.String("file", g.filename), zap.Int("page", n))
		return ""
	}
	if g.ocr == nil && g.ocrErr == nil {
		g.ocr, g.ocrErr = ocr.New()
	}
	if g.ocrErr != nil {
		if errors.Is(g.ocrErr, ocr.ErrOCRNotEnabled) {
			g.o.log.Warn("ocr not available, skipping page", zap.Int("page", n))
		} else {
			g.o.log.Warn("ocr client", zap.Int("page", n), zap.Error(g.ocrErr))
		}
		return ""
	}

	imgs, err := g.doc.Images(n)
	if err != nil {
		g.o.log.Warn("reading page images", zap.Int("page", n), zap.Error(err))
		return ""
	}
	var sb strings.Builder
	for _, img := range imgs {
		text, err := g.ocr.RecognizeImage(img.Data, img.FileType)
		if err != nil {
			g.o.log.Warn("ocr failed", zap.Int("page", n), zap.String("type", img.FileType), zap.Error(err))
			continue
		}
		sb.WriteString(text)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// trimPageNumbers drops page numbers printed as the first or last line.
func trimPageNumbers(lines []pdf.Line) []pdf.Line {
	if n := len(lines); n > 0 && pageNumberRe.MatchString(strings.TrimSpace(lines[n-1].Text())) {
		lines = lines[:n-1]
	}
	if len(lines) > 0 && pageNumberRe.MatchString(strings.TrimSpace(lines[0].Text())) {
		lines = lines[1:]
	}
	return lines
}

// pageEntries builds the entries of a page. A page with a schedule header
// starts a new table layout; a page without one continues the previous
// layout, or falls back to line parsing when there is none.
func (g *pdfGuide) pageEntries(p pdfPage, schooljaar string) []model.RawEntry {
	prefix := fmt.Sprintf("p%d-", p.number)
	if p.lines == nil {
		return lineEntries(p.texts, g.o.kw, schooljaar, prefix)
	}

	var data []pdf.Line
	if tbl, next, ok := g.findTable(p.lines); ok {
		g.table = tbl
		g.tables++
		data = p.lines[next:]
	} else if g.table != nil {
		data = g.continuation(p.lines)
	} else {
		return lineEntries(p.texts, g.o.kw, schooljaar, prefix)
	}

	t := g.table
	tbl := t.grid.Table(append([]pdf.Line{t.line}, data...), t.anchor, g.tables-1)
	for c := range tbl.Rows[0] {
		if c < len(t.headers) {
			tbl.Rows[0][c].Text = t.headers[c]
		}
	}

	b := &rowBuilder{
		kw:         g.o.kw,
		cols:       t.cols,
		schooljaar: schooljaar,
		neighbors:  true,
	}
	return b.tableRows(tbl, 1, prefix)
}

// findTable looks for a schedule header line. A header wrapped over two
// lines is merged column-wise.
func (g *pdfGuide) findTable(lines []pdf.Line) (*pdfTable, int, bool) {
	kw := g.o.kw
	for i, l := range lines {
		if len(l.Spans()) < 2 {
			continue
		}
		if i+1 < len(lines) {
			primary := l
			if len(lines[i+1].Spans()) > len(l.Spans()) {
				primary = lines[i+1]
			}
			grid := pdf.GridFromLine(primary)
			count, merged := header.MergeRows([][]string{grid.Cells(l), grid.Cells(lines[i+1])}, kw)
			if cols := header.MapColumns(merged, kw); count == 2 && cols.IsSchedule() {
				return newPDFTable(grid, primary, merged, cols), i + 2, true
			}
		}
		grid := pdf.GridFromLine(l)
		headers := grid.Cells(l)
		if cols := header.MapColumns(headers, kw); cols.IsSchedule() {
			return newPDFTable(grid, l, headers, cols), i + 1, true
		}
	}
	return nil, 0, false
}

func newPDFTable(grid pdf.Grid, line pdf.Line, headers []string, cols header.Columns) *pdfTable {
	anchor := -1
	if i, ok := cols.Index(header.FieldWeek); ok {
		anchor = i
	} else if i, ok := cols.Index(header.FieldDate); ok {
		anchor = i
	}
	return &pdfTable{grid: grid, line: line, headers: headers, cols: cols, anchor: anchor}
}

// continuation returns the lines of a page that continue the previous
// table, skipping running headers above the first row with a week or date.
func (g *pdfGuide) continuation(lines []pdf.Line) []pdf.Line {
	t := g.table
	if t.anchor < 0 {
		return lines
	}
	for i, l := range lines {
		cells := t.grid.Cells(l)
		if t.anchor < len(cells) && header.LooksLikeData(cells[t.anchor]) {
			return lines[i:]
		}
	}
	return nil
}

// MetaFromPDF returns the metadata of a PDF guide, or nil when it has
// neither a subject nor schedule rows.
func MetaFromPDF(path, filename string, opts ...Option) (*model.DocMeta, error) {
	o := newOptions(opts)
	g, err := openPDF(path, filename, o)
	if err != nil {
		return nil, err
	}
	meta, _ := g.parse()
	return meta, nil
}

// RowsFromPDF returns the schedule rows of a PDF guide.
func RowsFromPDF(path, filename string, opts ...Option) ([]model.DocRow, error) {
	o := newOptions(opts)
	g, err := openPDF(path, filename, o)
	if err != nil {
		return nil, err
	}
	_, rows := g.parse()
	return rows, nil
}
