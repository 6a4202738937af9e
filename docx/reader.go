package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/tsawler/vlier/model"
)

// ErrNotDOCX is returned when the input is not a readable DOCX package.
var ErrNotDOCX = errors.New("not a DOCX document")

// Reader provides access to the content of a DOCX document.
type Reader struct {
	closer  io.Closer
	files   map[string]*zip.File
	rels    map[string]string
	styles  map[string]styleDefXML
	core    corePropertiesXML
	blocks  []Block
	headers []string
	footers []string
}

// Open opens a DOCX file for reading.
func Open(filename string) (*Reader, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: opening ZIP archive: %v", ErrNotDOCX, err)
	}
	r, err := newReader(&zr.Reader)
	if err != nil {
		zr.Close()
		return nil, err
	}
	r.closer = zr
	return r, nil
}

// FromBytes reads a DOCX document held in memory.
func FromBytes(data []byte) (*Reader, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: reading ZIP archive: %v", ErrNotDOCX, err)
	}
	return newReader(zr)
}

func newReader(zr *zip.Reader) (*Reader, error) {
	r := &Reader{
		files:  make(map[string]*zip.File, len(zr.File)),
		rels:   make(map[string]string),
		styles: make(map[string]styleDefXML),
	}
	for _, f := range zr.File {
		r.files[f.Name] = f
	}

	if err := r.validate(); err != nil {
		return nil, err
	}

	// Relationships, styles and core properties are optional parts.
	r.parseRelationships()
	r.parseStyles()
	r.parseCoreProperties()

	if err := r.parseDocument(); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	r.parseHeadersFooters()

	return r, nil
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	if r.closer != nil {
		err := r.closer.Close()
		r.closer = nil
		return err
	}
	return nil
}

// Blocks returns the body paragraphs and tables in document order.
func (r *Reader) Blocks() []Block {
	return r.blocks
}

// Paragraphs returns the body paragraphs in document order.
func (r *Reader) Paragraphs() []Paragraph {
	var out []Paragraph
	for _, b := range r.blocks {
		if b.Paragraph != nil {
			out = append(out, *b.Paragraph)
		}
	}
	return out
}

// Tables returns the body tables in document order.
func (r *Reader) Tables() []*model.Table {
	var out []*model.Table
	for _, b := range r.blocks {
		if b.Table != nil {
			out = append(out, b.Table)
		}
	}
	return out
}

// HeaderText returns the text of all page headers, one line per paragraph.
func (r *Reader) HeaderText() string {
	return strings.Join(r.headers, "\n")
}

// FooterText returns the text of all page footers, one line per paragraph.
func (r *Reader) FooterText() string {
	return strings.Join(r.footers, "\n")
}

// Title returns the document title from the core properties.
func (r *Reader) Title() string {
	return strings.TrimSpace(r.core.Title)
}

// validate checks that required DOCX parts exist.
func (r *Reader) validate() error {
	for _, name := range []string{"[Content_Types].xml", "word/document.xml"} {
		if _, ok := r.files[name]; !ok {
			return fmt.Errorf("%w: missing required file: %s", ErrNotDOCX, name)
		}
	}
	return nil
}

// getFileContent reads a part of the package.
func (r *Reader) getFileContent(name string) ([]byte, error) {
	f, ok := r.files[name]
	if !ok {
		return nil, fmt.Errorf("file not found: %s", name)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func (r *Reader) parseRelationships() {
	data, err := r.getFileContent("word/_rels/document.xml.rels")
	if err != nil {
		return
	}
	var rels relationshipsXML
	if xml.Unmarshal(data, &rels) != nil {
		return
	}
	for _, rel := range rels.Relationships {
		r.rels[rel.ID] = rel.Target
	}
}

func (r *Reader) parseStyles() {
	data, err := r.getFileContent("word/styles.xml")
	if err != nil {
		return
	}
	var styles stylesXML
	if xml.Unmarshal(data, &styles) != nil {
		return
	}
	for _, s := range styles.Styles {
		r.styles[strings.ToLower(s.StyleID)] = s
	}
}

func (r *Reader) parseCoreProperties() {
	data, err := r.getFileContent("docProps/core.xml")
	if err != nil {
		return
	}
	_ = xml.Unmarshal(data, &r.core)
}

func (r *Reader) parseDocument() error {
	data, err := r.getFileContent("word/document.xml")
	if err != nil {
		return err
	}
	blocks, err := r.parseBlocksFrom(data, "body")
	if err != nil {
		return err
	}
	r.blocks = blocks
	return nil
}

// parseHeadersFooters reads word/header*.xml and word/footer*.xml in name
// order. Parts that fail to parse are skipped.
func (r *Reader) parseHeadersFooters() {
	var names []string
	for name := range r.files {
		if strings.HasPrefix(name, "word/header") || strings.HasPrefix(name, "word/footer") {
			if strings.HasSuffix(name, ".xml") {
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)

	for _, name := range names {
		data, err := r.getFileContent(name)
		if err != nil {
			continue
		}
		root := "ftr"
		if strings.HasPrefix(name, "word/header") {
			root = "hdr"
		}
		blocks, err := r.parseBlocksFrom(data, root)
		if err != nil {
			continue
		}
		text := blocksText(blocks)
		if text == "" {
			continue
		}
		if root == "hdr" {
			r.headers = append(r.headers, text)
		} else {
			r.footers = append(r.footers, text)
		}
	}
}

// isHeadingStyle reports whether a paragraph style is a heading and its level.
func (r *Reader) isHeadingStyle(styleID string) (bool, int) {
	id := strings.ToLower(styleID)
	if id == "" {
		return false, 0
	}
	if id == "title" || id == "titel" {
		return true, 1
	}
	for _, prefix := range []string{"heading", "kop"} {
		if n, err := strconv.Atoi(strings.TrimPrefix(id, prefix)); err == nil && strings.HasPrefix(id, prefix) && n >= 1 && n <= 9 {
			return true, n
		}
	}

	style, ok := r.styles[id]
	if !ok {
		return false, 0
	}
	if style.PPr.OutlineLvl != nil {
		if n, err := strconv.Atoi(style.PPr.OutlineLvl.Val); err == nil && n >= 0 && n <= 8 {
			return true, n + 1
		}
	}
	name := strings.ToLower(style.Name.Val)
	if name == "title" {
		return true, 1
	}
	for _, prefix := range []string{"heading", "kop"} {
		if rest, ok := strings.CutPrefix(name, prefix); ok {
			if n, err := strconv.Atoi(strings.TrimSpace(rest)); err == nil && n >= 1 && n <= 9 {
				return true, n
			}
			return true, 1
		}
	}
	return false, 0
}

// styleName returns the display name of a style.
func (r *Reader) styleName(styleID string) string {
	if s, ok := r.styles[strings.ToLower(styleID)]; ok {
		return s.Name.Val
	}
	return ""
}

func blocksText(blocks []Block) string {
	var lines []string
	for _, b := range blocks {
		switch {
		case b.Paragraph != nil:
			if t := strings.TrimSpace(b.Paragraph.Text); t != "" {
				lines = append(lines, t)
			}
		case b.Table != nil:
			for i := range b.Table.Rows {
				if t := strings.TrimSpace(strings.Join(uniqueTexts(b.Table.Rows[i]), " ")); t != "" {
					lines = append(lines, t)
				}
			}
		}
	}
	return strings.Join(lines, "\n")
}

// uniqueTexts returns the text of each physical cell in a grid row once.
func uniqueTexts(row []model.Cell) []string {
	var out []string
	seen := make(map[model.CellRef]bool)
	for _, c := range row {
		if seen[c.Origin] {
			continue
		}
		seen[c.Origin] = true
		if t := strings.TrimSpace(c.Text); t != "" {
			out = append(out, t)
		}
	}
	return out
}
