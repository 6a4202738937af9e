package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	vmodel "github.com/tsawler/vlier/model"
)

var (
	// ErrNotPDF is returned when the input has no PDF header.
	ErrNotPDF = errors.New("not a PDF document")
	// ErrEncrypted is returned for password-protected documents.
	ErrEncrypted = errors.New("PDF is encrypted")
)

func init() {
	// Keep pdfcpu from creating a configuration directory on first use.
	model.ConfigPath = "disable"
}

// Document is an opened PDF.
type Document struct {
	ctx    *model.Context
	images bool
	fonts  map[int]*font
}

// Page is the text layer of one page.
type Page struct {
	Number    int
	Width     float64
	Height    float64
	Fragments []Fragment
}

// Image is an image embedded in a page.
type Image struct {
	Data     []byte
	FileType string
	Width    int
	Height   int
}

// Open reads a PDF file.
func Open(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading PDF: %w", err)
	}
	return FromBytes(data)
}

// FromBytes reads a PDF held in memory. Documents that fail validation are
// still opened for text extraction, without image support.
func FromBytes(data []byte) (*Document, error) {
	head := data
	if len(head) > 1024 {
		head = head[:1024]
	}
	if !bytes.Contains(head, []byte("%PDF-")) {
		return nil, ErrNotPDF
	}

	conf := model.NewDefaultConfiguration()
	conf.Cmd = model.EXTRACTIMAGES
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), conf)
	if err == nil {
		return newDocument(ctx, true), nil
	}
	if isEncrypted(err) {
		return nil, ErrEncrypted
	}

	ctx, rerr := api.ReadContext(bytes.NewReader(data), model.NewDefaultConfiguration())
	if rerr != nil {
		if isEncrypted(rerr) {
			return nil, ErrEncrypted
		}
		return nil, fmt.Errorf("reading PDF: %w", err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return nil, fmt.Errorf("reading PDF page tree: %w", err)
	}
	return newDocument(ctx, false), nil
}

func newDocument(ctx *model.Context, images bool) *Document {
	return &Document{ctx: ctx, images: images, fonts: make(map[int]*font)}
}

func isEncrypted(err error) bool {
	return errors.Is(err, pdfcpu.ErrWrongPassword) || strings.Contains(err.Error(), "encrypt")
}

// NumPages returns the number of pages.
func (d *Document) NumPages() int {
	return d.ctx.PageCount
}

// Title returns the document title from the info dictionary.
func (d *Document) Title() string {
	return strings.TrimSpace(d.ctx.Title)
}

// Page returns the text layer of page n (1-based).
func (d *Document) Page(n int) (*Page, error) {
	pageDict, _, attrs, err := d.ctx.PageDict(n, false)
	if err != nil {
		return nil, fmt.Errorf("page %d: %w", n, err)
	}
	if pageDict == nil {
		return nil, fmt.Errorf("page %d: not found", n)
	}

	page := &Page{Number: n}
	var res types.Dict
	if attrs != nil {
		res = attrs.Resources
		if attrs.MediaBox != nil {
			page.Width = attrs.MediaBox.Width()
			page.Height = attrs.MediaBox.Height()
		}
	}

	r, err := pdfcpu.ExtractPageContent(d.ctx, n)
	if err != nil {
		return nil, fmt.Errorf("page %d content: %w", n, err)
	}
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("page %d content: %w", n, err)
	}

	page.Fragments = extractFragments(content, d.resources(res))
	return page, nil
}

// Images returns the images drawn on page n. It returns nil when the
// document could only be opened without validation.
func (d *Document) Images(n int) ([]Image, error) {
	if !d.images {
		return nil, nil
	}
	imgs, err := pdfcpu.ExtractPageImages(d.ctx, n, false)
	if err != nil {
		return nil, fmt.Errorf("page %d images: %w", n, err)
	}
	var out []Image
	for _, img := range imgs {
		if img.Reader == nil {
			continue
		}
		data, err := io.ReadAll(img)
		if err != nil {
			return nil, fmt.Errorf("page %d image %s: %w", n, img.Name, err)
		}
		out = append(out, Image{Data: data, FileType: img.FileType, Width: img.Width, Height: img.Height})
	}
	return out, nil
}

// Lines groups the fragments of the page into lines.
func (p *Page) Lines() []Line {
	return GroupLines(p.Fragments)
}

// Text returns the page text, one line per text line.
func (p *Page) Text() string {
	var sb strings.Builder
	for _, l := range p.Lines() {
		sb.WriteString(l.Text())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// HasText reports whether the page has a text layer.
func (p *Page) HasText() bool {
	for _, f := range p.Fragments {
		if strings.TrimSpace(f.Text) != "" {
			return true
		}
	}
	return false
}

// pageResources resolves fonts and forms from a resource dictionary.
type pageResources struct {
	doc   *Document
	dict  types.Dict
	fonts map[string]*font
}

func (d *Document) resources(dict types.Dict) *pageResources {
	return &pageResources{doc: d, dict: dict, fonts: make(map[string]*font)}
}

func (r *pageResources) font(key string) *font {
	if f, ok := r.fonts[key]; ok {
		return f
	}
	var f *font
	if fonts := r.subDict("Font"); fonts != nil {
		if o, ok := fonts.Find(key); ok {
			f = r.doc.loadFont(o)
		}
	}
	r.fonts[key] = f
	return f
}

func (r *pageResources) form(key string) ([]byte, vmodel.Matrix, resources, bool) {
	xobjs := r.subDict("XObject")
	if xobjs == nil {
		return nil, vmodel.Matrix{}, nil, false
	}
	o, ok := xobjs.Find(key)
	if !ok {
		return nil, vmodel.Matrix{}, nil, false
	}
	sd, _, err := r.doc.ctx.DereferenceStreamDict(o)
	if err != nil || sd == nil {
		return nil, vmodel.Matrix{}, nil, false
	}
	if st := sd.Subtype(); st == nil || *st != "Form" {
		return nil, vmodel.Matrix{}, nil, false
	}
	if err := sd.Decode(); err != nil {
		return nil, vmodel.Matrix{}, nil, false
	}

	matrix := vmodel.Identity()
	if arr, err := r.doc.ctx.DereferenceArray(entry(sd.Dict, "Matrix")); err == nil && len(arr) == 6 {
		for i := range matrix {
			matrix[i], _ = r.doc.number(arr[i])
		}
	}

	var sub resources
	if res, err := r.doc.ctx.DereferenceDict(entry(sd.Dict, "Resources")); err == nil && res != nil {
		sub = r.doc.resources(res)
	}
	return sd.Content, matrix, sub, true
}

func (r *pageResources) subDict(key string) types.Dict {
	if r.dict == nil {
		return nil
	}
	d, err := r.doc.ctx.DereferenceDict(entry(r.dict, key))
	if err != nil {
		return nil
	}
	return d
}

// loadFont reads the parts of a font dictionary needed to decode text and
// measure it. Fonts are cached per object.
func (d *Document) loadFont(o types.Object) *font {
	objNr := -1
	if ref, ok := o.(types.IndirectRef); ok {
		objNr = ref.ObjectNumber.Value()
		if f, ok := d.fonts[objNr]; ok {
			return f
		}
	}

	fd, err := d.ctx.DereferenceDict(o)
	if err != nil || fd == nil {
		return nil
	}

	f := &font{}
	if sd, _, err := d.ctx.DereferenceStreamDict(entry(fd, "ToUnicode")); err == nil && sd != nil {
		if err := sd.Decode(); err == nil {
			f.toUnicode = parseCMap(sd.Content)
		}
	}

	if st := fd.Subtype(); st != nil && *st == "Type0" {
		f.composite = true
		d.loadCIDWidths(f, fd)
	} else {
		f.enc = d.simpleEncoding(fd)
		d.loadSimpleWidths(f, fd)
	}

	if objNr >= 0 {
		d.fonts[objNr] = f
	}
	return f
}

func (d *Document) simpleEncoding(fd types.Dict) *byteEncoding {
	o, err := d.ctx.Dereference(entry(fd, "Encoding"))
	if err != nil || o == nil {
		return winAnsi
	}
	switch e := o.(type) {
	case types.Name:
		return baseEncoding(string(e))
	case types.Dict:
		base := winAnsi
		if n := e.NameEntry("BaseEncoding"); n != nil {
			base = baseEncoding(*n)
		}
		diffs, err := d.ctx.DereferenceArray(entry(e, "Differences"))
		if err != nil || len(diffs) == 0 {
			return base
		}
		return withDifferences(base, d.operands(diffs))
	}
	return winAnsi
}

func (d *Document) loadSimpleWidths(f *font, fd types.Dict) {
	if desc, err := d.ctx.DereferenceDict(entry(fd, "FontDescriptor")); err == nil && desc != nil {
		if w, ok := d.number(entry(desc, "MissingWidth")); ok && w > 0 {
			f.defaultWidth = w
		}
	}
	first, _ := d.number(entry(fd, "FirstChar"))
	widths, err := d.ctx.DereferenceArray(entry(fd, "Widths"))
	if err != nil || len(widths) == 0 {
		return
	}
	f.widths = make(map[uint32]float64, len(widths))
	for i, o := range widths {
		if w, ok := d.number(o); ok {
			f.widths[uint32(int(first)+i)] = w
		}
	}
}

// loadCIDWidths reads DW and the W array of the descendant font. W holds
// entries "c [w1 w2 ...]" and "cFirst cLast w".
func (d *Document) loadCIDWidths(f *font, fd types.Dict) {
	f.defaultWidth = 1000
	desc, err := d.ctx.DereferenceArray(entry(fd, "DescendantFonts"))
	if err != nil || len(desc) == 0 {
		return
	}
	cid, err := d.ctx.DereferenceDict(desc[0])
	if err != nil || cid == nil {
		return
	}
	if dw, ok := d.number(entry(cid, "DW")); ok && dw > 0 {
		f.defaultWidth = dw
	}
	w, err := d.ctx.DereferenceArray(entry(cid, "W"))
	if err != nil {
		return
	}

	f.widths = make(map[uint32]float64)
	for i := 0; i < len(w); {
		start, ok := d.number(w[i])
		if !ok || i+1 >= len(w) {
			return
		}
		if arr, err := d.ctx.DereferenceArray(w[i+1]); err == nil && arr != nil {
			for k, o := range arr {
				if v, ok := d.number(o); ok {
					f.widths[uint32(int(start)+k)] = v
				}
			}
			i += 2
			continue
		}
		if i+2 >= len(w) {
			return
		}
		end, ok1 := d.number(w[i+1])
		v, ok2 := d.number(w[i+2])
		if ok1 && ok2 && end >= start && end-start < 65536 {
			for c := int(start); c <= int(end); c++ {
				f.widths[uint32(c)] = v
			}
		}
		i += 3
	}
}

func (d *Document) number(o types.Object) (float64, bool) {
	if o == nil {
		return 0, false
	}
	v, err := d.ctx.DereferenceNumber(o)
	if err != nil {
		return 0, false
	}
	return v, true
}

// operands converts a pdfcpu array into lexer operand values.
func (d *Document) operands(arr types.Array) []any {
	out := make([]any, 0, len(arr))
	for _, o := range arr {
		o, _ = d.ctx.Dereference(o)
		switch v := o.(type) {
		case types.Integer:
			out = append(out, float64(v))
		case types.Float:
			out = append(out, float64(v))
		case types.Name:
			out = append(out, name(v))
		}
	}
	return out
}

// entry returns the value for key, or nil.
func entry(d types.Dict, key string) types.Object {
	if d == nil {
		return nil
	}
	o, _ := d.Find(key)
	return o
}
