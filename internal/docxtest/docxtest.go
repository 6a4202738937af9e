// Package docxtest builds small DOCX packages for tests.
package docxtest

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const (
	nsW = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

const contentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const packageRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

// Part is an extra file in the package.
type Part struct {
	Name    string
	Content string
}

// Bytes returns a DOCX package whose body holds the given XML.
func Bytes(body string, parts ...Part) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	files := []Part{
		{"[Content_Types].xml", contentTypes},
		{"_rels/.rels", packageRels},
		{"word/document.xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="` + nsW + `" xmlns:r="` + nsR + `"><w:body>` + body + `</w:body></w:document>`},
	}
	files = append(files, parts...)

	for _, f := range files {
		w, err := zw.Create(f.Name)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write([]byte(f.Content)); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write stores a DOCX package in a temporary directory and returns its path.
func Write(t testing.TB, name, body string, parts ...Part) string {
	t.Helper()
	data, err := Bytes(body, parts...)
	if err != nil {
		t.Fatalf("failed to build DOCX: %v", err)
	}
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write DOCX: %v", err)
	}
	return path
}

// P returns a paragraph. Newlines become line breaks.
func P(text string) string {
	return `<w:p>` + runs(text) + `</w:p>`
}

// Styled returns a paragraph with a paragraph style.
func Styled(style, text string) string {
	return `<w:p><w:pPr><w:pStyle w:val="` + style + `"/></w:pPr>` + runs(text) + `</w:p>`
}

// Link returns a paragraph holding a hyperlink with relationship id rid.
func Link(rid, text string) string {
	return `<w:p><w:hyperlink r:id="` + rid + `">` + runs(text) + `</w:hyperlink></w:p>`
}

// Table returns a table with one paragraph per cell.
func Table(rows ...[]string) string {
	var sb strings.Builder
	sb.WriteString(`<w:tbl><w:tblPr><w:tblW w:w="0" w:type="auto"/></w:tblPr>`)
	for _, row := range rows {
		sb.WriteString(`<w:tr>`)
		for _, c := range row {
			sb.WriteString(Cell(c))
		}
		sb.WriteString(`</w:tr>`)
	}
	sb.WriteString(`</w:tbl>`)
	return sb.String()
}

// Row returns a table row built from raw cell XML.
func Row(cells ...string) string {
	return `<w:tr>` + strings.Join(cells, "") + `</w:tr>`
}

// RawTable wraps raw row XML into a table.
func RawTable(rows ...string) string {
	return `<w:tbl>` + strings.Join(rows, "") + `</w:tbl>`
}

// Cell returns a table cell.
func Cell(text string) string {
	return `<w:tc>` + P(text) + `</w:tc>`
}

// SpanCell returns a cell spanning n grid columns.
func SpanCell(n int, text string) string {
	return fmt.Sprintf(`<w:tc><w:tcPr><w:gridSpan w:val="%d"/></w:tcPr>%s</w:tc>`, n, P(text))
}

// MergeStart returns a cell starting a vertical merge.
func MergeStart(text string) string {
	return `<w:tc><w:tcPr><w:vMerge w:val="restart"/></w:tcPr>` + P(text) + `</w:tc>`
}

// MergeContinue returns a cell continuing a vertical merge.
func MergeContinue() string {
	return `<w:tc><w:tcPr><w:vMerge/></w:tcPr><w:p/></w:tc>`
}

// Footer returns a footer part holding one paragraph per line.
func Footer(lines ...string) Part {
	return Part{Name: "word/footer1.xml", Content: hdrFtr("ftr", lines)}
}

// Header returns a header part holding one paragraph per line.
func Header(lines ...string) Part {
	return Part{Name: "word/header1.xml", Content: hdrFtr("hdr", lines)}
}

// Rels returns a document relationships part with external hyperlinks
// keyed by relationship id.
func Rels(links map[string]string) Part {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	for id, url := range links {
		sb.WriteString(`<Relationship Id="` + id + `" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink" Target="` + escape(url) + `" TargetMode="External"/>`)
	}
	sb.WriteString(`</Relationships>`)
	return Part{Name: "word/_rels/document.xml.rels", Content: sb.String()}
}

func hdrFtr(root string, lines []string) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?><w:` + root + ` xmlns:w="` + nsW + `">`)
	for _, l := range lines {
		sb.WriteString(P(l))
	}
	sb.WriteString(`</w:` + root + `>`)
	return sb.String()
}

func runs(text string) string {
	var sb strings.Builder
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			sb.WriteString(`<w:r><w:br/></w:r>`)
		}
		if line != "" {
			sb.WriteString(`<w:r><w:t xml:space="preserve">` + escape(line) + `</w:t></w:r>`)
		}
	}
	return sb.String()
}

func escape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
