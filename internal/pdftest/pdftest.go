// Package pdftest builds small PDF documents for tests.
package pdftest

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// Build returns a PDF with one page per content stream. Every page has the
// Helvetica font available as /F1.
func Build(pages ...string) []byte {
	var b strings.Builder
	b.WriteString("%PDF-1.4\n")

	// Objects: 1 catalog, 2 page tree, 3 font, then a page and a content
	// stream per page.
	n := 3 + 2*len(pages)
	offsets := make([]int, n+1)

	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}

	offsets[1] = b.Len()
	b.WriteString("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")

	offsets[2] = b.Len()
	fmt.Fprintf(&b, "2 0 obj\n<< /Type /Pages /Kids [%s] /Count %d >>\nendobj\n", strings.Join(kids, " "), len(pages))

	offsets[3] = b.Len()
	b.WriteString("3 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>\nendobj\n")

	for i, content := range pages {
		page, stream := 4+2*i, 5+2*i
		offsets[page] = b.Len()
		fmt.Fprintf(&b, "%d 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Contents %d 0 R /Resources << /Font << /F1 3 0 R >> >> >>\nendobj\n", page, stream)

		offsets[stream] = b.Len()
		fmt.Fprintf(&b, "%d 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", stream, len(content), content)
	}

	xref := b.Len()
	fmt.Fprintf(&b, "xref\n0 %d\n0000000000 65535 f \n", n+1)
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(&b, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", n+1, xref)
	return []byte(b.String())
}

// Write stores a PDF in a temporary directory and returns its path.
func Write(t testing.TB, name string, pages ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, Build(pages...), 0o644); err != nil {
		t.Fatalf("failed to write PDF: %v", err)
	}
	return path
}

// Text returns content stream operators drawing s at (x, y) in 10pt
// Helvetica.
func Text(x, y float64, s string) string {
	return "BT /F1 10 Tf " + num(x) + " " + num(y) + " Td (" + escape(s) + ") Tj ET\n"
}

// Row draws cells on one baseline at the given x positions.
func Row(y float64, xs []float64, cells ...string) string {
	var sb strings.Builder
	for i, c := range cells {
		if c == "" || i >= len(xs) {
			continue
		}
		sb.WriteString(Text(xs[i], y, c))
	}
	return sb.String()
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func escape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, "(", `\(`, ")", `\)`)
	return r.Replace(s)
}
