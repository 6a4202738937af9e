// Package format detects whether an uploaded study guide is a DOCX or a PDF.
package format

import (
	"archive/zip"
	"bytes"
	"path/filepath"
	"strings"
)

// Format represents a supported document format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PDF indicates a PDF document.
	PDF
	// DOCX indicates a Microsoft Word (.docx) document.
	DOCX
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PDF:
		return "PDF"
	case DOCX:
		return "DOCX"
	default:
		return "Unknown"
	}
}

// Extension returns the file extension for the format.
func (f Format) Extension() string {
	switch f {
	case PDF:
		return ".pdf"
	case DOCX:
		return ".docx"
	default:
		return ""
	}
}

// ContentType returns the MIME type for the format.
func (f Format) ContentType() string {
	switch f {
	case PDF:
		return "application/pdf"
	case DOCX:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return "application/octet-stream"
	}
}

// Detect determines the format from the filename extension.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return PDF
	case ".docx":
		return DOCX
	default:
		return Unknown
	}
}

var (
	pdfMagic = []byte("%PDF-")
	zipMagic = []byte("PK\x03\x04")
)

// DetectBytes determines the format from the content. A ZIP archive is
// only reported as DOCX when it holds a word/document.xml part.
func DetectBytes(data []byte) Format {
	head := data
	if len(head) > 1024 {
		head = head[:1024]
	}
	if bytes.Contains(head, pdfMagic) {
		return PDF
	}
	if !bytes.HasPrefix(data, zipMagic) {
		return Unknown
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Unknown
	}
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			return DOCX
		}
	}
	return Unknown
}

// Resolve combines content and extension detection. The content decides
// when it is recognised; a recognised extension is used otherwise.
func Resolve(filename string, data []byte) Format {
	if f := DetectBytes(data); f != Unknown {
		return f
	}
	if len(data) == 0 {
		return Detect(filename)
	}
	return Unknown
}
