package extract

import (
	"errors"
	"fmt"
	"os"

	"github.com/tsawler/vlier/format"
)

// ErrUnsupportedFormat is returned for files that are neither DOCX nor PDF.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// FormatOf detects the format of the file at path from its content. An
// empty file is judged by the extension of filename.
func FormatOf(path, filename string) (format.Format, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return format.Unknown, fmt.Errorf("read %s: %w", filename, err)
	}
	return format.Resolve(filename, data), nil
}

// Periods parses a DOCX or PDF guide. DOCX guides yield one period per
// period section; PDF guides yield at most one.
func Periods(path, filename string, opts ...Option) ([]Period, error) {
	ft, err := FormatOf(path, filename)
	if err != nil {
		return nil, err
	}
	switch ft {
	case format.DOCX:
		return AllPeriodsFromDOCX(path, filename, opts...)
	case format.PDF:
		o := newOptions(opts)
		g, err := openPDF(path, filename, o)
		if err != nil {
			return nil, err
		}
		meta, rows := g.parse()
		if meta == nil {
			return nil, nil
		}
		return []Period{{Meta: meta, Rows: rows}}, nil
	}
	return nil, fmt.Errorf("%s: %w", filename, ErrUnsupportedFormat)
}
