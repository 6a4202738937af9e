package ocr

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"strings"

	"golang.org/x/image/tiff"
)

// DefaultLanguages are the Tesseract languages used for study guides.
const DefaultLanguages = "nld+eng"

// ErrOCRNotEnabled is returned when OCR is requested but support was not
// compiled in. Rebuild with -tags ocr to enable it.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// ErrUnsupportedImage is returned for image types Tesseract cannot read.
var ErrUnsupportedImage = errors.New("unsupported image type")

// Prepare returns image data Tesseract can read. PNG and JPEG pass through
// unchanged; TIFF pages, which scanners commonly embed, are re-encoded as
// PNG.
func Prepare(data []byte, fileType string) ([]byte, error) {
	switch strings.ToLower(strings.TrimPrefix(fileType, ".")) {
	case "png", "jpg", "jpeg":
		return data, nil
	case "tif", "tiff":
		img, err := tiff.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decoding TIFF: %w", err)
		}
		return encodePNG(img)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedImage, fileType)
	}
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding PNG: %w", err)
	}
	return buf.Bytes(), nil
}
