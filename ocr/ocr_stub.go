//go:build !ocr

// Package ocr recognises text on scanned study-guide pages.
//
// This is the stub used when the "ocr" build tag is not set: New returns
// ErrOCRNotEnabled. Rebuild with -tags ocr to enable Tesseract support.
package ocr

// Enabled reports whether OCR support was compiled in.
const Enabled = false

// Client is a stub OCR client.
type Client struct{}

// New returns ErrOCRNotEnabled.
func New() (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op. It is safe to call on a nil client.
func (c *Client) Close() error {
	return nil
}

// RecognizeImage returns ErrOCRNotEnabled.
func (c *Client) RecognizeImage(data []byte, fileType string) (string, error) {
	return "", ErrOCRNotEnabled
}

// SetLanguage returns ErrOCRNotEnabled.
func (c *Client) SetLanguage(langs string) error {
	return ErrOCRNotEnabled
}
