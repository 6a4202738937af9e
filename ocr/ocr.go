//go:build ocr

// Package ocr recognises text on scanned study-guide pages.
//
// This implementation wraps the Tesseract OCR engine via gosseract and is
// compiled with the "ocr" build tag. Tesseract and the Dutch language data
// must be installed. On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr tesseract-ocr-nld
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Enabled reports whether OCR support was compiled in.
const Enabled = true

// Client wraps Tesseract for OCR operations.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client configured for Dutch and English text.
// The client should be closed when no longer needed.
func New() (*Client, error) {
	client := gosseract.NewClient()
	if err := client.SetLanguage(strings.Split(DefaultLanguages, "+")...); err != nil {
		client.Close()
		return nil, fmt.Errorf("setting OCR languages: %w", err)
	}
	return &Client{client: client}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c != nil && c.client != nil {
		err := c.client.Close()
		c.client = nil
		return err
	}
	return nil
}

// RecognizeImage performs OCR on image data of the given file type
// ("png", "jpg", "tif", ...). TIFF input is converted to PNG first.
func (c *Client) RecognizeImage(data []byte, fileType string) (string, error) {
	img, err := Prepare(data, fileType)
	if err != nil {
		return "", err
	}
	if err := c.client.SetImageFromBytes(img); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return strings.TrimSpace(text), nil
}

// SetLanguage sets the recognition languages as a "+" separated list,
// e.g. "nld+eng".
func (c *Client) SetLanguage(langs string) error {
	return c.client.SetLanguage(strings.Split(langs, "+")...)
}
