package extract

import (
	"time"

	"go.uber.org/zap"

	"github.com/tsawler/vlier/keywords"
)

// Option configures an extraction.
type Option func(*options)

type options struct {
	kw  *keywords.Config
	log *zap.Logger
	ocr bool
	now func() time.Time
}

func newOptions(opts []Option) *options {
	o := &options{
		kw:  keywords.Default(),
		log: zap.NewNop(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithKeywords sets the keyword configuration. A nil config keeps the
// defaults.
func WithKeywords(kw *keywords.Config) Option {
	return func(o *options) {
		if kw != nil {
			o.kw = kw
		}
	}
}

// WithLogger sets the logger used for skipped pages and partial failures.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithOCR enables OCR of PDF pages without a text layer. It has no effect
// unless the binary is built with the ocr tag.
func WithOCR(enabled bool) Option {
	return func(o *options) {
		o.ocr = enabled
	}
}

// WithNow sets the clock used for upload timestamps and for dates without a
// school year.
func WithNow(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}
