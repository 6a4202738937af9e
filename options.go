package vlier

import (
	"time"

	"go.uber.org/zap"

	"github.com/tsawler/vlier/keywords"
)

// parseOptions holds the configuration of a Parser.
type parseOptions struct {
	// Original upload name, used for metadata hints. Defaults to the path.
	name string

	// Period to extract from a multi-period DOCX; nil selects the first.
	periode *int

	kw  *keywords.Config
	log *zap.Logger
	ocr bool
	now func() time.Time

	// Skip normalization and deduplication of rows.
	raw bool

	// Count repeated weeks over enabled rows only.
	ignoreDisabled bool
}

// defaultOptions returns the default parse options.
func defaultOptions() parseOptions {
	return parseOptions{
		kw:             keywords.Default(),
		log:            zap.NewNop(),
		ignoreDisabled: true,
	}
}

// clone creates a deep copy of parseOptions.
func (o parseOptions) clone() parseOptions {
	c := o
	if o.periode != nil {
		p := *o.periode
		c.periode = &p
	}
	return c
}
