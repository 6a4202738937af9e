// Package service implements the upload, review and commit workflow on top
// of the extraction engine.
package service

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/tsawler/vlier/extract"
	"github.com/tsawler/vlier/internal/pending"
	"github.com/tsawler/vlier/internal/store"
	"github.com/tsawler/vlier/keywords"
)

var (
	ErrPendingNotFound = errors.New("upload not found or expired")
	ErrGuideNotFound   = errors.New("guide not found")
	ErrVersionNotFound = errors.New("version not found")
	ErrParseTimeout    = errors.New("parsing the file took too long")
	ErrNoGuide         = errors.New("no study guide found in file")
	ErrUnsupported     = extract.ErrUnsupportedFormat
)

// Options tune the service.
type Options struct {
	ParseTimeout time.Duration
	Keywords     *keywords.Config
	OCR          bool
	// Now defaults to time.Now.
	Now func() time.Time
}

// Service is the study guide workflow.
type Service struct {
	repo    store.Repository
	pending pending.Store
	log     *zap.Logger
	opts    Options
}

// New returns a Service.
func New(repo store.Repository, ps pending.Store, log *zap.Logger, opts Options) *Service {
	if opts.ParseTimeout <= 0 {
		opts.ParseTimeout = time.Minute
	}
	if opts.Keywords == nil {
		opts.Keywords = keywords.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Service{repo: repo, pending: ps, log: log, opts: opts}
}
