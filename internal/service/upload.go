package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tsawler/vlier"
	"github.com/tsawler/vlier/internal/pending"
)

// Upload parses an uploaded file and keeps one pending upload per period
// found in it. Parsing runs on its own goroutine and is abandoned once the
// parse timeout or ctx expires.
func (s *Service) Upload(ctx context.Context, filename string, r io.Reader) ([]*pending.Upload, error) {
	tmp, err := os.CreateTemp("", "vlier-*"+filepath.Ext(filename))
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("store upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("store upload: %w", err)
	}

	guides, err := s.parse(ctx, tmp.Name(), filename)
	if err != nil {
		return nil, err
	}

	now := s.opts.Now().UTC()
	var out []*pending.Upload
	for _, g := range guides {
		if g.Meta == nil {
			continue
		}
		u := &pending.Upload{
			ID:        uuid.NewString(),
			Bestand:   filepath.Base(filename),
			Meta:      g.Meta,
			Rows:      g.Rows,
			Warnings:  g.Warnings,
			CreatedAt: now,
		}
		if err := s.pending.Put(ctx, u); err != nil {
			return nil, fmt.Errorf("keep upload: %w", err)
		}
		out = append(out, u)
	}
	if len(out) == 0 {
		return nil, ErrNoGuide
	}

	s.log.Info("upload parsed",
		zap.String("file", filename),
		zap.Int("periods", len(out)))
	return out, nil
}

type parseResult struct {
	guides []*vlier.Guide
	err    error
}

func (s *Service) parse(ctx context.Context, path, filename string) ([]*vlier.Guide, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opts.ParseTimeout)
	defer cancel()

	p := vlier.Open(path).
		Name(filename).
		Keywords(s.opts.Keywords).
		Logger(s.log).
		Now(s.opts.Now)
	if s.opts.OCR {
		p = p.OCR()
	}

	done := make(chan parseResult, 1)
	go func() {
		defer os.Remove(path)
		guides, err := p.Periods()
		done <- parseResult{guides, err}
	}()

	select {
	case res := <-done:
		return res.guides, res.err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			s.log.Warn("parse timed out", zap.String("file", filename))
			return nil, ErrParseTimeout
		}
		return nil, ctx.Err()
	}
}

// Pending returns a pending upload.
func (s *Service) Pending(ctx context.Context, id string) (*pending.Upload, error) {
	u, err := s.pending.Get(ctx, id)
	if errors.Is(err, pending.ErrNotFound) {
		return nil, ErrPendingNotFound
	}
	return u, err
}

// Discard drops a pending upload.
func (s *Service) Discard(ctx context.Context, id string) error {
	err := s.pending.Delete(ctx, id)
	if errors.Is(err, pending.ErrNotFound) {
		return ErrPendingNotFound
	}
	return err
}
