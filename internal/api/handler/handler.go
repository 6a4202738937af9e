// Package handler implements the HTTP handlers of the API.
package handler

import (
	"bytes"
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/tsawler/vlier/internal/pending"
	"github.com/tsawler/vlier/internal/service"
	"github.com/tsawler/vlier/internal/store"
)

// GuideService is the part of service.Service the handlers use.
type GuideService interface {
	Upload(ctx context.Context, filename string, r io.Reader) ([]*pending.Upload, error)
	Pending(ctx context.Context, id string) (*pending.Upload, error)
	Discard(ctx context.Context, id string) error
	Commit(ctx context.Context, id string, req service.CommitRequest) (*store.Version, error)
	Guides(ctx context.Context) ([]store.Guide, error)
	Guide(ctx context.Context, id string) (*service.GuideDetail, error)
	Version(ctx context.Context, guideID string, versionID int) (*store.Version, error)
	Diff(ctx context.Context, guideID string, from, to int) (*service.DiffResult, error)
	Export(ctx context.Context, guideID string, versionID int) (*bytes.Buffer, string, error)
	Calendar(ctx context.Context, guideID string, versionID int) ([]byte, string, error)
	Delete(ctx context.Context, id string) error
}

// Handler aggregates the handlers.
type Handler struct {
	Upload *UploadHandler
	Guide  *GuideHandler
}

// New returns the handler aggregate.
func New(svc GuideService, log *zap.Logger) *Handler {
	return &Handler{
		Upload: &UploadHandler{svc: svc, log: log},
		Guide:  &GuideHandler{svc: svc, log: log},
	}
}
