// Package pending holds parsed uploads until a reviewer commits or
// discards them.
package pending

import (
	"context"
	"errors"
	"time"

	"github.com/tsawler/vlier/model"
	"github.com/tsawler/vlier/rows"
)

// ErrNotFound is returned for unknown or expired uploads.
var ErrNotFound = errors.New("pending: upload not found")

// Upload is the parse result of one period of an uploaded file.
type Upload struct {
	ID        string         `json:"id"`
	Bestand   string         `json:"bestand"`
	Meta      *model.DocMeta `json:"meta"`
	Rows      []model.DocRow `json:"rows"`
	Warnings  rows.Warnings  `json:"warnings"`
	CreatedAt time.Time      `json:"createdAt"`
}

// Store keeps uploads for a limited time.
type Store interface {
	Put(ctx context.Context, u *Upload) error
	Get(ctx context.Context, id string) (*Upload, error)
	Delete(ctx context.Context, id string) error
}
