package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/tsawler/vlier/diff"
	"github.com/tsawler/vlier/internal/pending"
	"github.com/tsawler/vlier/internal/store"
	"github.com/tsawler/vlier/model"
	"github.com/tsawler/vlier/rows"
)

// CommitRequest carries a reviewer's corrections. Nil fields keep the
// parsed values.
type CommitRequest struct {
	Periode *int           `json:"periode,omitempty"`
	Rows    []model.DocRow `json:"rows,omitempty"`
}

// Commit stores a pending upload as the next version of its guide. The new
// version carries the diff against the previous version and the warnings
// of its rows. The pending upload is dropped afterwards.
//
// Reviewer supplied rows keep their enabled flags; parsed rows are
// deduplicated again.
func (s *Service) Commit(ctx context.Context, id string, req CommitRequest) (*store.Version, error) {
	u, err := s.Pending(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.Meta == nil {
		return nil, ErrNoGuide
	}

	meta := *u.Meta
	if req.Periode != nil && *req.Periode != meta.Periode {
		meta.Periode = *req.Periode
		meta.GuideID = model.StableGuideID(meta)
		meta.FileID = meta.GuideID
	}

	var rs []model.DocRow
	if req.Rows != nil {
		rs = rows.NormalizeDates(meta.Schooljaar, rows.EnsureRows(req.Rows))
	} else {
		rs = rows.Normalize(meta.Schooljaar, u.Rows)
	}
	warnings := rows.ComputeWarnings(&meta, rs, true)

	guide := store.GuideFromMeta(meta)
	v, err := s.repo.Commit(ctx, guide, func(prev *store.Version) (*store.Version, error) {
		var prevRows []model.DocRow
		if prev != nil {
			prevRows = prev.Rows
		}
		summary, entries := diff.Compute(prevRows, rs)

		next := meta
		next.VersionID = 1
		if prev != nil {
			next.VersionID = prev.VersionID + 1
		}
		return &store.Version{
			Bestand:  u.Bestand,
			Meta:     datatypes.NewJSONType(next),
			Rows:     datatypes.JSONSlice[model.DocRow](rs),
			Diff:     datatypes.NewJSONType(store.Changes{Summary: summary, Entries: entries}),
			Warnings: datatypes.NewJSONType(warnings),
		}, nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.pending.Delete(ctx, id); err != nil && !errors.Is(err, pending.ErrNotFound) {
		s.log.Warn("dropping committed upload", zap.String("upload", id), zap.Error(err))
	}
	s.log.Info("guide committed",
		zap.String("guide", v.GuideID),
		zap.Int("version", v.VersionID),
		zap.Int("rows", len(rs)))
	return v, nil
}
