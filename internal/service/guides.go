package service

import (
	"context"
	"errors"

	"github.com/tsawler/vlier/diff"
	"github.com/tsawler/vlier/internal/store"
)

// GuideDetail is a guide with a summary of its versions.
type GuideDetail struct {
	store.Guide
	Versions []store.Version `json:"versions"`
}

// DiffResult compares two stored versions of a guide.
type DiffResult struct {
	GuideID string       `json:"guideId"`
	From    int          `json:"from"`
	To      int          `json:"to"`
	Summary diff.Summary `json:"summary"`
	Entries []diff.Entry `json:"entries"`
}

// Guides lists every guide.
func (s *Service) Guides(ctx context.Context) ([]store.Guide, error) {
	guides, err := s.repo.ListGuides(ctx)
	if err != nil {
		return nil, err
	}
	if guides == nil {
		guides = []store.Guide{}
	}
	return guides, nil
}

// Guide returns a guide and its versions without their rows.
func (s *Service) Guide(ctx context.Context, id string) (*GuideDetail, error) {
	g, err := s.repo.GetGuide(ctx, id)
	if err != nil {
		return nil, guideErr(err)
	}
	versions, err := s.repo.ListVersions(ctx, id)
	if err != nil {
		return nil, err
	}
	if versions == nil {
		versions = []store.Version{}
	}
	return &GuideDetail{Guide: *g, Versions: versions}, nil
}

// Version returns one stored version.
func (s *Service) Version(ctx context.Context, guideID string, versionID int) (*store.Version, error) {
	if _, err := s.repo.GetGuide(ctx, guideID); err != nil {
		return nil, guideErr(err)
	}
	v, err := s.repo.GetVersion(ctx, guideID, versionID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrVersionNotFound
	}
	return v, err
}

// Diff compares version from with version to. A zero to means the latest
// version and a zero from the one before to.
func (s *Service) Diff(ctx context.Context, guideID string, from, to int) (*DiffResult, error) {
	g, err := s.repo.GetGuide(ctx, guideID)
	if err != nil {
		return nil, guideErr(err)
	}
	if to == 0 {
		to = g.LatestVersion
	}
	if from == 0 {
		from = to - 1
	}

	next, err := s.Version(ctx, guideID, to)
	if err != nil {
		return nil, err
	}
	res := &DiffResult{GuideID: guideID, From: from, To: to}
	if from > 0 {
		prev, err := s.Version(ctx, guideID, from)
		if err != nil {
			return nil, err
		}
		res.Summary, res.Entries = diff.Compute(prev.Rows, next.Rows)
	} else {
		res.Summary, res.Entries = diff.Compute(nil, next.Rows)
	}
	return res, nil
}

// Delete removes a guide and all its versions.
func (s *Service) Delete(ctx context.Context, id string) error {
	return guideErr(s.repo.DeleteGuide(ctx, id))
}

func guideErr(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrGuideNotFound
	}
	return err
}
