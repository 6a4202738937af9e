package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned when a guide or version does not exist.
var ErrNotFound = errors.New("store: not found")

// BuildFunc builds the next version of a guide from its latest version,
// which is nil for the first commit. It runs inside the commit transaction.
type BuildFunc func(prev *Version) (*Version, error)

// Repository is the guide/version data access interface.
type Repository interface {
	// Commit upserts guide and appends the version returned by build,
	// numbered one past the latest.
	Commit(ctx context.Context, guide Guide, build BuildFunc) (*Version, error)
	ListGuides(ctx context.Context) ([]Guide, error)
	GetGuide(ctx context.Context, id string) (*Guide, error)
	// ListVersions returns the versions of a guide without their rows.
	ListVersions(ctx context.Context, guideID string) ([]Version, error)
	GetVersion(ctx context.Context, guideID string, versionID int) (*Version, error)
	LatestVersion(ctx context.Context, guideID string) (*Version, error)
	DeleteGuide(ctx context.Context, id string) error
}

type repo struct {
	db *gorm.DB
}

// NewRepository returns a Repository backed by db.
func NewRepository(db *gorm.DB) Repository {
	return &repo{db: db}
}

func (r *repo) Commit(ctx context.Context, guide Guide, build BuildFunc) (*Version, error) {
	var out *Version
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&guide).Error; err != nil {
			return fmt.Errorf("upsert guide: %w", err)
		}
		// Serialises concurrent commits of the same guide.
		var locked Guide
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&locked, "id = ?", guide.ID).Error; err != nil {
			return fmt.Errorf("lock guide: %w", err)
		}

		var prev *Version
		if locked.LatestVersion > 0 {
			var v Version
			if err := tx.First(&v, "guide_id = ? AND version_id = ?", guide.ID, locked.LatestVersion).Error; err != nil {
				return fmt.Errorf("load version %d: %w", locked.LatestVersion, err)
			}
			prev = &v
		}

		next, err := build(prev)
		if err != nil {
			return err
		}
		next.GuideID = guide.ID
		next.VersionID = locked.LatestVersion + 1
		if err := tx.Create(next).Error; err != nil {
			return fmt.Errorf("create version: %w", err)
		}

		if err := tx.Model(&Guide{}).Where("id = ?", guide.ID).Updates(map[string]any{
			"vak":            guide.Vak,
			"niveau":         guide.Niveau,
			"leerjaar":       guide.Leerjaar,
			"periode":        guide.Periode,
			"schooljaar":     guide.Schooljaar,
			"latest_version": next.VersionID,
		}).Error; err != nil {
			return fmt.Errorf("update guide: %w", err)
		}
		out = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repo) ListGuides(ctx context.Context) ([]Guide, error) {
	var guides []Guide
	err := r.db.WithContext(ctx).
		Order("vak ASC, leerjaar ASC, periode ASC").
		Find(&guides).Error
	return guides, err
}

func (r *repo) GetGuide(ctx context.Context, id string) (*Guide, error) {
	var g Guide
	if err := r.db.WithContext(ctx).First(&g, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &g, nil
}

func (r *repo) ListVersions(ctx context.Context, guideID string) ([]Version, error) {
	var versions []Version
	err := r.db.WithContext(ctx).
		Omit("doc_rows", "diff").
		Where("guide_id = ?", guideID).
		Order("version_id ASC").
		Find(&versions).Error
	return versions, err
}

func (r *repo) GetVersion(ctx context.Context, guideID string, versionID int) (*Version, error) {
	var v Version
	if err := r.db.WithContext(ctx).
		First(&v, "guide_id = ? AND version_id = ?", guideID, versionID).Error; err != nil {
		return nil, notFound(err)
	}
	return &v, nil
}

func (r *repo) LatestVersion(ctx context.Context, guideID string) (*Version, error) {
	var v Version
	if err := r.db.WithContext(ctx).
		Where("guide_id = ?", guideID).
		Order("version_id DESC").
		First(&v).Error; err != nil {
		return nil, notFound(err)
	}
	return &v, nil
}

func (r *repo) DeleteGuide(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("guide_id = ?", id).Delete(&Version{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&Guide{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
