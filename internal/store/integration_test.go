//go:build integration

package store_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tsawler/vlier/internal/store"
	"github.com/tsawler/vlier/model"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost port=5433 user=vlier password=vlier dbname=vlier_test sslmode=disable TimeZone=UTC"
	}

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect test database: %v\n", err)
		os.Exit(1)
	}
	sqlDB, err := testDB.DB()
	if err != nil {
		fmt.Fprintf(os.Stderr, "sql.DB: %v\n", err)
		os.Exit(1)
	}
	if err := store.Migrate(sqlDB, zap.NewNop()); err != nil {
		fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
		os.Exit(1)
	}
	os.Exit(m.Run())
}

func testGuide(t *testing.T) store.Guide {
	t.Helper()
	meta := model.DocMeta{
		Vak:        fmt.Sprintf("Vak-%d", time.Now().UnixNano()),
		Niveau:     model.NiveauVWO,
		Leerjaar:   "5",
		Periode:    2,
		Schooljaar: "2025/2026",
	}
	g := store.GuideFromMeta(meta)
	t.Cleanup(func() {
		_ = store.NewRepository(testDB).DeleteGuide(context.Background(), g.ID)
	})
	return g
}

func build(rows ...model.DocRow) store.BuildFunc {
	return func(prev *store.Version) (*store.Version, error) {
		return &store.Version{
			Bestand: "guide.docx",
			Meta:    datatypes.NewJSONType(model.DocMeta{Vak: "x"}),
			Rows:    datatypes.JSONSlice[model.DocRow](rows),
		}, nil
	}
}

func TestCommitNumbersVersions(t *testing.T) {
	ctx := context.Background()
	repo := store.NewRepository(testDB)
	g := testGuide(t)

	for want := 1; want <= 3; want++ {
		v, err := repo.Commit(ctx, g, build(model.DocRow{Week: 35 + want}))
		if err != nil {
			t.Fatalf("Commit() error = %v", err)
		}
		if v.VersionID != want {
			t.Errorf("VersionID = %d, want %d", v.VersionID, want)
		}
	}

	got, err := repo.GetGuide(ctx, g.ID)
	if err != nil {
		t.Fatalf("GetGuide() error = %v", err)
	}
	if got.LatestVersion != 3 {
		t.Errorf("LatestVersion = %d, want 3", got.LatestVersion)
	}

	latest, err := repo.LatestVersion(ctx, g.ID)
	if err != nil {
		t.Fatalf("LatestVersion() error = %v", err)
	}
	if latest.VersionID != 3 || len(latest.Rows) != 1 || latest.Rows[0].Week != 38 {
		t.Errorf("latest = %d %+v", latest.VersionID, latest.Rows)
	}

	versions, err := repo.ListVersions(ctx, g.ID)
	if err != nil {
		t.Fatalf("ListVersions() error = %v", err)
	}
	if len(versions) != 3 || versions[0].VersionID != 1 {
		t.Errorf("ListVersions() = %d versions", len(versions))
	}
}

func TestCommitPassesPrevious(t *testing.T) {
	ctx := context.Background()
	repo := store.NewRepository(testDB)
	g := testGuide(t)

	var seen []*store.Version
	record := func(prev *store.Version) (*store.Version, error) {
		seen = append(seen, prev)
		return build()(prev)
	}
	for i := 0; i < 2; i++ {
		if _, err := repo.Commit(ctx, g, record); err != nil {
			t.Fatalf("Commit() error = %v", err)
		}
	}
	if seen[0] != nil {
		t.Error("first commit got a previous version")
	}
	if seen[1] == nil || seen[1].VersionID != 1 {
		t.Errorf("second commit previous = %+v, want version 1", seen[1])
	}

	failed := errors.New("boom")
	_, err := repo.Commit(ctx, g, func(*store.Version) (*store.Version, error) { return nil, failed })
	if !errors.Is(err, failed) {
		t.Errorf("Commit() error = %v, want %v", err, failed)
	}
	got, _ := repo.GetGuide(ctx, g.ID)
	if got.LatestVersion != 2 {
		t.Errorf("LatestVersion after failed commit = %d, want 2", got.LatestVersion)
	}
}

func TestNotFound(t *testing.T) {
	ctx := context.Background()
	repo := store.NewRepository(testDB)

	if _, err := repo.GetGuide(ctx, "missing"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("GetGuide() error = %v, want ErrNotFound", err)
	}
	if _, err := repo.GetVersion(ctx, "missing", 1); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("GetVersion() error = %v, want ErrNotFound", err)
	}
	if err := repo.DeleteGuide(ctx, "missing"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("DeleteGuide() error = %v, want ErrNotFound", err)
	}
}
