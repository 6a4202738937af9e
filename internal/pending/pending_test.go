package pending

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	"github.com/tsawler/vlier/model"
)

func sample(id string) *Upload {
	return &Upload{
		ID:      id,
		Bestand: "economie.docx",
		Meta:    &model.DocMeta{Vak: "Economie", Periode: 1},
		Rows:    []model.DocRow{{Week: 36, Onderwerp: "Vraag en aanbod"}},
	}
}

// exercise runs the behaviour every Store shares.
func exercise(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	if _, err := s.Get(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(unknown) error = %v, want ErrNotFound", err)
	}
	if err := s.Put(ctx, sample("a")); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	got, err := s.Get(ctx, "a")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Meta == nil || got.Meta.Vak != "Economie" || len(got.Rows) != 1 || got.Rows[0].Onderwerp != "Vraag en aanbod" {
		t.Errorf("Get() = %+v", got)
	}
	if err := s.Delete(ctx, "a"); err != nil {
		t.Errorf("Delete() error = %v", err)
	}
	if err := s.Delete(ctx, "a"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
}

func TestMemoryStore(t *testing.T) {
	exercise(t, NewMemoryStore(time.Hour))
}

func TestMemoryStoreExpiry(t *testing.T) {
	now := time.Date(2025, 9, 1, 8, 0, 0, 0, time.UTC)
	s := NewMemoryStore(time.Hour)
	s.now = func() time.Time { return now }

	ctx := context.Background()
	if err := s.Put(ctx, sample("a")); err != nil {
		t.Fatal(err)
	}
	now = now.Add(59 * time.Minute)
	if _, err := s.Get(ctx, "a"); err != nil {
		t.Errorf("Get() before expiry error = %v", err)
	}
	now = now.Add(time.Minute)
	if _, err := s.Get(ctx, "a"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after expiry error = %v, want ErrNotFound", err)
	}
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	exercise(t, NewRedisStore(rdb, time.Hour))

	s := NewRedisStore(rdb, time.Hour)
	if err := s.Put(context.Background(), sample("b")); err != nil {
		t.Fatal(err)
	}
	if ttl := mr.TTL(keyPrefix + "b"); ttl != time.Hour {
		t.Errorf("TTL = %v, want 1h", ttl)
	}
	mr.FastForward(time.Hour)
	if _, err := s.Get(context.Background(), "b"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after expiry error = %v, want ErrNotFound", err)
	}
}
