package pending

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps uploads in process memory. It is used when redis is
// disabled or unreachable; uploads do not survive a restart.
type MemoryStore struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	items map[string]memItem
}

type memItem struct {
	upload  Upload
	expires time.Time
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{ttl: ttl, now: time.Now, items: make(map[string]memItem)}
}

func (s *MemoryStore) Put(_ context.Context, u *Upload) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweep()
	s.items[u.ID] = memItem{upload: *u, expires: s.now().Add(s.ttl)}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*Upload, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[id]
	if !ok || !s.now().Before(it.expires) {
		delete(s.items, id)
		return nil, ErrNotFound
	}
	u := it.upload
	return &u, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[id]
	delete(s.items, id)
	if !ok || !s.now().Before(it.expires) {
		return ErrNotFound
	}
	return nil
}

// sweep drops expired uploads. Callers hold mu.
func (s *MemoryStore) sweep() {
	now := s.now()
	for id, it := range s.items {
		if !now.Before(it.expires) {
			delete(s.items, id)
		}
	}
}
