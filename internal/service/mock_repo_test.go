package service

import (
	"context"
	"sort"
	"sync"

	"github.com/tsawler/vlier/internal/store"
)

type mockRepo struct {
	mu       sync.Mutex
	guides   map[string]store.Guide
	versions map[string][]store.Version
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		guides:   make(map[string]store.Guide),
		versions: make(map[string][]store.Version),
	}
}

func (m *mockRepo) Commit(_ context.Context, guide store.Guide, build store.BuildFunc) (*store.Version, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing := m.versions[guide.ID]
	var prev *store.Version
	if len(existing) > 0 {
		v := existing[len(existing)-1]
		prev = &v
	}
	next, err := build(prev)
	if err != nil {
		return nil, err
	}
	next.GuideID = guide.ID
	next.VersionID = len(existing) + 1
	m.versions[guide.ID] = append(existing, *next)
	guide.LatestVersion = next.VersionID
	m.guides[guide.ID] = guide
	return next, nil
}

func (m *mockRepo) ListGuides(context.Context) ([]store.Guide, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []store.Guide
	for _, g := range m.guides {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *mockRepo) GetGuide(_ context.Context, id string) (*store.Guide, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.guides[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &g, nil
}

func (m *mockRepo) ListVersions(_ context.Context, guideID string) ([]store.Version, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []store.Version
	for _, v := range m.versions[guideID] {
		v.Rows = nil
		out = append(out, v)
	}
	return out, nil
}

func (m *mockRepo) GetVersion(_ context.Context, guideID string, versionID int) (*store.Version, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	vs := m.versions[guideID]
	if versionID < 1 || versionID > len(vs) {
		return nil, store.ErrNotFound
	}
	v := vs[versionID-1]
	return &v, nil
}

func (m *mockRepo) LatestVersion(_ context.Context, guideID string) (*store.Version, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	vs := m.versions[guideID]
	if len(vs) == 0 {
		return nil, store.ErrNotFound
	}
	v := vs[len(vs)-1]
	return &v, nil
}

func (m *mockRepo) DeleteGuide(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.guides[id]; !ok {
		return store.ErrNotFound
	}
	delete(m.guides, id)
	delete(m.versions, id)
	return nil
}
