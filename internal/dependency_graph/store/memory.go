package store

import (
	"context"
	"sync"

	"github.com/knitviz/di-graph-backend/internal/dependency_graph/domain"
)

type MemoryStore struct {
	mu      sync.RWMutex
	docs    map[string]*StoredDocument
	current string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: map[string]*StoredDocument{}}
}

func (m *MemoryStore) Name() string { return "memory" }

func (m *MemoryStore) Save(_ context.Context, doc *StoredDocument) error {
	cp := *doc
	cp.Data = append([]byte(nil), doc.Data...)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[cp.ID] = &cp
	m.current = cp.ID
	return nil
}

func (m *MemoryStore) Current(ctx context.Context) (*StoredDocument, error) {
	m.mu.RLock()
	id := m.current
	m.mu.RUnlock()
	if id == "" {
		return nil, domain.ErrNoDocument
	}
	return m.Get(ctx, id)
}

func (m *MemoryStore) Get(_ context.Context, id string) (*StoredDocument, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.docs[id]
	if !ok {
		return nil, domain.ErrNoDocument
	}
	cp := *d
	return &cp, nil
}

func (m *MemoryStore) Ping(context.Context) error { return nil }
