package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/VanshChoyal/Sea-Arsh/internal/domain"
)

// MemoryStore is the single-session scratch space: one key, cleared when the
// session ends. The snapshot is kept serialized so Get always hands back an
// independent copy.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (m *MemoryStore) Put(_ context.Context, snapshot *domain.SelectionSnapshot) error {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[domain.SnapshotKey] = raw
	return nil
}

func (m *MemoryStore) Get(_ context.Context) (*domain.SelectionSnapshot, error) {
	m.mu.RLock()
	raw, ok := m.data[domain.SnapshotKey]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNoSnapshot
	}

	var snapshot domain.SelectionSnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return &snapshot, nil
}

func (m *MemoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, domain.SnapshotKey)
	return nil
}
