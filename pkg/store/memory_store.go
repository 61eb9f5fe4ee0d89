package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

var _ Store = &MemoryStore{}

// MemoryStore is an in-memory Store for tests and dry runs.
type MemoryStore struct {
	mu       sync.RWMutex
	current  map[string]*Record
	versions map[string][]*Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		current:  make(map[string]*Record),
		versions: make(map[string][]*Record),
	}
}

func (m *MemoryStore) Open(string) error { return nil }
func (m *MemoryStore) Close() error      { return nil }

func (m *MemoryStore) Put(ctx context.Context, rec *Record) error {
	if rec == nil || rec.ID == "" {
		return ErrMissingID
	}
	key, err := MakeKey(rec.ID)
	if err != nil {
		return err
	}

	stored := rec.clone()
	stored.Type, _ = ResourceTypeOf(rec.ID)
	if stored.ImportedAt.IsZero() {
		stored.ImportedAt = time.Now().UTC()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	k := string(key)
	m.current[k] = stored
	m.versions[k] = append(m.versions[k], stored.clone())
	return nil
}

func (m *MemoryStore) Get(ctx context.Context, id string) (*Record, error) {
	key, err := MakeKey(id)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.current[string(key)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return rec.clone(), nil
}

func (m *MemoryStore) List(ctx context.Context, resourceType string) ([]*Record, error) {
	prefix := string(MakePrefix(resourceType))

	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.current))
	for k := range m.current {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var out []*Record
	for _, k := range keys {
		out = append(out, m.current[k].clone())
	}
	return out, nil
}

func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	key, err := MakeKey(id)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	k := string(key)
	if _, ok := m.current[k]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	delete(m.current, k)
	delete(m.versions, k)
	return nil
}

func (m *MemoryStore) History(ctx context.Context, id string) ([]*Record, error) {
	key, err := MakeKey(id)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	versions := m.versions[string(key)]
	if len(versions) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	out := make([]*Record, 0, len(versions))
	for i := len(versions) - 1; i >= 0; i-- {
		out = append(out, versions[i].clone())
	}
	return out, nil
}
