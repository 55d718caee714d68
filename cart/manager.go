package cart

import (
	"path/filepath"
	"sync"
)

// Manager hands out one Store per owner, each persisted to
// <dir>/<owner>.json under the fixed cart storage directory.
type Manager struct {
	mu     sync.Mutex
	dir    string
	stores map[string]*Store
}

func NewManager(dir string) *Manager {
	return &Manager{dir: dir, stores: make(map[string]*Store)}
}

func (m *Manager) For(owner string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.stores[owner]; ok {
		return s
	}
	s := NewStore(filepath.Join(m.dir, owner+".json"))
	m.stores[owner] = s
	return s
}
