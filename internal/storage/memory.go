package storage

import "sync"

// MemoryStore keeps the best score for the life of the process.
// It backs --store memory and the SSH server when no database is wanted.
type MemoryStore struct {
	mu   sync.Mutex
	best int
	set  bool
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// LoadBestScore returns the remembered best score.
func (m *MemoryStore) LoadBestScore() (int, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.best, m.set, nil
}

// SaveBestScore remembers score. Lower scores than the current one are
// ignored so concurrent sessions cannot lower a shared best.
func (m *MemoryStore) SaveBestScore(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.set || score > m.best {
		m.best = score
		m.set = true
	}
	return nil
}
