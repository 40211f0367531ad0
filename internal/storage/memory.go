package storage

import "sync"

// MemoryRepository implements Repository in memory, for tests.
type MemoryRepository struct {
	mu    sync.RWMutex
	prefs *Preferences
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Load implements Repository.
func (m *MemoryRepository) Load() (Preferences, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.prefs == nil {
		return DefaultPreferences(), nil
	}
	return *m.prefs, nil
}

// Save implements Repository.
func (m *MemoryRepository) Save(prefs Preferences) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.prefs = &prefs
	return nil
}
