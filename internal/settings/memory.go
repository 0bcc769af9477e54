package settings

import "sync"

// #region memory-store

// Memory is an in-process Store for tests and offline replay.
type Memory struct {
	mu   sync.Mutex
	vals map[memKey]int
}

type memKey struct {
	user int
	key  string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{vals: make(map[memKey]int)}
}

// GetInt returns the stored value, or def when absent.
func (m *Memory) GetInt(user int, key string, def int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.vals[memKey{user, key}]; ok {
		return v
	}
	return def
}

// PutInt stores value for (user, key).
func (m *Memory) PutInt(user int, key string, value int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.vals[memKey{user, key}] = value
	return nil
}

// #endregion memory-store
