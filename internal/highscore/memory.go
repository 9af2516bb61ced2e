package highscore

import "sync"

// MemoryKV keeps values for the life of the process.
type MemoryKV struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string]string)}
}

func (m *MemoryKV) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
