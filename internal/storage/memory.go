package storage

import (
	"encoding/json"
	"sync"
)

// Memory is an in-process KV for tests and ephemeral runs. Values are
// round-tripped through JSON so it behaves like the file store.
type Memory struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[string][]byte)}
}

func (m *Memory) Get(key string, dest any) (bool, error) {
	m.mu.RLock()
	data, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, nil
	}
	return true, nil
}

func (m *Memory) Set(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.entries[key] = data
	m.mu.Unlock()
	return nil
}

func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
	return nil
}

// SetRaw stores already-encoded bytes, letting tests plant malformed
// content.
func (m *Memory) SetRaw(key string, data []byte) {
	m.mu.Lock()
	m.entries[key] = data
	m.mu.Unlock()
}

// Has reports whether a key currently holds an entry.
func (m *Memory) Has(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.entries[key]
	return ok
}
