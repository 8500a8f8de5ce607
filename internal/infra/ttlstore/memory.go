package ttlstore

import (
	"context"
	"strings"
	"sync"
)

// MemoryMedium keeps payloads in a map. A positive quota caps the summed
// size of keys and payloads, the way browser storage rejects writes once
// its budget is spent.
type MemoryMedium struct {
	mu    sync.RWMutex
	data  map[string][]byte
	used  int
	quota int
}

func NewMemoryMedium(quotaBytes int) *MemoryMedium {
	return &MemoryMedium{
		data:  make(map[string][]byte),
		quota: quotaBytes,
	}
}

func (m *MemoryMedium) Read(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	payload, ok := m.data[key]
	if !ok {
		return nil, ErrEntryNotFound
	}
	out := make([]byte, len(payload))
	copy(out, payload)
	return out, nil
}

func (m *MemoryMedium) Write(_ context.Context, key string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	used := m.used + len(key) + len(payload)
	if old, ok := m.data[key]; ok {
		used -= len(key) + len(old)
	}
	if m.quota > 0 && used > m.quota {
		return ErrQuotaExceeded
	}

	stored := make([]byte, len(payload))
	copy(stored, payload)
	m.data[key] = stored
	m.used = used
	return nil
}

func (m *MemoryMedium) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if old, ok := m.data[key]; ok {
		m.used -= len(key) + len(old)
		delete(m.data, key)
	}
	return nil
}

func (m *MemoryMedium) Keys(_ context.Context, prefix string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

// Used returns the bytes currently counted against the quota.
func (m *MemoryMedium) Used() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.used
}
