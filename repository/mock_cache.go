package repository

import (
	"sync"
	"time"
)

// MockCache is an in-memory CacheRepository for tests and for running
// without Redis.
type MockCache struct {
	mu   sync.Mutex
	Data map[string]string
}

func NewMockCache() *MockCache {
	return &MockCache{
		Data: make(map[string]string),
	}
}

func (m *MockCache) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Data[key] = value
	return nil
}
