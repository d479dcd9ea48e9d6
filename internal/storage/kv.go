package storage

import (
	"fmt"
	"sync"
)

// Backend names accepted by OpenKV.
const (
	BackendSQLite = "sqlite"
	BackendJSON   = "json"
	BackendMemory = "memory"
)

// KV is a string key-value store with whole-value semantics. Values are
// always read and written in full; there is no partial update.
type KV interface {
	// Get returns the value stored under key. ok is false when the key is absent.
	Get(key string) (value string, ok bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(key, value string) error
	Close() error
}

// OpenKV opens the named backend rooted at dataDir.
func OpenKV(backend, dataDir string) (KV, error) {
	switch backend {
	case BackendSQLite, "":
		return OpenDB(dataDir)
	case BackendJSON:
		return OpenFileKV(dataDir)
	case BackendMemory:
		return NewMemoryKV(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q (available: %s, %s, %s)",
			backend, BackendSQLite, BackendJSON, BackendMemory)
	}
}

// MemoryKV keeps values in memory only. Nothing survives Close.
type MemoryKV struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryKV creates an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string]string)}
}

// Get implements KV.
func (m *MemoryKV) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

// Set implements KV.
func (m *MemoryKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// Close implements KV.
func (m *MemoryKV) Close() error {
	return nil
}
