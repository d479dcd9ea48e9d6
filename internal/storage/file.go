package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileKV keeps every key in one JSON object on disk. The whole file is
// rewritten on each Set.
type FileKV struct {
	mu     sync.Mutex
	values map[string]string
	path   string
}

// OpenFileKV loads (or creates) storage.json in the given data directory.
func OpenFileKV(dataDir string) (*FileKV, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	fk := &FileKV{
		values: make(map[string]string),
		path:   filepath.Join(dataDir, "storage.json"),
	}

	if err := fk.load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading storage: %w", err)
	}

	return fk, nil
}

// Get implements KV.
func (fk *FileKV) Get(key string) (string, bool, error) {
	fk.mu.Lock()
	defer fk.mu.Unlock()
	v, ok := fk.values[key]
	return v, ok, nil
}

// Set implements KV.
func (fk *FileKV) Set(key, value string) error {
	fk.mu.Lock()
	defer fk.mu.Unlock()

	prev, had := fk.values[key]
	fk.values[key] = value
	if err := fk.save(); err != nil {
		if had {
			fk.values[key] = prev
		} else {
			delete(fk.values, key)
		}
		return fmt.Errorf("writing %q: %w", key, err)
	}
	return nil
}

// Close implements KV.
func (fk *FileKV) Close() error {
	return nil
}

func (fk *FileKV) load() error {
	data, err := os.ReadFile(fk.path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, &fk.values); err != nil {
		return err
	}
	if fk.values == nil {
		fk.values = make(map[string]string)
	}
	return nil
}

func (fk *FileKV) save() error {
	data, err := json.MarshalIndent(fk.values, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(fk.path, data, 0o644)
}
