// Package store keeps string blobs under string keys. The sand host uses it
// for the grid snapshot and the persisted UI controls.
package store

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
)

// ErrNotFound is returned by Get when no value is stored under the key.
var ErrNotFound = errors.New("store: not found")

// KV is a string key-value store.
type KV interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}

// Open picks a backend from location: "" or "memory" keeps values in process,
// a path ending in .db or .sqlite opens a SQLite database, anything else is
// treated as a directory of zstd-compressed files.
func Open(location string) (KV, error) {
	switch ext := strings.ToLower(filepath.Ext(location)); {
	case location == "" || location == "memory":
		return NewMemory(), nil
	case ext == ".db" || ext == ".sqlite":
		return OpenSQLite(location)
	default:
		return OpenFile(location)
	}
}

// Memory is an in-process KV.
type Memory struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemory returns an empty in-process store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	m.values[key] = value
	m.mu.Unlock()
	return nil
}

func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	delete(m.values, key)
	m.mu.Unlock()
	return nil
}

func (m *Memory) Close() error { return nil }

// Slot binds one key of a KV. It satisfies sand.Persistence.
type Slot struct {
	KV  KV
	Key string
}

// Load returns the stored blob. A missing key is not an error.
func (s Slot) Load() (string, bool, error) {
	v, err := s.KV.Get(s.Key)
	if errors.Is(err, ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("load %s: %w", s.Key, err)
	}
	return v, true, nil
}

func (s Slot) Save(blob string) error {
	if err := s.KV.Set(s.Key, blob); err != nil {
		return fmt.Errorf("save %s: %w", s.Key, err)
	}
	return nil
}

func (s Slot) Discard() error {
	if err := s.KV.Delete(s.Key); err != nil {
		return fmt.Errorf("discard %s: %w", s.Key, err)
	}
	slog.Debug("discarded stored value", "key", s.Key)
	return nil
}
