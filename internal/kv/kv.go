// Package kv wraps an embedded key-value database with JSON encoding,
// default-value fallback and a log-and-continue failure policy. Every
// persisted entity in Findly is a named value under this adapter, so storage
// failures degrade to no-ops instead of surfacing to handlers.
package kv

import (
	"encoding/json"
	"fmt"
	"log/slog"
)

// Backend is a raw byte-oriented key-value store.
type Backend interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
	Delete(key string) error
	Clear() error
	Close() error
}

// Store is the JSON-encoding adapter over a Backend.
type Store struct {
	backend Backend
}

// New wraps a backend in a Store.
func New(backend Backend) *Store {
	return &Store{backend: backend}
}

// Open opens a store for the given driver ("bolt" or "sqlite") at path.
func Open(driver, path string) (*Store, error) {
	switch driver {
	case "bolt":
		backend, err := OpenBolt(path)
		if err != nil {
			return nil, err
		}
		return New(backend), nil
	case "sqlite":
		backend, err := OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		return New(backend), nil
	default:
		return nil, fmt.Errorf("unknown kv driver %q", driver)
	}
}

// Put stores value under key. Strings and raw bytes are stored as-is, other
// values are JSON-encoded. Failures are logged and swallowed: the adapter
// never raises to the caller.
func (s *Store) Put(key string, value any) {
	var data []byte
	switch v := value.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		var err error
		data, err = json.Marshal(value)
		if err != nil {
			slog.Error("kv: encoding value", "key", key, "error", err)
			return
		}
	}

	if err := s.backend.Put(key, data); err != nil {
		slog.Error("kv: storing value", "key", key, "error", err)
	}
}

// Get decodes the value stored under key into out and reports whether out was
// populated. Absent keys return false so the caller's pre-filled default
// survives. Undecodable values degrade gracefully: when out is a *string the
// raw stored text is returned (legacy values were never JSON-encoded),
// otherwise the value is logged and skipped.
func (s *Store) Get(key string, out any) bool {
	data, ok, err := s.backend.Get(key)
	if err != nil {
		slog.Error("kv: reading value", "key", key, "error", err)
		return false
	}
	if !ok {
		return false
	}

	if err := json.Unmarshal(data, out); err != nil {
		if str, isString := out.(*string); isString {
			*str = string(data)
			return true
		}
		slog.Error("kv: decoding value", "key", key, "error", err)
		return false
	}
	return true
}

// GetBytes returns the raw stored bytes for key.
func (s *Store) GetBytes(key string) ([]byte, bool) {
	data, ok, err := s.backend.Get(key)
	if err != nil {
		slog.Error("kv: reading value", "key", key, "error", err)
		return nil, false
	}
	return data, ok
}

// Remove deletes the value under key. Best-effort, non-throwing.
func (s *Store) Remove(key string) {
	if err := s.backend.Delete(key); err != nil {
		slog.Error("kv: removing value", "key", key, "error", err)
	}
}

// Clear deletes every stored value. Best-effort, non-throwing.
func (s *Store) Clear() {
	if err := s.backend.Clear(); err != nil {
		slog.Error("kv: clearing store", "error", err)
	}
}

// Close closes the backing database.
func (s *Store) Close() error {
	return s.backend.Close()
}
