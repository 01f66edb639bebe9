package kv

import "testing"

// NewTestStore creates a fresh in-memory store for tests.
func NewTestStore(t *testing.T) *Store {
	t.Helper()

	store := New(NewMemory())
	t.Cleanup(func() { store.Close() })
	return store
}
