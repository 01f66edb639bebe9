// Package store implements the persisted entities of Findly on top of the
// key-value adapter: listings, profile, preferences, recent searches,
// favorites, drafts, saved location and owner credentials.
package store

import (
	"time"

	"github.com/findly-app/findly/internal/kv"
)

// Persisted key names. The Portuguese names are the on-disk contract carried
// over from earlier data sets and kept so existing exports stay importable.
const (
	KeyItems          = "items"
	KeyProfile        = "usuario"
	KeyPreferences    = "preferencias"
	KeyRecentSearches = "buscasRecentes"
	KeyFavorites      = "favoritos"
	KeyLocation       = "localizacaoUsuario"
	KeyDrafts         = "rascunhos"
	KeyCredentials    = "credenciais"
	KeyJWTSecret      = "jwt_secret"

	photoKeyPrefix = "foto:"
)

// Store provides typed access to all persisted entities.
type Store struct {
	kv  *kv.Store
	now func() time.Time
}

// New creates a store using the wall clock for ids and timestamps.
func New(db *kv.Store) *Store {
	return NewWithClock(db, time.Now)
}

// NewWithClock creates a store with an injectable clock, so tests can assert
// deterministic ids.
func NewWithClock(db *kv.Store, now func() time.Time) *Store {
	return &Store{kv: db, now: now}
}

// KV exposes the underlying adapter for components that operate on whole
// keys, such as import/export.
func (s *Store) KV() *kv.Store {
	return s.kv
}
