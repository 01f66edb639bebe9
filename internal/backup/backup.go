// Package backup serializes the entire local data set to a single JSON
// document and restores it from one.
package backup

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/findly-app/findly/internal/kv"
	"github.com/findly-app/findly/internal/model"
	"github.com/findly-app/findly/internal/store"
)

// Document is the export format. Field presence matters on import: keys
// absent from the input leave the corresponding store entry untouched, so
// every field is a pointer. The key names are the long-standing export
// contract and must not change.
type Document struct {
	Items          *[]model.Item      `json:"itens,omitempty"`
	Profile        *model.UserProfile `json:"usuario,omitempty"`
	Preferences    *model.Preferences `json:"preferencias,omitempty"`
	RecentSearches *[]string          `json:"buscasRecentes,omitempty"`
	Favorites      *[]int64           `json:"favoritos,omitempty"`
	ExportedAt     string             `json:"dataExportacao,omitempty"`
}

// Manager exports and imports snapshots of the data set.
type Manager struct {
	store *store.Store
	kv    *kv.Store
	now   func() time.Time
}

// New creates a backup manager over the given store.
func New(st *store.Store) *Manager {
	return &Manager{store: st, kv: st.KV(), now: time.Now}
}

// ExportAll produces a complete, self-describing snapshot: items, profile,
// preferences, recent searches, favorites and an export timestamp.
func (m *Manager) ExportAll() ([]byte, error) {
	items := m.store.Items()
	if items == nil {
		items = []model.Item{}
	}
	profile := m.store.Profile()
	prefs := m.store.Preferences()
	searches := m.store.RecentSearches()
	if searches == nil {
		searches = []string{}
	}
	favorites := m.store.Favorites()
	if favorites == nil {
		favorites = []int64{}
	}

	doc := Document{
		Items:          &items,
		Profile:        &profile,
		Preferences:    &prefs,
		RecentSearches: &searches,
		Favorites:      &favorites,
		ExportedAt:     m.now().Format(time.RFC3339),
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding export document: %w", err)
	}
	return data, nil
}

// ImportAll overwrites store entries with the keys present in the document;
// absent keys are left untouched, so a partial document is a valid import.
// Malformed input changes nothing and reports failure.
func (m *Manager) ImportAll(data []byte) error {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decoding import document: %w", err)
	}

	if doc.Items != nil {
		m.kv.Put(store.KeyItems, *doc.Items)
	}
	if doc.Profile != nil {
		m.kv.Put(store.KeyProfile, *doc.Profile)
	}
	if doc.Preferences != nil {
		m.kv.Put(store.KeyPreferences, *doc.Preferences)
	}
	if doc.RecentSearches != nil {
		m.kv.Put(store.KeyRecentSearches, *doc.RecentSearches)
	}
	if doc.Favorites != nil {
		m.kv.Put(store.KeyFavorites, *doc.Favorites)
	}

	return nil
}
