// Package search applies text, category, kind and distance predicates to the
// item collection.
package search

import (
	"strings"

	"github.com/findly-app/findly/internal/geo"
	"github.com/findly-app/findly/internal/model"
	"github.com/findly-app/findly/internal/store"
)

// Filter selects a view of the item collection. Zero-valued fields are skipped. A
// MaxDistanceKm of zero, or at or above geo.MaxFilterKm, disables the
// distance pass.
type Filter struct {
	Text          string
	Category      string
	Kind          string
	MaxDistanceKm float64
}

// Engine runs filters against the stored item collection.
type Engine struct {
	store *store.Store
}

// New creates a search engine over the given store.
func New(st *store.Store) *Engine {
	return &Engine{store: st}
}

// Search returns the items matching the filter, preserving the repository's
// insertion order. A non-empty text term is recorded as a recent search.
func (e *Engine) Search(f Filter) []model.Item {
	if f.Text != "" {
		e.store.AddRecentSearch(f.Text)
	}

	items := e.store.Items()

	if f.Kind != "" {
		items = keep(items, func(item model.Item) bool {
			return item.Kind == f.Kind
		})
	}

	if f.Category != "" {
		items = keep(items, func(item model.Item) bool {
			return item.Category == f.Category
		})
	}

	if f.Text != "" {
		term := strings.ToLower(f.Text)
		items = keep(items, func(item model.Item) bool {
			return strings.Contains(strings.ToLower(item.Name), term) ||
				strings.Contains(strings.ToLower(item.Description), term) ||
				strings.Contains(strings.ToLower(item.Location), term)
		})
	}

	if f.MaxDistanceKm > 0 && f.MaxDistanceKm < geo.MaxFilterKm {
		var origin *model.SavedLocation
		if loc, ok := e.store.Location(); ok {
			origin = &loc
		}
		items = geo.FilterByDistance(items, origin, f.MaxDistanceKm)
	}

	return items
}

func keep(items []model.Item, match func(model.Item) bool) []model.Item {
	kept := make([]model.Item, 0, len(items))
	for _, item := range items {
		if match(item) {
			kept = append(kept, item)
		}
	}
	return kept
}
