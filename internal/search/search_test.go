package search

import (
	"testing"
	"time"

	"github.com/findly-app/findly/internal/kv"
	"github.com/findly-app/findly/internal/model"
	"github.com/findly-app/findly/internal/store"
)

func newFixture(t *testing.T) (*store.Store, *Engine) {
	t.Helper()

	calls := 0
	base := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	st := store.NewWithClock(kv.NewTestStore(t), func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Millisecond)
	})

	st.SaveItem(model.Item{
		ID: 1, Kind: model.KindLost, Name: "iPhone 13", Category: "electronics",
		Description: "black case", Location: "Central Park",
		Coords: &model.Coordinates{Latitude: -7.0255, Longitude: -37.2782},
	})
	st.SaveItem(model.Item{
		ID: 2, Kind: model.KindFound, Name: "Leather wallet", Category: "accessories",
		Description: "brown", Location: "Bus station",
		Coords: &model.Coordinates{Latitude: -8.05, Longitude: -34.9},
	})
	st.SaveItem(model.Item{
		ID: 3, Kind: model.KindLost, Name: "Umbrella", Category: "other",
		Description: "", Location: "Main square",
	})

	return st, New(st)
}

func ids(items []model.Item) []int64 {
	out := make([]int64, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func TestSearchByKind(t *testing.T) {
	_, engine := newFixture(t)

	items := engine.Search(Filter{Kind: model.KindLost})
	if len(items) != 2 || items[0].ID != 1 || items[1].ID != 3 {
		t.Errorf("unexpected result: %v", ids(items))
	}
}

func TestSearchByCategory(t *testing.T) {
	_, engine := newFixture(t)

	items := engine.Search(Filter{Category: "accessories"})
	if len(items) != 1 || items[0].ID != 2 {
		t.Errorf("unexpected result: %v", ids(items))
	}

	if items := engine.Search(Filter{Category: "documents"}); len(items) != 0 {
		t.Errorf("expected empty result, got %v", ids(items))
	}
}

func TestSearchByText(t *testing.T) {
	_, engine := newFixture(t)

	// Case-insensitive, matches name, description or location.
	items := engine.Search(Filter{Text: "WALLET"})
	if len(items) != 1 || items[0].ID != 2 {
		t.Errorf("name match failed: %v", ids(items))
	}

	items = engine.Search(Filter{Text: "black"})
	if len(items) != 1 || items[0].ID != 1 {
		t.Errorf("description match failed: %v", ids(items))
	}

	items = engine.Search(Filter{Text: "square"})
	if len(items) != 1 || items[0].ID != 3 {
		t.Errorf("location match failed: %v", ids(items))
	}
}

func TestSearchCombinesPredicates(t *testing.T) {
	_, engine := newFixture(t)

	items := engine.Search(Filter{Kind: model.KindLost, Category: "electronics", Text: "iphone"})
	if len(items) != 1 || items[0].ID != 1 {
		t.Errorf("unexpected result: %v", ids(items))
	}

	if items := engine.Search(Filter{Kind: model.KindFound, Text: "iphone"}); len(items) != 0 {
		t.Errorf("expected no result, got %v", ids(items))
	}
}

func TestSearchRecordsRecentTerm(t *testing.T) {
	st, engine := newFixture(t)

	engine.Search(Filter{Text: "wallet"})
	engine.Search(Filter{Category: "other"}) // no text, not recorded

	searches := st.RecentSearches()
	if len(searches) != 1 || searches[0] != "wallet" {
		t.Errorf("unexpected recent searches: %v", searches)
	}
}

func TestSearchDistanceCeiling(t *testing.T) {
	st, engine := newFixture(t)
	st.SaveLocation(model.SavedLocation{Latitude: -7.0245, Longitude: -37.2772})

	// Item 1 is ~0.15 km away, item 2 is hundreds of km away, item 3 has no
	// coordinates and always passes.
	items := engine.Search(Filter{MaxDistanceKm: 1})
	if len(items) != 2 || items[0].ID != 1 || items[1].ID != 3 {
		t.Errorf("unexpected result: %v", ids(items))
	}
}

func TestSearchDistanceSentinelDisablesFiltering(t *testing.T) {
	st, engine := newFixture(t)
	st.SaveLocation(model.SavedLocation{Latitude: -7.0245, Longitude: -37.2772})

	for _, ceiling := range []float64{0, 50, 120} {
		items := engine.Search(Filter{MaxDistanceKm: ceiling})
		if len(items) != 3 {
			t.Errorf("ceiling %v: expected all items, got %v", ceiling, ids(items))
		}
	}
}

func TestSearchDistanceWithoutSavedLocation(t *testing.T) {
	_, engine := newFixture(t)

	// No saved location: the distance pass filters nothing.
	items := engine.Search(Filter{MaxDistanceKm: 1})
	if len(items) != 3 {
		t.Errorf("expected all items, got %v", ids(items))
	}
}

func TestSearchPreservesInsertionOrder(t *testing.T) {
	_, engine := newFixture(t)

	items := engine.Search(Filter{})
	if len(items) != 3 || items[0].ID != 1 || items[1].ID != 2 || items[2].ID != 3 {
		t.Errorf("expected insertion order, got %v", ids(items))
	}
}
