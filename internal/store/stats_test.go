package store

import (
	"testing"

	"github.com/findly-app/findly/internal/model"
)

func TestStats(t *testing.T) {
	st := newTestStore(t)

	st.SaveItem(model.Item{Kind: model.KindLost, Name: "Phone", Category: "electronics"})
	st.SaveItem(model.Item{Kind: model.KindLost, Name: "Charger", Category: "electronics"})
	st.SaveItem(model.Item{Kind: model.KindFound, Name: "Wallet", Category: "accessories"})
	st.AddRecentSearch("wallet")
	st.AddFavorite(1)
	st.AddFavorite(2)

	stats := st.Stats()
	if stats.TotalItems != 3 || stats.LostItems != 2 || stats.FoundItems != 1 {
		t.Errorf("unexpected counts: %+v", stats)
	}
	if stats.ByCategory["electronics"] != 2 || stats.ByCategory["accessories"] != 1 {
		t.Errorf("unexpected category counts: %v", stats.ByCategory)
	}
	if stats.RecentSearches != 1 || stats.Favorites != 2 {
		t.Errorf("unexpected search/favorite counts: %+v", stats)
	}
}
