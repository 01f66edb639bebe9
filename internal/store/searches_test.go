package store

import (
	"fmt"
	"testing"
)

func TestRecentSearchesMostRecentFirst(t *testing.T) {
	st := newTestStore(t)

	st.AddRecentSearch("wallet")
	st.AddRecentSearch("keys")

	searches := st.RecentSearches()
	if len(searches) != 2 || searches[0] != "keys" || searches[1] != "wallet" {
		t.Errorf("unexpected order: %v", searches)
	}
}

func TestRecentSearchDuplicateMovesToFront(t *testing.T) {
	st := newTestStore(t)

	st.AddRecentSearch("wallet")
	st.AddRecentSearch("keys")
	st.AddRecentSearch("wallet")

	searches := st.RecentSearches()
	if len(searches) != 2 {
		t.Fatalf("expected duplicate to collapse, got %v", searches)
	}
	if searches[0] != "wallet" {
		t.Errorf("expected duplicate to move to front, got %v", searches)
	}
}

func TestRecentSearchesEvictOldest(t *testing.T) {
	st := newTestStore(t)

	for i := 1; i <= MaxRecentSearches+1; i++ {
		st.AddRecentSearch(fmt.Sprintf("term-%d", i))
	}

	searches := st.RecentSearches()
	if len(searches) != MaxRecentSearches {
		t.Fatalf("expected %d searches, got %d", MaxRecentSearches, len(searches))
	}
	if searches[0] != fmt.Sprintf("term-%d", MaxRecentSearches+1) {
		t.Errorf("expected newest term first, got %q", searches[0])
	}
	for _, term := range searches {
		if term == "term-1" {
			t.Error("expected oldest term to be evicted")
		}
	}
}

func TestClearRecentSearches(t *testing.T) {
	st := newTestStore(t)

	st.AddRecentSearch("wallet")
	st.ClearRecentSearches()

	if len(st.RecentSearches()) != 0 {
		t.Error("expected no searches after clear")
	}
}
