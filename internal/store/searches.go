package store

// MaxRecentSearches bounds the recent-search list; the oldest term is
// evicted when it overflows.
const MaxRecentSearches = 10

// AddRecentSearch records a free-text search term, most-recent-first. A
// duplicate term moves to the front instead of appearing twice.
func (s *Store) AddRecentSearch(term string) {
	searches := s.RecentSearches()

	for i, existing := range searches {
		if existing == term {
			searches = append(searches[:i], searches[i+1:]...)
			break
		}
	}

	searches = append([]string{term}, searches...)
	if len(searches) > MaxRecentSearches {
		searches = searches[:MaxRecentSearches]
	}

	s.kv.Put(KeyRecentSearches, searches)
}

// RecentSearches returns past search terms, most recent first.
func (s *Store) RecentSearches() []string {
	var searches []string
	s.kv.Get(KeyRecentSearches, &searches)
	return searches
}

// ClearRecentSearches forgets all past search terms.
func (s *Store) ClearRecentSearches() {
	s.kv.Remove(KeyRecentSearches)
}
