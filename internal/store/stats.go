package store

import "github.com/findly-app/findly/internal/model"

// Stats summarizes the stored data set.
func (s *Store) Stats() model.Stats {
	items := s.Items()

	stats := model.Stats{
		TotalItems:     len(items),
		ByCategory:     map[string]int{},
		RecentSearches: len(s.RecentSearches()),
		Favorites:      len(s.Favorites()),
	}

	for _, item := range items {
		switch item.Kind {
		case model.KindLost:
			stats.LostItems++
		case model.KindFound:
			stats.FoundItems++
		}
		if item.Category != "" {
			stats.ByCategory[item.Category]++
		}
	}

	return stats
}
