package store

// AddFavorite marks an item id as a favorite. Adding an id twice keeps a
// single occurrence.
func (s *Store) AddFavorite(id int64) {
	favorites := s.Favorites()
	for _, existing := range favorites {
		if existing == id {
			return
		}
	}
	favorites = append(favorites, id)
	s.kv.Put(KeyFavorites, favorites)
}

// RemoveFavorite unmarks an item id. Idempotent.
func (s *Store) RemoveFavorite(id int64) {
	favorites := s.Favorites()
	for i, existing := range favorites {
		if existing == id {
			favorites = append(favorites[:i], favorites[i+1:]...)
			s.kv.Put(KeyFavorites, favorites)
			return
		}
	}
}

// Favorites returns the favorite item ids. Ids may reference deleted items;
// lookups resolve those to "not found" rather than failing.
func (s *Store) Favorites() []int64 {
	var favorites []int64
	s.kv.Get(KeyFavorites, &favorites)
	return favorites
}

// IsFavorite reports whether an item id is marked as a favorite.
func (s *Store) IsFavorite(id int64) bool {
	for _, existing := range s.Favorites() {
		if existing == id {
			return true
		}
	}
	return false
}
