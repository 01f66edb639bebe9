package store

import "github.com/findly-app/findly/internal/model"

// SaveLocation overwrites the saved device location. A missing capture
// timestamp is stamped from the clock.
func (s *Store) SaveLocation(loc model.SavedLocation) model.SavedLocation {
	if loc.CapturedAt.IsZero() {
		loc.CapturedAt = s.now()
	}
	s.kv.Put(KeyLocation, loc)
	return loc
}

// Location returns the last captured device location.
func (s *Store) Location() (model.SavedLocation, bool) {
	var loc model.SavedLocation
	ok := s.kv.Get(KeyLocation, &loc)
	return loc, ok
}
