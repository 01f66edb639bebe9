package store

import "github.com/findly-app/findly/internal/model"

// Profile returns the owner's profile, falling back to the default when none
// has been saved yet.
func (s *Store) Profile() model.UserProfile {
	profile := model.DefaultProfile()
	s.kv.Get(KeyProfile, &profile)
	return profile
}

// SaveProfile persists the owner's profile.
func (s *Store) SaveProfile(profile model.UserProfile) {
	s.kv.Put(KeyProfile, profile)
}
