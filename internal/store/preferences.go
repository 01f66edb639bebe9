package store

import "github.com/findly-app/findly/internal/model"

// Preferences returns the full preference map.
func (s *Store) Preferences() model.Preferences {
	prefs := model.Preferences{}
	s.kv.Get(KeyPreferences, &prefs)
	return prefs
}

// SetPreference stores a single preference value.
func (s *Store) SetPreference(name string, value any) {
	prefs := s.Preferences()
	prefs[name] = value
	s.kv.Put(KeyPreferences, prefs)
}

// Preference returns a preference value.
func (s *Store) Preference(name string) (any, bool) {
	value, ok := s.Preferences()[name]
	return value, ok
}

// Theme returns the saved theme, defaulting to light.
func (s *Store) Theme() string {
	return s.stringPreference(model.PrefTheme, model.DefaultTheme)
}

// Language returns the saved language, defaulting to pt-BR.
func (s *Store) Language() string {
	return s.stringPreference(model.PrefLanguage, model.DefaultLanguage)
}

func (s *Store) stringPreference(name, fallback string) string {
	if value, ok := s.Preferences()[name].(string); ok && value != "" {
		return value
	}
	return fallback
}
