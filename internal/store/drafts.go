package store

import (
	"encoding/json"

	"github.com/findly-app/findly/internal/model"
)

// SaveDraft stores an unsubmitted form state under its form identifier.
func (s *Store) SaveDraft(formID string, data json.RawMessage) model.Draft {
	draft := model.Draft{Data: data, SavedAt: s.now()}
	drafts := s.drafts()
	drafts[formID] = draft
	s.kv.Put(KeyDrafts, drafts)
	return draft
}

// Draft returns the stored draft for a form.
func (s *Store) Draft(formID string) (model.Draft, bool) {
	draft, ok := s.drafts()[formID]
	return draft, ok
}

// ClearDraft removes a single form's draft.
func (s *Store) ClearDraft(formID string) {
	drafts := s.drafts()
	delete(drafts, formID)
	s.kv.Put(KeyDrafts, drafts)
}

// ClearDrafts removes all drafts.
func (s *Store) ClearDrafts() {
	s.kv.Remove(KeyDrafts)
}

func (s *Store) drafts() map[string]model.Draft {
	drafts := map[string]model.Draft{}
	s.kv.Get(KeyDrafts, &drafts)
	return drafts
}
