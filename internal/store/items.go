package store

import (
	"fmt"
	"time"

	"github.com/findly-app/findly/internal/model"
)

// SaveItem upserts an item into the collection. A missing id is assigned from
// the clock (milliseconds since epoch) and a missing creation timestamp is
// stamped; an existing id is replaced in place, otherwise the item is
// appended. Returns the stored item.
func (s *Store) SaveItem(item model.Item) model.Item {
	if item.ID == 0 {
		item.ID = s.now().UnixMilli()
	}
	if item.CreatedAt == "" {
		item.CreatedAt = s.now().Format(time.RFC3339)
	}

	items := s.Items()
	replaced := false
	for i := range items {
		if items[i].ID == item.ID {
			items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, item)
	}

	s.kv.Put(KeyItems, items)
	return item
}

// Items returns the full collection in insertion order. A missing backing
// collection is an empty one, not an error.
func (s *Store) Items() []model.Item {
	var items []model.Item
	s.kv.Get(KeyItems, &items)
	return items
}

// ItemByID returns the first item with the given id.
func (s *Store) ItemByID(id int64) (model.Item, bool) {
	for _, item := range s.Items() {
		if item.ID == id {
			return item, true
		}
	}
	return model.Item{}, false
}

// DeleteItem removes every item with the given id, along with its stored
// photo. Idempotent.
func (s *Store) DeleteItem(id int64) {
	items := s.Items()
	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	s.kv.Put(KeyItems, kept)
	s.RemoveItemPhoto(id)
}

// SetItemPhoto stores the processed photo bytes for an item.
func (s *Store) SetItemPhoto(id int64, data []byte) {
	s.kv.Put(photoKey(id), data)
}

// ItemPhoto returns the stored photo bytes for an item.
func (s *Store) ItemPhoto(id int64) ([]byte, bool) {
	return s.kv.GetBytes(photoKey(id))
}

// RemoveItemPhoto deletes an item's stored photo.
func (s *Store) RemoveItemPhoto(id int64) {
	s.kv.Remove(photoKey(id))
}

func photoKey(id int64) string {
	return fmt.Sprintf("%s%d", photoKeyPrefix, id)
}
