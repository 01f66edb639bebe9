package store

import (
	"testing"
	"time"

	"github.com/findly-app/findly/internal/kv"
	"github.com/findly-app/findly/internal/model"
)

// newTestStore returns a store over an in-memory backend with a clock that
// advances one millisecond per call, so generated ids are deterministic.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	base := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	calls := 0
	now := func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Millisecond)
	}
	return NewWithClock(kv.NewTestStore(t), now)
}

func TestSaveAssignsIDAndTimestamp(t *testing.T) {
	st := newTestStore(t)

	saved := st.SaveItem(model.Item{Kind: model.KindLost, Name: "iPhone 13", Category: "electronics"})
	if saved.ID == 0 {
		t.Fatal("expected generated id")
	}
	if saved.CreatedAt == "" {
		t.Fatal("expected creation timestamp")
	}
	if _, err := time.Parse(time.RFC3339, saved.CreatedAt); err != nil {
		t.Errorf("creation timestamp not RFC 3339: %v", err)
	}

	got, ok := st.ItemByID(saved.ID)
	if !ok {
		t.Fatal("expected saved item to be found by id")
	}
	if got.Name != "iPhone 13" || got.Kind != model.KindLost {
		t.Errorf("unexpected item: %+v", got)
	}
}

func TestSaveUpsertsInPlace(t *testing.T) {
	st := newTestStore(t)

	first := st.SaveItem(model.Item{Kind: model.KindFound, Name: "Leather wallet", Category: "accessories"})
	st.SaveItem(model.Item{Kind: model.KindLost, Name: "Umbrella", Category: "other"})

	first.Description = "brown, monogrammed"
	st.SaveItem(first)

	items := st.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 items after upsert, got %d", len(items))
	}

	got, _ := st.ItemByID(first.ID)
	if got.Description != "brown, monogrammed" {
		t.Errorf("expected upsert to replace in place, got %+v", got)
	}
	// Insertion order preserved: the updated item stays first.
	if items[0].ID != first.ID {
		t.Error("expected upserted item to keep its position")
	}
}

func TestSaveKeepsExplicitID(t *testing.T) {
	st := newTestStore(t)

	saved := st.SaveItem(model.Item{ID: 42, Kind: model.KindLost, Name: "Keys", Category: "other"})
	if saved.ID != 42 {
		t.Errorf("expected explicit id to be kept, got %d", saved.ID)
	}
}

func TestDeleteItem(t *testing.T) {
	st := newTestStore(t)

	item := st.SaveItem(model.Item{Kind: model.KindLost, Name: "Backpack", Category: "accessories"})
	st.SaveItem(model.Item{Kind: model.KindFound, Name: "Glasses", Category: "accessories"})

	st.DeleteItem(item.ID)

	if _, ok := st.ItemByID(item.ID); ok {
		t.Error("expected deleted item to be gone")
	}
	if len(st.Items()) != 1 {
		t.Errorf("expected 1 item left, got %d", len(st.Items()))
	}

	// Deleting again is a no-op.
	st.DeleteItem(item.ID)
	if len(st.Items()) != 1 {
		t.Error("expected delete to be idempotent")
	}
}

func TestItemPhoto(t *testing.T) {
	st := newTestStore(t)

	item := st.SaveItem(model.Item{Kind: model.KindFound, Name: "Camera", Category: "electronics"})
	st.SetItemPhoto(item.ID, []byte("jpeg bytes"))

	data, ok := st.ItemPhoto(item.ID)
	if !ok || string(data) != "jpeg bytes" {
		t.Errorf("expected stored photo bytes, got %q (found=%v)", data, ok)
	}

	// Deleting the item drops the photo too.
	st.DeleteItem(item.ID)
	if _, ok := st.ItemPhoto(item.ID); ok {
		t.Error("expected photo to be removed with the item")
	}
}

func TestEmptyCollectionIsNotAnError(t *testing.T) {
	st := newTestStore(t)

	if items := st.Items(); len(items) != 0 {
		t.Errorf("expected empty collection, got %d items", len(items))
	}
	if _, ok := st.ItemByID(1); ok {
		t.Error("expected lookup in empty collection to miss")
	}
	st.DeleteItem(1) // must not panic
}
