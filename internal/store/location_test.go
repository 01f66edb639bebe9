package store

import (
	"testing"

	"github.com/findly-app/findly/internal/model"
)

func TestSavedLocationSingleton(t *testing.T) {
	st := newTestStore(t)

	if _, ok := st.Location(); ok {
		t.Fatal("expected no location before first capture")
	}

	saved := st.SaveLocation(model.SavedLocation{Latitude: -7.0245, Longitude: -37.2772, Accuracy: 12})
	if saved.CapturedAt.IsZero() {
		t.Error("expected capture timestamp to be stamped")
	}

	// A later capture overwrites the previous one.
	st.SaveLocation(model.SavedLocation{Latitude: -7.1, Longitude: -37.3})

	loc, ok := st.Location()
	if !ok {
		t.Fatal("expected saved location")
	}
	if loc.Latitude != -7.1 || loc.Longitude != -37.3 {
		t.Errorf("expected latest capture, got %+v", loc)
	}
}
