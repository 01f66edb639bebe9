package api

import (
	"net/http"

	"github.com/findly-app/findly/internal/store"
)

// FavoritesHandler handles the owner's favorite listings.
type FavoritesHandler struct {
	Store *store.Store
}

// List handles GET /api/favorites.
func (h *FavoritesHandler) List(w http.ResponseWriter, r *http.Request) {
	ids := h.Store.Favorites()
	if ids == nil {
		ids = []int64{}
	}
	jsonResponse(w, http.StatusOK, ids)
}

// Add handles PUT /api/favorites/{id}.
func (h *FavoritesHandler) Add(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}
	if _, ok := h.Store.ItemByID(id); !ok {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	h.Store.AddFavorite(id)
	jsonResponse(w, http.StatusOK, map[string]string{"message": "favorite added"})
}

// Remove handles DELETE /api/favorites/{id}. Removing an absent favorite
// succeeds.
func (h *FavoritesHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	h.Store.RemoveFavorite(id)
	jsonResponse(w, http.StatusOK, map[string]string{"message": "favorite removed"})
}
