package api

import (
	"net/http"

	"github.com/findly-app/findly/internal/store"
	"github.com/findly-app/findly/internal/validate"
)

// ProfileHandler handles the owner profile and preferences.
type ProfileHandler struct {
	Store *store.Store
}

// Get handles GET /api/profile.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, h.Store.Profile())
}

// Update handles PUT /api/profile. The request overwrites the whole profile.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	profile := h.Store.Profile()
	if err := decodeJSON(r, &profile); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if profile.Email != "" && !validate.Email(profile.Email) {
		jsonError(w, http.StatusBadRequest, "invalid email address")
		return
	}
	if profile.Phone != "" && !validate.Phone(profile.Phone) {
		jsonError(w, http.StatusBadRequest, "invalid phone number")
		return
	}

	h.Store.SaveProfile(profile)
	jsonResponse(w, http.StatusOK, profile)
}

// Preferences handles GET /api/preferences.
func (h *ProfileHandler) Preferences(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, h.Store.Preferences())
}

type preferenceRequest struct {
	Value any `json:"value"`
}

// SetPreference handles PUT /api/preferences/{name}.
func (h *ProfileHandler) SetPreference(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		jsonError(w, http.StatusBadRequest, "missing preference name")
		return
	}

	var req preferenceRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.Store.SetPreference(name, req.Value)
	jsonResponse(w, http.StatusOK, h.Store.Preferences())
}

// RecentSearches handles GET /api/searches/recent.
func (h *ProfileHandler) RecentSearches(w http.ResponseWriter, r *http.Request) {
	searches := h.Store.RecentSearches()
	if searches == nil {
		searches = []string{}
	}
	jsonResponse(w, http.StatusOK, searches)
}

// ClearRecentSearches handles DELETE /api/searches/recent.
func (h *ProfileHandler) ClearRecentSearches(w http.ResponseWriter, r *http.Request) {
	h.Store.ClearRecentSearches()
	jsonResponse(w, http.StatusOK, map[string]string{"message": "recent searches cleared"})
}
