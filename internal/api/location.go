package api

import (
	"net/http"
	"strconv"

	"github.com/findly-app/findly/internal/geocode"
	"github.com/findly-app/findly/internal/model"
	"github.com/findly-app/findly/internal/store"
)

// LocationHandler handles the saved device location and reverse geocoding.
type LocationHandler struct {
	Store    *store.Store
	Geocoder *geocode.Client
}

type locationRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Accuracy  float64  `json:"accuracy"`
}

// Get handles GET /api/location.
func (h *LocationHandler) Get(w http.ResponseWriter, r *http.Request) {
	loc, ok := h.Store.Location()
	if !ok {
		jsonError(w, http.StatusNotFound, "no saved location")
		return
	}
	jsonResponse(w, http.StatusOK, loc)
}

// Save handles PUT /api/location. The response includes a best-effort
// locality name; geocoding failures fall back to a coordinate label.
func (h *LocationHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req locationRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Latitude == nil || req.Longitude == nil {
		jsonError(w, http.StatusBadRequest, "latitude and longitude are required")
		return
	}

	loc := h.Store.SaveLocation(model.SavedLocation{
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		Accuracy:  req.Accuracy,
	})

	locality, err := h.Geocoder.Locality(r.Context(), loc.Latitude, loc.Longitude)
	if err != nil {
		locality = geocode.CoordinateLabel(loc.Latitude, loc.Longitude)
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"location": loc,
		"locality": locality,
	})
}

// Geocode handles GET /api/geocode?lat=..&lon=..
func (h *LocationHandler) Geocode(w http.ResponseWriter, r *http.Request) {
	lat, errLat := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lon, errLon := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if errLat != nil || errLon != nil {
		jsonError(w, http.StatusBadRequest, "lat and lon are required")
		return
	}

	locality, err := h.Geocoder.Locality(r.Context(), lat, lon)
	if err != nil {
		locality = geocode.CoordinateLabel(lat, lon)
	}

	jsonResponse(w, http.StatusOK, map[string]string{"locality": locality})
}
