package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/findly-app/findly/internal/imaging"
	"github.com/findly-app/findly/internal/model"
	"github.com/findly-app/findly/internal/qr"
	"github.com/findly-app/findly/internal/search"
	"github.com/findly-app/findly/internal/store"
	"github.com/findly-app/findly/internal/validate"
)

// MaxPhotoSize limits photo uploads to 5 MiB.
const MaxPhotoSize = 5 << 20

// ItemsHandler handles lost/found listing requests.
type ItemsHandler struct {
	Store   *store.Store
	Search  *search.Engine
	BaseURL string
}

type itemRequest struct {
	Kind        string   `json:"kind"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Date        string   `json:"date"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

func (req *itemRequest) validate() error {
	if !model.ValidKind(req.Kind) {
		return fmt.Errorf("kind must be %q or %q", model.KindLost, model.KindFound)
	}
	if !validate.Required(req.Name) {
		return fmt.Errorf("name is required")
	}
	if !validate.Required(req.Category) {
		return fmt.Errorf("category is required")
	}
	if !validate.Required(req.Location) {
		return fmt.Errorf("location is required")
	}
	if req.Email != "" && !validate.Email(req.Email) {
		return fmt.Errorf("invalid email address")
	}
	if req.Phone != "" && !validate.Phone(req.Phone) {
		return fmt.Errorf("invalid phone number")
	}
	if (req.Latitude == nil) != (req.Longitude == nil) {
		return fmt.Errorf("latitude and longitude must be provided together")
	}
	return nil
}

func (req *itemRequest) toItem() model.Item {
	item := model.Item{
		Kind:        req.Kind,
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Location:    req.Location,
		Date:        req.Date,
		Email:       req.Email,
		Phone:       req.Phone,
	}
	if req.Latitude != nil && req.Longitude != nil {
		item.Coords = &model.Coordinates{
			Latitude:  *req.Latitude,
			Longitude: *req.Longitude,
		}
	}
	return item
}

// List handles GET /api/items. Query parameters q, category, kind and
// distance select a filtered view; without them the full collection is
// returned in insertion order.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := search.Filter{
		Text:     query.Get("q"),
		Category: query.Get("category"),
		Kind:     query.Get("kind"),
	}
	if filter.Kind != "" && !model.ValidKind(filter.Kind) {
		jsonError(w, http.StatusBadRequest, "invalid kind")
		return
	}
	if raw := query.Get("distance"); raw != "" {
		km, err := strconv.ParseFloat(raw, 64)
		if err != nil || km < 0 {
			jsonError(w, http.StatusBadRequest, "invalid distance")
			return
		}
		filter.MaxDistanceKm = km
	}

	items := h.Search.Search(filter)
	if items == nil {
		items = []model.Item{}
	}
	jsonResponse(w, http.StatusOK, items)
}

// Get handles GET /api/items/{id}.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	item, ok := h.Store.ItemByID(id)
	if !ok {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}
	jsonResponse(w, http.StatusOK, item)
}

// Create handles POST /api/items.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.validate(); err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	item := h.Store.SaveItem(req.toItem())
	jsonResponse(w, http.StatusCreated, item)
}

// Update handles PUT /api/items/{id}. The id, creation timestamp and photo
// reference survive the update; everything else is replaced.
func (h *ItemsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	existing, ok := h.Store.ItemByID(id)
	if !ok {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	var req itemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.validate(); err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	item := req.toItem()
	item.ID = existing.ID
	item.CreatedAt = existing.CreatedAt
	item.Photo = existing.Photo

	jsonResponse(w, http.StatusOK, h.Store.SaveItem(item))
}

// Delete handles DELETE /api/items/{id}. Deleting an absent item succeeds;
// favorites referencing the id are left behind and resolve to "not found".
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	h.Store.DeleteItem(id)
	jsonResponse(w, http.StatusOK, map[string]string{"message": "item deleted"})
}

// UploadPhoto handles PUT /api/items/{id}/photo. The image is re-encoded
// and downscaled before storage.
func (h *ItemsHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	item, ok := h.Store.ItemByID(id)
	if !ok {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxPhotoSize)
	if err := r.ParseMultipartForm(MaxPhotoSize); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, _, err := r.FormFile("photo")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "missing photo file")
		return
	}
	defer file.Close()

	processed, err := imaging.ProcessPhoto(file)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "unsupported or corrupt image")
		return
	}

	h.Store.SetItemPhoto(id, processed)
	item.Photo = fmt.Sprintf("/api/items/%d/photo", id)
	jsonResponse(w, http.StatusOK, h.Store.SaveItem(item))
}

// GetPhoto handles GET /api/items/{id}/photo.
func (h *ItemsHandler) GetPhoto(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	data, ok := h.Store.ItemPhoto(id)
	if !ok {
		jsonError(w, http.StatusNotFound, "photo not found")
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "private, max-age=86400")
	w.Write(data)
}

// QRCode handles GET /api/items/{id}/qr. The PNG encodes a shareable link
// that opens the listing directly.
func (h *ItemsHandler) QRCode(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	if _, ok := h.Store.ItemByID(id); !ok {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	base := h.BaseURL
	if base == "" {
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		base = scheme + "://" + r.Host
	}

	png, err := qr.ItemPNG(base, id, qr.DefaultSize)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// Stats handles GET /api/stats.
func (h *ItemsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, h.Store.Stats())
}

func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}
