package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/findly-app/findly/internal/store"
)

// MaxDraftSize limits draft payloads to 1 MiB.
const MaxDraftSize = 1 << 20

// DraftsHandler handles unsubmitted form drafts, keyed by form identifier.
type DraftsHandler struct {
	Store *store.Store
}

// Get handles GET /api/drafts/{form}.
func (h *DraftsHandler) Get(w http.ResponseWriter, r *http.Request) {
	draft, ok := h.Store.Draft(r.PathValue("form"))
	if !ok {
		jsonError(w, http.StatusNotFound, "no draft saved")
		return
	}
	jsonResponse(w, http.StatusOK, draft)
}

// Save handles PUT /api/drafts/{form}. The body is stored verbatim; it only
// has to be valid JSON.
func (h *DraftsHandler) Save(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxDraftSize))
	if err != nil {
		jsonError(w, http.StatusBadRequest, "failed to read request body")
		return
	}
	if !json.Valid(data) {
		jsonError(w, http.StatusBadRequest, "draft must be valid JSON")
		return
	}

	draft := h.Store.SaveDraft(r.PathValue("form"), data)
	jsonResponse(w, http.StatusOK, draft)
}

// Delete handles DELETE /api/drafts/{form}. Deleting an absent draft
// succeeds.
func (h *DraftsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.Store.ClearDraft(r.PathValue("form"))
	jsonResponse(w, http.StatusOK, map[string]string{"message": "draft cleared"})
}
