package api

import (
	"io"
	"net/http"

	"github.com/findly-app/findly/internal/backup"
)

// MaxImportSize limits import documents to 32 MiB.
const MaxImportSize = 32 << 20

// BackupHandler handles full data export and import.
type BackupHandler struct {
	Manager *backup.Manager
}

// Export handles GET /api/export. The response downloads as a JSON file.
func (h *BackupHandler) Export(w http.ResponseWriter, r *http.Request) {
	data, err := h.Manager.ExportAll()
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to export data")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="findly-backup.json"`)
	w.Write(data)
}

// Import handles POST /api/import. A malformed document changes nothing.
func (h *BackupHandler) Import(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxImportSize))
	if err != nil {
		jsonError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	if err := h.Manager.ImportAll(data); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid import document")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "data imported"})
}
