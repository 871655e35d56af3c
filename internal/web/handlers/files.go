package handlers

import (
	"fmt"
	"net/http"
)

// HandleFiles lists or clears the data directory:
// GET /api/files, DELETE /api/clear-files (routed separately).
func (h *Handler) HandleFiles(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	files, err := h.Data.List()
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "Error listing files: "+err.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"files": files,
		"count": len(files),
	})
}

// HandleClearFiles deletes every stored output file.
func (h *Handler) HandleClearFiles(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	deleted, err := h.Data.Clear()
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "Error deleting files: "+err.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":       true,
		"deleted_files": deleted,
		"count":         len(deleted),
		"message":       fmt.Sprintf("Cleared %d file(s) from data directory.", len(deleted)),
	})
}
