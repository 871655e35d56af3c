package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/thisisdarkstar/lead-toolkit/internal/extract"
)

const maxUploadBytes = 4 << 20

// HandleFindLeads serves both shapes of the lead search API:
// GET /api/find-leads?domain=apex.com for one domain,
// POST /api/find-leads with an uploaded .txt for a batch.
func (h *Handler) HandleFindLeads(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.findLeadsSingle(w, r)
	case http.MethodPost:
		h.findLeadsUpload(w, r)
	default:
		h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *Handler) findLeadsSingle(w http.ResponseWriter, r *http.Request) {
	d := r.URL.Query().Get("domain")
	if d == "" {
		h.writeError(w, http.StatusBadRequest, "domain query parameter is required")
		return
	}

	leads, err := h.Finder.FindOne(r.Context(), d)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"leads":   leads,
		"count":   len(leads),
		"domain":  d,
		"message": fmt.Sprintf("Lead search completed for %s", d),
	})
}

func (h *Handler) findLeadsUpload(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "file upload is required")
		return
	}
	defer file.Close()

	body, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "reading upload: "+err.Error())
		return
	}

	domains := extract.ParseDomainList(string(body))
	if len(domains) == 0 {
		h.writeError(w, http.StatusBadRequest, "No domains found in file.")
		return
	}

	res := h.Finder.Find(r.Context(), domains)

	// Persist the run so it shows up in /api/files.
	if b, err := json.MarshalIndent(res.Data, "", "  "); err == nil {
		if _, err := h.Data.Save("leads", "json", b); err != nil {
			h.Log.Warnf("persisting lead results: %v", err)
		}
	}

	payload := map[string]interface{}{
		"success": true,
		"leads":   res.Data,
		"count":   len(domains),
		"domains": domains,
		"message": fmt.Sprintf("Lead search completed for %d domains", len(domains)),
	}
	if len(res.Errors) > 0 {
		payload["errors"] = res.Errors
	}
	h.writeJSON(w, http.StatusOK, payload)
}
