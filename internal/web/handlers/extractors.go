package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/thisisdarkstar/lead-toolkit/internal/dashboard"
	"github.com/thisisdarkstar/lead-toolkit/internal/extract"
)

// namekartRequest is the body of POST /api/extract-namekart. Form posts
// from the home page are accepted too.
type namekartRequest struct {
	Token string `json:"token"`
	Size  int    `json:"size"`
}

// HandleExtractNamekart pulls one allocations page from the dashboard,
// persists the raw payload plus the extracted domain list, and returns
// the domains.
func (h *Handler) HandleExtractNamekart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req namekartRequest
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
			return
		}
	} else {
		req.Token = r.FormValue("token")
		req.Size, _ = strconv.Atoi(r.FormValue("size"))
	}
	if req.Token == "" {
		h.writeError(w, http.StatusBadRequest, "token is required")
		return
	}

	client := h.NewDashboard(req.Token)
	resp, raw, err := client.FetchAllocations(r.Context(), req.Size)
	if err != nil {
		h.writeError(w, http.StatusBadGateway, "Failed to fetch data from Namekart API: "+err.Error())
		return
	}

	domains := dashboard.ExtractDomains(resp)

	outputFile, err := h.Data.SaveLines("namekart_domains", domains)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "saving domain list: "+err.Error())
		return
	}
	rawFile, err := h.Data.Save("namekart_raw", "json", raw)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "saving raw response: "+err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":       true,
		"domains":       domains,
		"count":         len(domains),
		"output_file":   outputFile,
		"raw_data_file": rawFile,
		"message":       fmt.Sprintf("Successfully extracted %d domains from Namekart API", len(domains)),
	})
}

// HandleExtractCSV extracts the "domain" column from an uploaded CSV.
func (h *Handler) HandleExtractCSV(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "file upload is required")
		return
	}
	defer file.Close()

	domains, err := extract.DomainsFromCSV(file)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	outputFile, err := h.Data.SaveLines("csv_domains", domains)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "saving domain list: "+err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"domains":     domains,
		"count":       len(domains),
		"output_file": outputFile,
		"message":     fmt.Sprintf("Extracted %d domains from CSV", len(domains)),
	})
}
