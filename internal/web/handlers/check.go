package handlers

import (
	"html/template"
	"net/http"

	"github.com/thisisdarkstar/lead-toolkit/internal/domain"
	"github.com/thisisdarkstar/lead-toolkit/internal/lead"
	"github.com/thisisdarkstar/lead-toolkit/internal/web/templates"
)

// HandleCheck runs a single-domain lead scan and renders the HTML results
// page. The JSON equivalent lives at /api/find-leads.
func (h *Handler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	d := r.URL.Query().Get("domain")
	if d == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	d, err := domain.Clean(d)
	if err != nil {
		http.Error(w, "Invalid domain: "+err.Error(), http.StatusBadRequest)
		return
	}

	leads, err := h.Finder.FindOne(r.Context(), d)
	if err != nil {
		http.Error(w, "Error finding leads: "+err.Error(), http.StatusInternalServerError)
		return
	}

	data := struct {
		Domain string
		Leads  []lead.Lead
	}{
		Domain: d,
		Leads:  leads,
	}

	tmpl := template.Must(template.New("result").Parse(templates.ResultTemplate))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		h.Log.Errorf("template execution error: %v", err)
		return
	}
}
