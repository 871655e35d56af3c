// Package handlers wires the toolkit's internal packages to HTTP. Handlers
// stay thin: decode the request, call the same code the CLIs use, encode
// the response.
package handlers

import (
	"context"
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/thisisdarkstar/lead-toolkit/internal/console"
	"github.com/thisisdarkstar/lead-toolkit/internal/dashboard"
	"github.com/thisisdarkstar/lead-toolkit/internal/lead"
	"github.com/thisisdarkstar/lead-toolkit/internal/storage"
	"github.com/thisisdarkstar/lead-toolkit/internal/web/templates"
)

// Finder is the lead pipeline surface handlers depend on.
type Finder interface {
	Find(ctx context.Context, domains []string) lead.Result
	FindOne(ctx context.Context, source string) ([]lead.Lead, error)
}

// AllocationsFetcher is the dashboard surface handlers depend on.
type AllocationsFetcher interface {
	FetchAllocations(ctx context.Context, size int) (*dashboard.AllocationsResponse, []byte, error)
}

// Handler carries the shared dependencies for all routes.
type Handler struct {
	Finder Finder
	Data   *storage.Dir
	Log    *console.Logger

	// NewDashboard builds a dashboard client for a request's token.
	// Swappable for tests.
	NewDashboard func(token string) AllocationsFetcher
}

// New returns a Handler with production wiring.
func New(finder Finder, data *storage.Dir, log *console.Logger) *Handler {
	return &Handler{
		Finder: finder,
		Data:   data,
		Log:    log,
		NewDashboard: func(token string) AllocationsFetcher {
			return dashboard.NewClient(token)
		},
	}
}

// HandleHome renders the tool's landing page with one form per pipeline.
func (h *Handler) HandleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	data := struct {
		Title string
	}{
		Title: "Lead Toolkit",
	}

	tmpl := template.Must(template.New("home").Parse(templates.HomeTemplate))
	if err := tmpl.Execute(w, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// HandleHealth reports liveness and the data directory in use.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "healthy",
		"message":  "All systems operational",
		"data_dir": h.Data.Path(),
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.Log.Errorf("encoding response: %v", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, map[string]interface{}{
		"success": false,
		"detail":  msg,
	})
}

// CORS wraps a handler with permissive CORS headers so a dev front-end on
// another port can call the API.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
