package web

import (
	"net/http"

	"github.com/thisisdarkstar/lead-toolkit/internal/metrics"
	"github.com/thisisdarkstar/lead-toolkit/internal/web/handlers"
)

// Server is the toolkit's web UI and JSON API.
type Server struct {
	Router *http.ServeMux
}

// NewServer builds the router over a prepared Handler.
func NewServer(h *handlers.Handler) *Server {
	s := &Server{Router: http.NewServeMux()}

	s.Router.HandleFunc("/", h.HandleHome)
	s.Router.HandleFunc("/check", h.HandleCheck)
	s.Router.HandleFunc("/api/health", h.HandleHealth)
	s.Router.HandleFunc("/api/find-leads", h.HandleFindLeads)
	s.Router.HandleFunc("/api/extract-namekart", h.HandleExtractNamekart)
	s.Router.HandleFunc("/api/extract-csv", h.HandleExtractCSV)
	s.Router.HandleFunc("/api/files", h.HandleFiles)
	s.Router.HandleFunc("/api/clear-files", h.HandleClearFiles)
	s.Router.Handle("/metrics", metrics.Handler())

	return s
}

// Start serves until the listener fails.
func (s *Server) Start(addr string) error {
	return http.ListenAndServe(addr, handlers.CORS(s.Router))
}
