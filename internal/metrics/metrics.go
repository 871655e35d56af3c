package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registry = prometheus.NewRegistry()
	factory  = promauto.With(registry)
)

// Collectors for the discovery pipeline. Labels keep cardinality low:
// source is one of google/duckduckgo/rapiddns, result is ok/blocked/error.
var (
	SearchQueries = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: "leadtoolkit",
		Subsystem: "discover",
		Name:      "search_queries_total",
		Help:      "Search source queries issued, by source and result.",
	}, []string{"source", "result"})

	CandidatesFound = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: "leadtoolkit",
		Subsystem: "discover",
		Name:      "candidates_total",
		Help:      "Candidate domains returned by each source before filtering.",
	}, []string{"source"})

	ProbesTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: "leadtoolkit",
		Subsystem: "probe",
		Name:      "probes_total",
		Help:      "Liveness probes performed, by outcome (active/inactive).",
	}, []string{"outcome"})

	LeadsEmitted = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: "leadtoolkit",
		Subsystem: "lead",
		Name:      "emitted_total",
		Help:      "Leads emitted, by relevance tier.",
	}, []string{"tier"})

	ScanDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: "leadtoolkit",
		Subsystem: "lead",
		Name:      "scan_duration_seconds",
		Help:      "Wall time of a full per-domain lead scan.",
		Buckets:   prometheus.ExponentialBuckets(0.5, 2, 10),
	})
)

// Handler exposes the toolkit registry for the web server's /metrics route.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
