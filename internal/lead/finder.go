package lead

import (
	"context"
	"fmt"
	"time"

	"github.com/thisisdarkstar/lead-toolkit/internal/console"
	"github.com/thisisdarkstar/lead-toolkit/internal/discover"
	"github.com/thisisdarkstar/lead-toolkit/internal/domain"
	"github.com/thisisdarkstar/lead-toolkit/internal/enrich"
	"github.com/thisisdarkstar/lead-toolkit/internal/metrics"
	"github.com/thisisdarkstar/lead-toolkit/internal/probe"
)

// Scanner is the discovery half of the pipeline, split out so tests can
// feed canned candidates.
type Scanner interface {
	Scan(ctx context.Context, sld string) []string
}

// Prober answers liveness for one domain.
type Prober interface {
	Check(ctx context.Context, domain string) probe.Result
}

// Enricher scrapes page signals for one domain.
type Enricher interface {
	Page(ctx context.Context, domain string) enrich.Info
}

// Finder runs the full lead pipeline: discover candidates for an SLD,
// drop anything without DNS, enrich the survivors, classify by TLD.
type Finder struct {
	scanner  Scanner
	prober   Prober
	enricher Enricher
	log      *console.Logger
}

// NewFinder wires the production pipeline with default timeouts.
func NewFinder(log *console.Logger) *Finder {
	return &Finder{
		scanner:  discover.NewClient(log),
		prober:   probe.New(5 * time.Second),
		enricher: enrich.New(5 * time.Second),
		log:      log,
	}
}

// NewFinderWith builds a Finder from explicit parts, for tests and for
// callers tuning timeouts or rate limits.
func NewFinderWith(scanner Scanner, prober Prober, enricher Enricher, log *console.Logger) *Finder {
	return &Finder{scanner: scanner, prober: prober, enricher: enricher, log: log}
}

// Find processes a batch of source domains sequentially. A failure on one
// domain is recorded and does not stop the batch.
func (f *Finder) Find(ctx context.Context, domains []string) Result {
	res := Result{Data: make(Report, len(domains))}
	for i, d := range domains {
		f.log.Processf("Processing domain %d/%d: %s", i+1, len(domains), d)
		leads, err := f.FindOne(ctx, d)
		if err != nil {
			f.log.Errorf("Fatal error with %s: %v", d, err)
			if res.Errors == nil {
				res.Errors = make(map[string]string)
			}
			res.Errors[d] = err.Error()
			continue
		}
		res.Data[d] = leads
	}
	return res
}

// FindOne runs the pipeline for a single source domain.
func (f *Finder) FindOne(ctx context.Context, source string) ([]Lead, error) {
	cleaned, err := domain.Clean(source)
	if err != nil {
		return nil, fmt.Errorf("invalid domain %q: %w", source, err)
	}
	sld := domain.SLD(cleaned)
	f.log.Startf("Starting lead search for SLD: %q", sld)

	started := time.Now()
	defer func() {
		metrics.ScanDuration.Observe(time.Since(started).Seconds())
	}()

	candidates := f.scanner.Scan(ctx, sld)
	f.log.Debugf("Total unique domains found: %d", len(candidates))

	leads := []Lead{}
	for _, cand := range candidates {
		if err := ctx.Err(); err != nil {
			return leads, err
		}
		// The search sources match loosely (corporate suffixes stripped);
		// emitted leads must carry the exact SLD.
		if domain.SLD(cand) != sld || cand == cleaned {
			continue
		}

		pr := f.prober.Check(ctx, cand)
		if !pr.Active {
			f.log.Debugf("Skipping inactive %s (%s)", cand, pr.Detail)
			continue
		}
		f.log.Infof("Probing %s -- active [%s]", cand, pr.Detail)

		info := f.enricher.Page(ctx, cand)
		tier := domain.Classify(cand)
		metrics.LeadsEmitted.WithLabelValues(string(tier)).Inc()

		leads = append(leads, Lead{
			Domain:        cand,
			URL:           "http://" + cand,
			Category:      info.Category,
			CopyrightYear: info.CopyrightYear,
			Status:        "active",
			CompanyName:   "N/A",
			LeadType:      string(tier),
			Title:         info.Title,
		})
		f.log.Debugf("Discovered: %s (%s, %s)", cand, info.Category, info.CopyrightYear)
	}
	return leads, nil
}
