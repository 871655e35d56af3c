// Package discover finds candidate domains sharing an SLD with a source
// domain. Three sources feed the scan: Google (usually blocked for
// automated clients, kept as best-effort), the DuckDuckGo HTML endpoint,
// and RapidDNS. Each source failure degrades to a warning; the scan
// result is the deduplicated union of whatever survived.
package discover

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"time"

	"golang.org/x/time/rate"

	"github.com/thisisdarkstar/lead-toolkit/internal/console"
	"github.com/thisisdarkstar/lead-toolkit/internal/domain"
)

// ErrBlocked is returned by a source that detected an anti-bot interstitial
// instead of results.
var ErrBlocked = errors.New("source blocked automated query")

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/141.0.0.0 Safari/537.36"

// Client queries the discovery sources. All requests share one rate
// limiter so a multi-TLD scan stays polite.
type Client struct {
	http      *http.Client
	limiter   *rate.Limiter
	log       *console.Logger
	userAgent string

	googleBase string
	ddgBase    string
	rapidBase  string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.http = c }
}

// WithRateLimit sets the request rate across all sources.
func WithRateLimit(r rate.Limit, burst int) Option {
	return func(cl *Client) { cl.limiter = rate.NewLimiter(r, burst) }
}

// WithBaseURLs points the sources at alternate endpoints, for tests.
func WithBaseURLs(google, ddg, rapid string) Option {
	return func(cl *Client) {
		cl.googleBase = google
		cl.ddgBase = ddg
		cl.rapidBase = rapid
	}
}

// NewClient returns a discovery client with conservative defaults:
// 20s fetches, 1 request/second across sources.
func NewClient(log *console.Logger, opts ...Option) *Client {
	cl := &Client{
		http:       &http.Client{Timeout: 20 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(1), 2),
		log:        log,
		userAgent:  defaultUserAgent,
		googleBase: "https://www.google.com",
		ddgBase:    "https://html.duckduckgo.com",
		rapidBase:  "https://rapiddns.io",
	}
	for _, opt := range opts {
		opt(cl)
	}
	return cl
}

// Scan runs the full discovery pass for one SLD: every TLD in
// domain.ScanTLDs against Google and DuckDuckGo, plus one RapidDNS query,
// returning the sorted deduplicated union of candidates.
func (c *Client) Scan(ctx context.Context, sld string) []string {
	seen := make(map[string]struct{})
	add := func(domains []string) {
		for _, d := range domains {
			seen[d] = struct{}{}
		}
	}

	googleDead := false
	for _, tld := range domain.ScanTLDs {
		if !googleDead {
			found, err := c.Google(ctx, sld, tld)
			switch {
			case errors.Is(err, ErrBlocked):
				c.log.Warnf("Google blocked our automated query. Using DuckDuckGo and RapidDNS results.")
				googleDead = true
			case err != nil:
				c.log.Warnf("Google TLD search (.%s) failed: %v", tld, err)
			default:
				c.log.Debugf("Google .%s: %v", tld, found)
				add(found)
			}
		}

		found, err := c.DuckDuckGo(ctx, sld, tld)
		if err != nil {
			c.log.Warnf("DuckDuckGo TLD search (.%s) failed: %v", tld, err)
		} else {
			c.log.Debugf("DuckDuckGo .%s: %v", tld, found)
			add(found)
		}
	}

	found, err := c.RapidDNS(ctx, sld)
	if err != nil {
		c.log.Warnf("RapidDNS lookup failed: %v", err)
	} else {
		c.log.Debugf("RapidDNS found: %v", found)
		add(found)
	}

	out := make([]string, 0, len(seen))
	for d := range seen {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// candidate validates a discovered URL or host against the scanned SLD.
// When relaxed, a trailing corporate qualifier on the hit's SLD is ignored
// (search engines surface apexgroup.in for "apex"). The original .com is
// never a candidate.
func candidate(raw, sld string, relaxed bool) (string, bool) {
	reg := domain.Registrable(raw)
	if reg == "" {
		return "", false
	}
	hitSLD := domain.SLD(reg)
	if relaxed {
		hitSLD = domain.StripCorporateSuffix(hitSLD)
	}
	if hitSLD != sld {
		return "", false
	}
	if reg == sld+".com" {
		return "", false
	}
	return reg, true
}

func (c *Client) get(ctx context.Context, url string) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	return c.http.Do(req)
}
