// Package enrich pulls lightweight signals from a domain's landing page:
// a coarse business category, the copyright year, and the page title.
// Everything here is best-effort; an unreachable or hostile page yields the
// zero-signal defaults rather than an error worth propagating.
package enrich

import (
	"context"
	"crypto/tls"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	// CategoryUnknown is returned when no keyword matches page content.
	CategoryUnknown = "Unknown"
	// YearUnknown is returned when no copyright year is found.
	YearUnknown = "N/A"

	maxBodyBytes = 2 << 20 // pages beyond 2 MiB carry no extra signal
)

// categoryKeywords is scanned in order; the first hit wins.
var categoryKeywords = []string{
	"software",
	"finance",
	"wholesale",
	"agency",
	"consultancy",
	"technology",
	"marketing",
}

var copyrightRe = regexp.MustCompile(`(?:©|&copy;|\(c\))\s*(\d{4})`)

// Info is the set of signals scraped from a landing page.
type Info struct {
	Category      string `json:"category"`
	CopyrightYear string `json:"copyright_year"`
	Title         string `json:"title,omitempty"`
}

// Scraper fetches landing pages and extracts Info.
type Scraper struct {
	client    *http.Client
	userAgent string
}

// New returns a Scraper with the given per-fetch timeout. TLS errors are
// tolerated: a lead behind a broken certificate is still a lead.
func New(timeout time.Duration) *Scraper {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	tr := &http.Transport{
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: true,
		},
	}
	return &Scraper{
		client: &http.Client{
			Transport: tr,
			Timeout:   timeout,
		},
		userAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/141.0.0.0 Safari/537.36",
	}
}

// NewWithClient returns a Scraper using the supplied client, for tests.
func NewWithClient(c *http.Client) *Scraper {
	return &Scraper{client: c, userAgent: "lead-toolkit"}
}

// Page fetches http://<domain> and extracts category, copyright year and
// title. Fetch or parse failures return the zero-signal Info.
func (s *Scraper) Page(ctx context.Context, domain string) Info {
	info := Info{Category: CategoryUnknown, CopyrightYear: YearUnknown}

	body, err := s.fetch(ctx, "http://"+domain)
	if err != nil {
		return info
	}
	return Extract(body)
}

func (s *Scraper) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Extract runs the category/copyright/title heuristics over raw HTML.
func Extract(html string) Info {
	info := Info{Category: CategoryUnknown, CopyrightYear: YearUnknown}

	lower := strings.ToLower(html)
	for _, kw := range categoryKeywords {
		if strings.Contains(lower, kw) {
			info.Category = strings.ToUpper(kw[:1]) + kw[1:]
			break
		}
	}

	if m := copyrightRe.FindStringSubmatch(lower); m != nil {
		info.CopyrightYear = m[1]
	}

	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(html)); err == nil {
		info.Title = strings.TrimSpace(doc.Find("title").First().Text())
	}

	return info
}
