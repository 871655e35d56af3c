package discover

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/thisisdarkstar/lead-toolkit/internal/metrics"
)

// Markers Google serves instead of results when it decides the client is a
// bot. Seeing any of them means the whole scan should stop asking.
var googleBlockMarkers = []string{
	"enablejs",
	"Please click",
	"detected unusual traffic",
}

// Google searches `"<sld>" site:.<tld>` on Google's HTML endpoint.
// Automated queries are blocked more often than not; callers must treat
// ErrBlocked as an expected outcome, not a failure.
func (c *Client) Google(ctx context.Context, sld, tld string) ([]string, error) {
	query := fmt.Sprintf(`"%s" site:.%s`, sld, tld)
	searchURL := c.googleBase + "/search?q=" + url.QueryEscape(query)

	resp, err := c.get(ctx, searchURL)
	if err != nil {
		metrics.SearchQueries.WithLabelValues("google", "error").Inc()
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.SearchQueries.WithLabelValues("google", "error").Inc()
		return nil, err
	}
	html := string(body)
	c.log.Debugf("GOOGLE HTML: %.500s", html)

	for _, marker := range googleBlockMarkers {
		if strings.Contains(html, marker) {
			metrics.SearchQueries.WithLabelValues("google", "blocked").Inc()
			return nil, ErrBlocked
		}
	}

	domains, err := parseGoogleResults(html, sld)
	if err != nil {
		metrics.SearchQueries.WithLabelValues("google", "error").Inc()
		return nil, err
	}
	metrics.SearchQueries.WithLabelValues("google", "ok").Inc()
	metrics.CandidatesFound.WithLabelValues("google").Add(float64(len(domains)))
	return domains, nil
}

// parseGoogleResults pulls result links out of the classic /url?q= redirect
// anchors Google uses on its no-JS results page.
func parseGoogleResults(html, sld string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if !strings.HasPrefix(href, "/url?q=") {
			return
		}
		target := strings.SplitN(strings.TrimPrefix(href, "/url?q="), "&", 2)[0]
		if unescaped, err := url.QueryUnescape(target); err == nil {
			target = unescaped
		}
		if d, ok := candidate(target, sld, true); ok {
			seen[d] = struct{}{}
		}
	})

	out := make([]string, 0, len(seen))
	for d := range seen {
		out = append(out, d)
	}
	return out, nil
}
