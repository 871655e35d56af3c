package discover

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/thisisdarkstar/lead-toolkit/internal/metrics"
)

// DuckDuckGo searches `"<sld>" site:.<tld>` against the DuckDuckGo HTML
// endpoint. This is the primary search source; it tolerates automated
// clients far better than Google.
func (c *Client) DuckDuckGo(ctx context.Context, sld, tld string) ([]string, error) {
	query := fmt.Sprintf(`"%s" site:.%s`, sld, tld)
	searchURL := c.ddgBase + "/html/?q=" + url.QueryEscape(query)

	resp, err := c.get(ctx, searchURL)
	if err != nil {
		metrics.SearchQueries.WithLabelValues("duckduckgo", "error").Inc()
		return nil, err
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		metrics.SearchQueries.WithLabelValues("duckduckgo", "error").Inc()
		return nil, err
	}

	seen := make(map[string]struct{})
	doc.Find("a.result__a, a.result__url").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		target := resolveDDGRedirect(href)
		if target == "" {
			return
		}
		if d, ok := candidate(target, sld, true); ok {
			seen[d] = struct{}{}
		}
	})

	out := make([]string, 0, len(seen))
	for d := range seen {
		out = append(out, d)
	}
	metrics.SearchQueries.WithLabelValues("duckduckgo", "ok").Inc()
	metrics.CandidatesFound.WithLabelValues("duckduckgo").Add(float64(len(out)))
	return out, nil
}

// resolveDDGRedirect unwraps the //duckduckgo.com/l/?uddg=<encoded> redirect
// links the HTML endpoint wraps results in. Direct links pass through.
func resolveDDGRedirect(href string) string {
	if href == "" {
		return ""
	}
	if strings.Contains(href, "duckduckgo.com/l/") {
		if u, err := url.Parse(href); err == nil {
			if uddg := u.Query().Get("uddg"); uddg != "" {
				if target, err := url.QueryUnescape(uddg); err == nil {
					return target
				}
				return uddg
			}
		}
		return ""
	}
	return href
}
