package discover

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/thisisdarkstar/lead-toolkit/internal/metrics"
)

// RapidDNS queries rapiddns.io's same-name listing, which returns every
// known registration of an SLD across TLDs in one page. Unlike the search
// engines this source is matched strictly: no corporate-suffix stripping.
func (c *Client) RapidDNS(ctx context.Context, sld string) ([]string, error) {
	resp, err := c.get(ctx, c.rapidBase+"/same/"+sld+"?full=1")
	if err != nil {
		metrics.SearchQueries.WithLabelValues("rapiddns", "error").Inc()
		return nil, err
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		metrics.SearchQueries.WithLabelValues("rapiddns", "error").Inc()
		return nil, err
	}

	seen := make(map[string]struct{})
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text == "" || !strings.Contains(text, ".") {
			return
		}
		if d, ok := candidate(text, sld, false); ok {
			seen[d] = struct{}{}
		}
	})

	out := make([]string, 0, len(seen))
	for d := range seen {
		out = append(out, d)
	}
	metrics.SearchQueries.WithLabelValues("rapiddns", "ok").Inc()
	metrics.CandidatesFound.WithLabelValues("rapiddns").Add(float64(len(out)))
	return out, nil
}
