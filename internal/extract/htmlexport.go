package extract

import (
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var domainPatternRe = regexp.MustCompile(`^(?:[a-zA-Z0-9-]+\.)+[a-zA-Z]{2,}`)

// DomainsFromHTML extracts domain names from a saved dashboard page. The
// dashboard renders its table with MUI, so domains live in
// p.MuiTypography-body2 cells under div.MuiStack-root containers.
func DomainsFromHTML(r io.Reader) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	doc.Find(`div[class*="MuiStack-root"] p[class*="MuiTypography-body2"]`).Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if domainPatternRe.MatchString(text) {
			seen[text] = struct{}{}
		}
	})

	return sortedKeys(seen), nil
}

// DomainsFromHTMLFile is DomainsFromHTML over a file path.
func DomainsFromHTMLFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DomainsFromHTML(f)
}
