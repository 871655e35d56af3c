// Package dashboard is a minimal client for the Namekart dashboard API.
// One endpoint matters: getmysocialallocations, which lists the domains
// allocated to the signed-in social agent.
package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the production dashboard deployment.
	DefaultBaseURL = "https://nk-dashboard-1.grayriver-ffcf7337.westus.azurecontainerapps.io"

	// The dashboard rejects requests that don't look like its own
	// front-end, so origin, auth provider and a browser UA are fixed.
	originHeader = "https://app.namekart.com"
	userAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/141.0.0.0 Safari/537.36"
)

// Client calls the dashboard API with a bearer token.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

// NewClient returns a Client for the production dashboard.
func NewClient(token string) *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		Token:      token,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Allocation is one row of the allocations listing. Only the domain
// fields are modeled; the API returns plenty more we never read.
type Allocation struct {
	DomainName    string `json:"domainName"`
	PresentDomain *struct {
		Domain string `json:"domain"`
	} `json:"presentDomain"`
}

// AllocationsResponse is the paged envelope around allocations.
type AllocationsResponse struct {
	Content       []Allocation `json:"content"`
	TotalElements int          `json:"totalElements"`
	TotalPages    int          `json:"totalPages"`
}

// APIError is a non-2xx dashboard response.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("dashboard API returned %d: %s", e.StatusCode, e.Body)
}

// FetchAllocations pulls one page of allocations of the given size. The
// raw body is returned alongside the decoded response so callers can
// persist the exact API payload for later inspection.
func (c *Client) FetchAllocations(ctx context.Context, size int) (*AllocationsResponse, []byte, error) {
	if size <= 0 {
		size = 200
	}

	params := url.Values{}
	params.Set("page", "0")
	params.Set("size", strconv.Itoa(size))
	params.Set("sort", "{}")
	params.Set("filter", "{}")
	params.Set("search", "")

	endpoint := strings.TrimRight(c.BaseURL, "/") + "/getmysocialallocations?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("authorization", "Bearer "+c.Token)
	req.Header.Set("origin", originHeader)
	req.Header.Set("x-auth-provider", "GOOGLE")
	req.Header.Set("user-agent", userAgent)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("dashboard request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("reading dashboard response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, nil, &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var decoded AllocationsResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, nil, fmt.Errorf("decoding dashboard response: %w", err)
	}
	return &decoded, body, nil
}

// ExtractDomains collects the unique domain names from an allocations
// page: both the allocated domainName and any presentDomain it points at.
func ExtractDomains(resp *AllocationsResponse) []string {
	seen := make(map[string]struct{})
	for _, entry := range resp.Content {
		if entry.DomainName != "" {
			seen[entry.DomainName] = struct{}{}
		}
		if entry.PresentDomain != nil && entry.PresentDomain.Domain != "" {
			seen[entry.PresentDomain.Domain] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for d := range seen {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}
