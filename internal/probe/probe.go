// Package probe answers one question: does a candidate domain show any sign
// of life? DNS resolution first, then a cheap HTTP HEAD. A domain that
// resolves but refuses HTTP still counts as active — parked and mail-only
// hosts are valid leads.
package probe

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/miekg/dns"

	"github.com/thisisdarkstar/lead-toolkit/internal/metrics"
)

// Result describes the liveness of a single domain.
type Result struct {
	Domain     string   `json:"domain"`
	Active     bool     `json:"active"`
	Detail     string   `json:"detail"`
	StatusCode int      `json:"status_code,omitempty"`
	Addresses  []string `json:"addresses,omitempty"`
}

// Prober checks DNS and HTTP liveness of domains.
type Prober struct {
	client    *http.Client
	dnsServer string
	timeout   time.Duration
}

// Option configures a Prober.
type Option func(*Prober)

// WithDNSServer overrides the resolver address ("host:port").
func WithDNSServer(addr string) Option {
	return func(p *Prober) { p.dnsServer = addr }
}

// WithHTTPClient overrides the HTTP client, for tests.
func WithHTTPClient(c *http.Client) Option {
	return func(p *Prober) { p.client = c }
}

// New returns a Prober with the given per-probe timeout.
func New(timeout time.Duration, opts ...Option) *Prober {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	p := &Prober{
		timeout:   timeout,
		dnsServer: systemDNSServer() + ":53",
		client: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("too many redirects")
				}
				return nil
			},
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Check resolves the domain and, when it resolves, issues an HTTP HEAD.
func (p *Prober) Check(ctx context.Context, domain string) Result {
	res := Result{Domain: domain}

	addrs, err := p.lookup(ctx, domain)
	if err != nil || len(addrs) == 0 {
		res.Detail = "No DNS"
		metrics.ProbesTotal.WithLabelValues("inactive").Inc()
		return res
	}
	res.Active = true
	res.Addresses = addrs

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, "http://"+domain, nil)
	if err != nil {
		res.Detail = "No HTTP"
		metrics.ProbesTotal.WithLabelValues("active").Inc()
		return res
	}
	resp, err := p.client.Do(req)
	if err != nil {
		res.Detail = "No HTTP"
		metrics.ProbesTotal.WithLabelValues("active").Inc()
		return res
	}
	resp.Body.Close()

	res.StatusCode = resp.StatusCode
	res.Detail = fmt.Sprintf("HTTP %d", resp.StatusCode)
	metrics.ProbesTotal.WithLabelValues("active").Inc()
	return res
}

// lookup queries A then AAAA records directly against the configured
// resolver. Direct queries avoid negative caching surprises in the libc
// resolver and let the timeout actually apply.
func (p *Prober) lookup(ctx context.Context, domain string) ([]string, error) {
	c := &dns.Client{Timeout: p.timeout}
	var addrs []string

	for _, qtype := range []uint16{dns.TypeA, dns.TypeAAAA} {
		m := new(dns.Msg)
		m.SetQuestion(dns.Fqdn(domain), qtype)
		r, _, err := c.ExchangeContext(ctx, m, p.dnsServer)
		if err != nil {
			if qtype == dns.TypeA {
				// Fall back to the net resolver before declaring the
				// domain dead; some networks block direct port 53.
				ips, lerr := net.DefaultResolver.LookupIPAddr(ctx, domain)
				if lerr != nil {
					return nil, lerr
				}
				for _, ip := range ips {
					addrs = append(addrs, ip.IP.String())
				}
				return addrs, nil
			}
			continue
		}
		for _, ans := range r.Answer {
			switch v := ans.(type) {
			case *dns.A:
				addrs = append(addrs, v.A.String())
			case *dns.AAAA:
				addrs = append(addrs, v.AAAA.String())
			}
		}
	}

	if len(addrs) == 0 {
		return nil, fmt.Errorf("no address records for %s", domain)
	}
	return addrs, nil
}

// systemDNSServer reads the first resolver from /etc/resolv.conf, falling
// back to a well-known public resolver.
func systemDNSServer() string {
	config, err := dns.ClientConfigFromFile("/etc/resolv.conf")
	if err == nil && len(config.Servers) > 0 {
		return config.Servers[0]
	}
	return "8.8.8.8"
}

// DetailIsHTTP reports whether a probe detail carries an HTTP status.
func DetailIsHTTP(detail string) bool {
	return strings.HasPrefix(detail, "HTTP ")
}
