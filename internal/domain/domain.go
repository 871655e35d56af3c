package domain

import (
	"bufio"
	"fmt"
	"net/url"
	"os"
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/net/publicsuffix"
)

func PromptForDomain() string {
	reader := bufio.NewReader(os.Stdin)
	fmt.Print("Enter domain name (e.g., example.com): ")
	domain, _ := reader.ReadString('\n')
	return strings.TrimSpace(domain)
}

// Clean normalizes user input (URLs, protocol fragments, ports, trailing
// dots) down to a bare registrable hostname in punycode form.
func Clean(input string) (string, error) {
	// Remove whitespace
	domain := strings.TrimSpace(input)

	// Handle URL format
	if strings.Contains(domain, "://") {
		u, err := url.Parse(domain)
		if err != nil {
			return "", fmt.Errorf("invalid URL format: %v", err)
		}
		domain = u.Hostname()
	} else {
		// Remove protocol without //
		if strings.HasPrefix(domain, "http:") {
			domain = domain[5:]
		} else if strings.HasPrefix(domain, "https:") {
			domain = domain[6:]
		}

		// Remove paths and query parameters
		domain = strings.Split(domain, "/")[0]
		domain = strings.Split(domain, "?")[0]
		domain = strings.Split(domain, "#")[0]
	}

	// Remove trailing dots
	domain = strings.TrimRight(domain, ".")

	// Basic validation
	if domain == "" || !strings.Contains(domain, ".") {
		return "", fmt.Errorf("invalid domain format")
	}

	// Remove port numbers
	domain = strings.Split(domain, ":")[0]

	domain = strings.ToLower(domain)

	// Convert to punycode if needed
	punycode, err := idna.ToASCII(domain)
	if err != nil {
		return domain, nil // Fall back to original if punycode fails
	}

	return punycode, nil
}

// SLD extracts the second-level label from a domain using the public suffix
// list, e.g. apex.com -> "apex", shop.apex.co.uk -> "apex".
func SLD(domain string) string {
	domain = strings.ToLower(strings.TrimSuffix(strings.TrimSpace(domain), "."))
	if domain == "" {
		return ""
	}
	etld1, err := publicsuffix.EffectiveTLDPlusOne(domain)
	if err != nil {
		// Not a registrable domain (bare TLD, IP, garbage). Fall back to
		// the first label.
		return strings.Split(domain, ".")[0]
	}
	return strings.Split(etld1, ".")[0]
}

// Suffix returns the public suffix of a domain ("com", "co.uk"), or the text
// after the first dot when the suffix list has no answer.
func Suffix(domain string) string {
	domain = strings.ToLower(strings.TrimSuffix(strings.TrimSpace(domain), "."))
	if domain == "" {
		return ""
	}
	suffix, _ := publicsuffix.PublicSuffix(domain)
	return suffix
}

// SLDFromURL extracts the second-level label from a full URL or bare host.
func SLDFromURL(raw string) string {
	host := raw
	if strings.Contains(raw, "://") {
		if u, err := url.Parse(raw); err == nil && u.Hostname() != "" {
			host = u.Hostname()
		}
	}
	host = strings.Split(host, "/")[0]
	return SLD(host)
}

// Registrable returns "sld.suffix" for a URL or host, or "" when no
// registrable domain can be derived.
func Registrable(raw string) string {
	host := raw
	if strings.Contains(raw, "://") {
		if u, err := url.Parse(raw); err == nil && u.Hostname() != "" {
			host = u.Hostname()
		}
	}
	host = strings.ToLower(strings.TrimSuffix(strings.Split(host, "/")[0], "."))
	if host == "" {
		return ""
	}
	etld1, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return ""
	}
	return etld1
}
