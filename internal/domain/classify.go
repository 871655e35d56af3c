package domain

import (
	"regexp"
	"strings"
)

// Tier is the sales-relevance bucket assigned to a discovered domain.
type Tier string

const (
	TierHigh   Tier = "High"
	TierMedium Tier = "Medium"
	TierLow    Tier = "Low"
)

var (
	highTLDs   = []string{"one", "world", "group", "online", "global"}
	mediumTLDs = []string{"in", "net", "co", "ai", "biz"}

	// Trailing corporate qualifiers that registrants bolt onto a brand name
	// when the clean SLD is taken (apexgroup.in for apex.com).
	corporateSuffixRe = regexp.MustCompile(
		`(group|tech|solutions|ltd|llc|inc|company|corp|enterprises|industries|systems|technologies|international|global|services)$`)
)

// Classify buckets a domain by how relevant its TLD tends to be for
// brand-protection outreach.
func Classify(domain string) Tier {
	suffix := Suffix(domain)
	for _, t := range highTLDs {
		if strings.HasSuffix(suffix, t) {
			return TierHigh
		}
	}
	for _, t := range mediumTLDs {
		if strings.HasSuffix(suffix, t) {
			return TierMedium
		}
	}
	return TierLow
}

// StripCorporateSuffix removes one trailing corporate qualifier from an SLD
// so "apexgroup" still matches a search for "apex".
func StripCorporateSuffix(sld string) string {
	return corporateSuffixRe.ReplaceAllString(sld, "")
}

// ScanTLDs is the fixed set of alternate TLDs re-probed for every SLD.
var ScanTLDs = []string{"co", "in", "net", "group", "online", "world", "ai", "biz", "org", "app"}
