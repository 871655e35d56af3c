package domain

import "testing"

func TestClean(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"bare domain", "example.com", "example.com", false},
		{"full URL", "https://example.com/path?q=1", "example.com", false},
		{"protocol no slashes", "https:example.com/path", "example.com", false},
		{"trailing dot", "example.com.", "example.com", false},
		{"port", "example.com:8080", "example.com", false},
		{"uppercase", "EXAMPLE.COM", "example.com", false},
		{"whitespace", "  example.com  ", "example.com", false},
		{"unicode", "bücher.de", "xn--bcher-kva.de", false},
		{"empty", "", "", true},
		{"no dot", "localhost", "", true},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := Clean(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Clean(%q) = %q, want error", tc.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Clean(%q) error: %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("Clean(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestSLD(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  string
	}{
		{"apex.com", "apex"},
		{"apex.co.uk", "apex"},
		{"shop.apex.com", "apex"},
		{"APEX.IN", "apex"},
		{"apex.com.", "apex"},
		{"com", "com"},
	}
	for _, tc := range tests {
		if got := SLD(tc.input); got != tc.want {
			t.Errorf("SLD(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestSLDFromURL(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  string
	}{
		{"https://www.apex.in/about", "apex"},
		{"http://apex.net", "apex"},
		{"apex.world/contact", "apex"},
	}
	for _, tc := range tests {
		if got := SLDFromURL(tc.input); got != tc.want {
			t.Errorf("SLDFromURL(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestRegistrable(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  string
	}{
		{"https://www.apex.in/about", "apex.in"},
		{"apex.co.uk", "apex.co.uk"},
		{"com", ""},
	}
	for _, tc := range tests {
		if got := Registrable(tc.input); got != tc.want {
			t.Errorf("Registrable(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()
	tests := []struct {
		domain string
		want   Tier
	}{
		{"apex.world", TierHigh},
		{"apex.group", TierHigh},
		{"apex.online", TierHigh},
		{"apex.in", TierMedium},
		{"apex.co", TierMedium},
		{"apex.ai", TierMedium},
		{"apex.org", TierLow},
		{"apex.app", TierLow},
	}
	for _, tc := range tests {
		if got := Classify(tc.domain); got != tc.want {
			t.Errorf("Classify(%q) = %q, want %q", tc.domain, got, tc.want)
		}
	}
}

func TestStripCorporateSuffix(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  string
	}{
		{"apexgroup", "apex"},
		{"apextech", "apex"},
		{"apexsolutions", "apex"},
		{"apex", "apex"},
		{"groupon", "groupon"},
	}
	for _, tc := range tests {
		if got := StripCorporateSuffix(tc.input); got != tc.want {
			t.Errorf("StripCorporateSuffix(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
