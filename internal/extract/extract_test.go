package extract

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestDomainsFromCSV(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		csv     string
		want    []string
		wantErr bool
	}{
		{
			name: "basic extraction",
			csv:  "id,domain,price\n1,beta.com,10\n2,alpha.com,20\n",
			want: []string{"alpha.com", "beta.com"},
		},
		{
			name: "dedupes and skips blanks",
			csv:  "domain\napex.com\n\napex.com\n",
			want: []string{"apex.com"},
		},
		{
			name: "column position irrelevant",
			csv:  "price,Domain\n10,apex.com\n",
			want: []string{"apex.com"},
		},
		{
			name: "short rows tolerated",
			csv:  "id,domain\n1,apex.com\n2\n",
			want: []string{"apex.com"},
		},
		{
			name:    "missing column",
			csv:     "id,hostname\n1,apex.com\n",
			wantErr: true,
		},
		{
			name:    "empty input",
			csv:     "",
			wantErr: true,
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := DomainsFromCSV(strings.NewReader(tc.csv))
			if tc.wantErr {
				if err == nil {
					t.Fatalf("want error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("DomainsFromCSV: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDomainsFromHTML(t *testing.T) {
	t.Parallel()
	html := `<html><body>
		<div class="MuiStack-root css-abc">
			<p class="MuiTypography-root MuiTypography-body2">zeta.ai</p>
			<p class="MuiTypography-root MuiTypography-body2">alpha.com</p>
			<p class="MuiTypography-root MuiTypography-body2">not a domain</p>
			<p class="MuiTypography-body1">ignored.com</p>
		</div>
		<div class="other"><p class="MuiTypography-body2">outside.com</p></div>
	</body></html>`

	got, err := DomainsFromHTML(strings.NewReader(html))
	if err != nil {
		t.Fatalf("DomainsFromHTML: %v", err)
	}
	want := []string{"alpha.com", "zeta.ai"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseDomainList(t *testing.T) {
	t.Parallel()
	got := ParseDomainList("Domain\napex.com\n\n  beta.com  \n")
	want := []string{"apex.com", "beta.com"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSaveAndLoadDomains(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "domains.txt")
	if err := SaveDomains([]string{"a.com", "b.com"}, path); err != nil {
		t.Fatalf("SaveDomains: %v", err)
	}
	got, err := LoadDomainList(path)
	if err != nil {
		t.Fatalf("LoadDomainList: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"a.com", "b.com"}) {
		t.Errorf("got %v", got)
	}
}

func TestLoadResults(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	bare := filepath.Join(dir, "bare.json")
	os.WriteFile(bare, []byte(`{"apex.com":[{"domain":"apex.in","lead_type":"Medium"}]}`), 0o644)
	data, err := LoadResults(bare)
	if err != nil {
		t.Fatalf("LoadResults bare: %v", err)
	}
	if len(data["apex.com"]) != 1 {
		t.Errorf("bare data = %v", data)
	}

	envelope := filepath.Join(dir, "envelope.json")
	os.WriteFile(envelope, []byte(`{"data":{"apex.com":[{"domain":"apex.in"}]},"errors":{"x.com":"boom"}}`), 0o644)
	data, err = LoadResults(envelope)
	if err != nil {
		t.Fatalf("LoadResults envelope: %v", err)
	}
	if len(data["apex.com"]) != 1 {
		t.Errorf("envelope data = %v", data)
	}
}

func TestInspectorDomain(t *testing.T) {
	color.NoColor = true

	data := ResultsFile{
		"apex.com":  {{"domain": "apex.in", "lead_type": "Medium"}},
		"empty.com": {},
	}

	var buf bytes.Buffer
	in := NewInspector(&buf)

	in.Domain(data, "apex.com", "")
	out := buf.String()
	if !strings.Contains(out, "Domain: apex.com") || !strings.Contains(out, "lead_type: Medium") {
		t.Errorf("full output missing fields:\n%s", out)
	}

	buf.Reset()
	in.Domain(data, "apex.com", "lead_type")
	if !strings.Contains(buf.String(), "lead_type: Medium") {
		t.Errorf("key output = %q", buf.String())
	}

	buf.Reset()
	in.Domain(data, "empty.com", "")
	if !strings.Contains(buf.String(), "empty list") {
		t.Errorf("empty list output = %q", buf.String())
	}

	buf.Reset()
	in.Domain(data, "missing.com", "")
	if !strings.Contains(buf.String(), "No entries found") {
		t.Errorf("missing output = %q", buf.String())
	}

	buf.Reset()
	in.Domain(data, "apex.com", "nope")
	if !strings.Contains(buf.String(), "No value found") {
		t.Errorf("missing key output = %q", buf.String())
	}
}
