// Package extract pulls domain lists out of the flat files the dashboard
// hands around: CSV exports, rendered HTML tables, and result JSON.
package extract

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// DomainsFromCSV reads a CSV with a header row and returns the unique,
// sorted values of the "domain" column. The column is matched by name so
// exports with reordered columns keep working.
func DomainsFromCSV(r io.Reader) ([]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty CSV input")
	}
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	col := -1
	for i, name := range header {
		if strings.EqualFold(strings.TrimSpace(name), "domain") {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("no %q column in CSV header %v", "domain", header)
	}

	seen := make(map[string]struct{})
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV row: %w", err)
		}
		if col >= len(record) {
			continue
		}
		d := strings.TrimSpace(record[col])
		if d != "" {
			seen[d] = struct{}{}
		}
	}

	return sortedKeys(seen), nil
}

// DomainsFromCSVFile is DomainsFromCSV over a file path.
func DomainsFromCSVFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DomainsFromCSV(f)
}

// SaveDomains writes domains one per line.
func SaveDomains(domains []string, path string) error {
	var b strings.Builder
	for _, d := range domains {
		b.WriteString(d)
		b.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}

// LoadDomainList reads a one-domain-per-line file, skipping blanks and a
// leading "Domain" header if the file came from a spreadsheet export.
func LoadDomainList(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseDomainList(string(b)), nil
}

// ParseDomainList splits newline-separated text into trimmed domain lines.
func ParseDomainList(text string) []string {
	var domains []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.EqualFold(line, "domain") {
			continue
		}
		domains = append(domains, line)
	}
	return domains
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
