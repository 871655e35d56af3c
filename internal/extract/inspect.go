package extract

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/fatih/color"
)

// ResultsFile is a parsed lead-results JSON: source domain → entries,
// entry field order not guaranteed.
type ResultsFile map[string][]map[string]interface{}

// LoadResults parses a results JSON file. Both the bare source→leads map
// and the {"data": ..., "errors": ...} envelope are accepted.
func LoadResults(path string) (ResultsFile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Data ResultsFile `json:"data"`
	}
	if err := json.Unmarshal(b, &envelope); err == nil && len(envelope.Data) > 0 {
		return envelope.Data, nil
	}

	var data ResultsFile
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("parsing results JSON: %w", err)
	}
	return data, nil
}

// Inspector prints colored per-domain views of a results file.
type Inspector struct {
	out io.Writer
}

// NewInspector writes to w (usually stdout).
func NewInspector(w io.Writer) *Inspector {
	return &Inspector{out: w}
}

// Domain prints every entry for one domain, or just the values of key when
// key is non-empty. Missing domains and empty lead lists are reported
// distinctly — "never scanned" and "scanned, nothing found" matter to the
// person reading.
func (in *Inspector) Domain(data ResultsFile, domain, key string) {
	cyan := color.New(color.FgCyan)
	yellow := color.New(color.FgYellow)
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	magenta := color.New(color.FgMagenta)

	entries, ok := data[domain]
	if !ok {
		red.Fprintf(in.out, "No entries found for domain %q\n", domain)
		return
	}
	if len(entries) == 0 {
		magenta.Fprintf(in.out, "No leads found for domain %q (empty list)\n", domain)
		return
	}

	if key != "" {
		found := false
		for _, entry := range entries {
			if v, ok := entry[key]; ok {
				cyan.Fprintf(in.out, "%s", domain)
				fmt.Fprint(in.out, " | ")
				yellow.Fprintf(in.out, "%s", key)
				fmt.Fprint(in.out, ": ")
				green.Fprintf(in.out, "%v\n", v)
				found = true
			}
		}
		if !found {
			red.Fprintf(in.out, "No value found for key %q in domain %q\n", key, domain)
		}
		return
	}

	cyan.Fprintf(in.out, "Domain: %s\n", domain)
	for i, entry := range entries {
		cyan.Fprintf(in.out, "Entry #%d:\n", i+1)
		for _, k := range sortedEntryKeys(entry) {
			yellow.Fprintf(in.out, "%s", k)
			fmt.Fprint(in.out, ": ")
			green.Fprintf(in.out, "%v\n", entry[k])
		}
		fmt.Fprintln(in.out)
	}
}

// Domains runs Domain over a list.
func (in *Inspector) Domains(data ResultsFile, domains []string, key string) {
	for _, d := range domains {
		in.Domain(data, d, key)
	}
}

func sortedEntryKeys(entry map[string]interface{}) []string {
	keys := make([]string, 0, len(entry))
	for k := range entry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
