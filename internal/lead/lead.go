package lead

// Lead is one discovered, live domain sharing the source domain's SLD.
// JSON field names match the result files the dashboard tooling already
// consumes, including the legacy space in "copyright year".
type Lead struct {
	Domain        string `json:"domain"`
	URL           string `json:"url"`
	Category      string `json:"category"`
	CopyrightYear string `json:"copyright year"`
	Status        string `json:"status"`
	CompanyName   string `json:"company_name"`
	LeadType      string `json:"lead_type"`
	Title         string `json:"title,omitempty"`
}

// Report maps each source domain to the leads found for it.
type Report map[string][]Lead

// Result bundles a report with per-domain failures. Errors is nil when
// every domain processed cleanly.
type Result struct {
	Data   Report            `json:"data"`
	Errors map[string]string `json:"errors,omitempty"`
}
