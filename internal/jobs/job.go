// Package jobs turns raw agent output into filtered job listings.
package jobs

type Job struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`
	Location    string `json:"location"`
	URL         string `json:"url"`
	PostedDate  string `json:"posted_date,omitempty"`
	SourceURL   string `json:"source_url"`
	ExtractedAt string `json:"extracted_at"`
}

// BoardResult is one agent run against one job board.
type BoardResult struct {
	Company   string
	SourceURL string
	Raw       string
}
