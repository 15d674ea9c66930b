package jobs

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type exportEnvelope struct {
	Jobs     []Job          `json:"jobs"`
	Metadata exportMetadata `json:"metadata"`
}

type exportMetadata struct {
	GeneratedAt    string `json:"generated_at"`
	TotalJobsFound int    `json:"total_jobs_found"`
}

// Export writes the jobs to a timestamped file in the requested format
// ("json" or "csv") and returns the filename.
func Export(jobs []Job, format string) (string, error) {
	if len(jobs) == 0 {
		return "", fmt.Errorf("no jobs to export")
	}

	timestamp := time.Now().Format("20060102_150405")

	switch format {
	case "json":
		filename := fmt.Sprintf("job_results_%s.json", timestamp)
		envelope := exportEnvelope{
			Jobs: jobs,
			Metadata: exportMetadata{
				GeneratedAt:    time.Now().Format(time.RFC3339),
				TotalJobsFound: len(jobs),
			},
		}
		data, err := json.MarshalIndent(envelope, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal jobs: %w", err)
		}
		if err := os.WriteFile(filename, data, 0644); err != nil {
			return "", fmt.Errorf("failed to write %s: %w", filename, err)
		}
		return filename, nil

	case "csv":
		filename := fmt.Sprintf("job_results_%s.csv", timestamp)
		f, err := os.Create(filename)
		if err != nil {
			return "", fmt.Errorf("failed to create %s: %w", filename, err)
		}
		defer f.Close()

		w := csv.NewWriter(f)
		if err := w.Write([]string{"title", "company", "location", "url", "posted_date", "source_url", "extracted_at"}); err != nil {
			return "", err
		}
		for _, j := range jobs {
			if err := w.Write([]string{j.Title, j.Company, j.Location, j.URL, j.PostedDate, j.SourceURL, j.ExtractedAt}); err != nil {
				return "", err
			}
		}
		w.Flush()
		return filename, w.Error()

	default:
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
}
