// Append-only outcome store. One complete CSV row per company, flushed per
// write, so a crash mid-run costs at most the in-flight company.
package store

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"

	mapset "github.com/deckarep/golang-set/v2"

	"go-careerscout-automation/internal/discovery"
)

var outputHeader = []string{"company", "website", "career_url", "timestamp"}

const timestampLayout = "2006-01-02 15:04:05"

// Recorder appends discovery outcomes to a CSV file, writing the header only
// when it creates the file. Existing rows are never rewritten.
type Recorder struct {
	path string
}

func NewRecorder(path string) *Recorder {
	return &Recorder{path: path}
}

// Record appends one outcome row.
func (r *Recorder) Record(o discovery.Outcome) error {
	_, statErr := os.Stat(r.path)
	exists := statErr == nil

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("could not open output csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if !exists {
		if err := w.Write(outputHeader); err != nil {
			return fmt.Errorf("could not write header: %w", err)
		}
	}
	row := []string{
		o.Company.Name,
		o.Company.Website,
		o.FoundURL,
		o.Timestamp.Format(timestampLayout),
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("could not write row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("could not flush row: %w", err)
	}

	log.Printf("💾 Saved result for %s", o.Company.Name)
	return nil
}

// LoadProcessed reads the output store once and returns the names of
// companies that already have a non-empty career URL. Only those are
// skipped on a rerun; an empty prior result stays reprocessable.
func LoadProcessed(path string) (mapset.Set[string], error) {
	processed := mapset.NewSet[string]()

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return processed, nil
		}
		return nil, fmt.Errorf("could not open output csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("could not read output csv: %w", err)
	}

	for i, row := range records {
		if i == 0 || len(row) < 3 {
			continue
		}
		if row[2] != "" {
			processed.Add(row[0])
		}
	}
	return processed, nil
}
