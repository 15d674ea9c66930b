package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"go-careerscout-automation/internal/discovery"
)

// ReadCompanies loads the input CSV. Both header conventions are accepted:
// company|name for the company and website|url for the homepage. Websites
// without a scheme are coerced to https://.
func ReadCompanies(path string) ([]discovery.Company, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open input csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("could not read input csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	nameIdx, siteIdx := -1, -1
	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(stripBOM(col))) {
		case "company", "name":
			if nameIdx == -1 {
				nameIdx = i
			}
		case "website", "url":
			if siteIdx == -1 {
				siteIdx = i
			}
		}
	}
	if nameIdx == -1 || siteIdx == -1 {
		return nil, fmt.Errorf("input csv needs a company/name and a website/url column, got header %v", header)
	}

	var companies []discovery.Company
	for _, row := range records[1:] {
		if nameIdx >= len(row) || siteIdx >= len(row) {
			continue
		}
		name := strings.TrimSpace(row[nameIdx])
		site := strings.TrimSpace(row[siteIdx])
		if name == "" || site == "" {
			continue
		}
		if !strings.HasPrefix(site, "http://") && !strings.HasPrefix(site, "https://") {
			site = "https://" + site
		}
		companies = append(companies, discovery.Company{Name: name, Website: site})
	}
	return companies, nil
}

func stripBOM(s string) string {
	return strings.TrimPrefix(s, "\ufeff")
}
