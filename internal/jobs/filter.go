package jobs

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Criteria are three independent keyword sets. A job must satisfy ALL three:
// role and seniority against the title, location against location or
// description. Strict AND is the policy, not a relevance score.
type Criteria struct {
	Role      []string
	Seniority []string
	Location  []string
}

func normalizeText(str string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, str)
	return strings.ToLower(result)
}

// Filter keeps only the jobs matching every criteria set.
func Filter(all []Job, c Criteria) []Job {
	var matched []Job
	for _, job := range all {
		title := normalizeText(job.Title)
		description := normalizeText(job.Description)
		location := normalizeText(job.Location)

		if !containsAny(title, c.Role) {
			continue
		}
		if !containsAny(title, c.Seniority) {
			continue
		}
		if !containsAny(location, c.Location) && !containsAny(description, c.Location) {
			continue
		}
		matched = append(matched, job)
	}
	return matched
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(text, normalizeText(kw)) {
			return true
		}
	}
	return false
}
