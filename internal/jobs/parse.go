package jobs

import (
	"encoding/json"
	"log"
	"regexp"
	"time"
)

// Agent output is free text that usually embeds a JSON array or object
// somewhere; pull out every bracketed candidate and try them all.
var jsonCandidateRegex = regexp.MustCompile(`(?s)(\{.*\}|\[.*\])`)

// ParseResults extracts job listings from raw agent results. Accepted
// shapes: a JSON array of jobs, {"jobs": [...]}, or a single job object.
// Anything unparseable is skipped, never fatal.
func ParseResults(results []BoardResult) []Job {
	var all []Job

	for _, res := range results {
		extracted := 0
		for _, candidate := range jsonCandidateRegex.FindAllString(res.Raw, -1) {
			parsed := parseCandidate(candidate, res)
			extracted += len(parsed)
			all = append(all, parsed...)
		}
		if extracted == 0 && res.Raw != "" && res.Raw != "[]" {
			log.Printf("⚠️ No parseable jobs in result from %s", res.Company)
		}
	}
	return all
}

func parseCandidate(candidate string, res BoardResult) []Job {
	now := time.Now().Format(time.RFC3339)

	stamp := func(j Job) Job {
		if j.Company == "" {
			j.Company = res.Company
		}
		j.SourceURL = res.SourceURL
		j.ExtractedAt = now
		return j
	}

	var list []Job
	if err := json.Unmarshal([]byte(candidate), &list); err == nil {
		var out []Job
		for _, j := range list {
			if j.Title != "" {
				out = append(out, stamp(j))
			}
		}
		return out
	}

	var wrapped struct {
		Jobs []Job `json:"jobs"`
	}
	if err := json.Unmarshal([]byte(candidate), &wrapped); err == nil && len(wrapped.Jobs) > 0 {
		var out []Job
		for _, j := range wrapped.Jobs {
			if j.Title != "" {
				out = append(out, stamp(j))
			}
		}
		return out
	}

	var single Job
	if err := json.Unmarshal([]byte(candidate), &single); err == nil && single.Title != "" {
		return []Job{stamp(single)}
	}
	return nil
}
