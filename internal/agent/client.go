package agent

import (
	"context"
	"fmt"
)

// NoRelevantJobsMarker is the sentinel the agent is instructed to emit when
// a board has nothing useful, is blocked, or has been fully searched.
const NoRelevantJobsMarker = "NO_RELEVANT_JOBS_FOUND"

// Client is the opaque browsing agent: given instructions for a job board it
// returns free text that may embed JSON job listings, or an error/timeout.
type Client interface {
	// ScrapeBoard browses the board at url and returns the agent's raw
	// text result.
	ScrapeBoard(ctx context.Context, company, url string) (string, error)
}

// buildInstructions writes the scraping brief with explicit stop conditions
// so the agent terminates instead of wandering the site.
func buildInstructions(company, url string) string {
	return fmt.Sprintf(
		"You are now on the job board for %s at %s. "+
			"Look for relevant job listings matching the configured role, seniority and location. "+
			"Focus ONLY on searching and browsing job listings - do not click on any other links. "+
			"If after exploring the site you find that: "+
			"1. There are no relevant job postings, or "+
			"2. You cannot access the job listings due to blocks/errors, or "+
			"3. You've searched through all available pages "+
			"Then say '%s' and explain briefly why. "+
			"Otherwise, collect the following for each relevant job listing: "+
			"1. Job title, 2. Company name (%s), 3. Full job description, 4. Job location, 5. Job URL, 6. Posted date (if available) "+
			"Return the information in this JSON format: "+
			`[{"title": "Job Title", "company": "%s", "description": "Full description...", `+
			`"location": "Job Location", "url": "Job URL", "posted_date": "Date if available"}]`,
		company, url, NoRelevantJobsMarker, company, company,
	)
}
