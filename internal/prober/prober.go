// Package prober answers one question: is this URL reachable, and does the
// page behind it look like a careers page? Misses are values, not errors —
// unreachable candidates are routine during discovery.
package prober

import (
	"log"

	"github.com/playwright-community/playwright-go"

	"go-careerscout-automation/internal/classifier"
)

// Result is the outcome of a single navigation+inspection. The zero value
// is a miss.
type Result struct {
	Reachable bool
	HasSignal bool
	FinalURL  string
}

// Probe navigates page to url under timeoutMs and inspects the rendered
// content for career signal. Navigation failures and HTTP errors are
// reported as a miss, never as an error. Callers must not run two probes
// concurrently against the same page.
func Probe(page playwright.Page, url string, timeoutMs float64) Result {
	return ProbeWith(page, url, timeoutMs, classifier.HasCareerSignal)
}

// ProbeWith is Probe with a caller-chosen signal check over the page content.
func ProbeWith(page playwright.Page, url string, timeoutMs float64, signal func(string) bool) Result {
	resp, err := page.Goto(url, playwright.PageGotoOptions{
		Timeout: playwright.Float(timeoutMs),
	})
	if err != nil {
		log.Printf("    ⚠️ Probe failed for %s: %v", url, err)
		return Result{}
	}
	if resp != nil && resp.Status() >= 400 {
		return Result{}
	}

	content, err := page.Content()
	if err != nil {
		return Result{Reachable: true, FinalURL: page.URL()}
	}

	return Result{
		Reachable: true,
		HasSignal: signal(content),
		FinalURL:  page.URL(),
	}
}
