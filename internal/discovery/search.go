package discovery

import (
	"context"
	"fmt"
	"log"
	"net/url"

	"github.com/playwright-community/playwright-go"

	"go-careerscout-automation/internal/classifier"
)

// Search is the last resort: query a search engine for the company name plus
// career terms, click the first result whose heading looks relevant, and
// accept the landing page if it carries career signal.
type Search struct {
	EngineURL string
	TimeoutMs float64
	IdleMs    float64
}

func (s *Search) Name() string { return "search" }

func (s *Search) Attempt(ctx context.Context, page playwright.Page, c Company) (string, bool) {
	log.Printf("  → Trying search engine fallback")

	for _, tmpl := range classifier.SearchQueryTemplates {
		if ctx.Err() != nil {
			return "", false
		}
		query := fmt.Sprintf(tmpl, c.Name)
		if found, ok := s.trySearch(page, query); ok {
			return found, true
		}
	}
	return "", false
}

func (s *Search) trySearch(page playwright.Page, query string) (string, bool) {
	if _, err := page.Goto(s.EngineURL+url.QueryEscape(query), playwright.PageGotoOptions{
		Timeout: playwright.Float(s.TimeoutMs),
	}); err != nil {
		log.Printf("  → Search for '%s' failed: %v", query, err)
		return "", false
	}
	page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State:   playwright.LoadStateNetworkidle,
		Timeout: playwright.Float(s.IdleMs),
	})

	results := page.Locator("h2, h3").Filter(playwright.LocatorFilterOptions{
		HasText: classifier.SearchHeadingPattern,
	})
	count, err := results.Count()
	if err != nil || count == 0 {
		return "", false
	}

	heading, _ := results.First().TextContent()
	log.Printf("  → Found potential result: '%s', clicking", heading)
	if err := results.First().Click(); err != nil {
		return "", false
	}
	page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State:   playwright.LoadStateNetworkidle,
		Timeout: playwright.Float(s.IdleMs),
	})

	content, err := page.Content()
	if err != nil {
		return "", false
	}
	if classifier.HasCareerSignal(content) {
		current := page.URL()
		log.Printf("  ✅ Found career page via search: %s", current)
		return current, true
	}
	return "", false
}
