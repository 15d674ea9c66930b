package discovery

import (
	"context"
	"log"
	"regexp"

	"github.com/playwright-community/playwright-go"

	"go-careerscout-automation/internal/browser"
	"go-careerscout-automation/internal/classifier"
)

// NavMenu loads the homepage, gives third-party job board links absolute
// priority, then hovers candidate navigation sections to reveal dropdown
// career links.
type NavMenu struct {
	TimeoutMs float64
	IdleMs    float64
	SettleMs  float64
}

func (s *NavMenu) Name() string { return "nav-menu" }

func (s *NavMenu) Attempt(ctx context.Context, page playwright.Page, c Company) (string, bool) {
	log.Printf("  → Visiting homepage and checking navigation")
	if !gotoHomepage(page, c.Website, s.TimeoutMs, s.IdleMs) {
		return "", false
	}

	//look like a visitor and let lazy-loaded sections render
	browser.MouseJiggle(page)
	browser.SmoothScroll(page)

	// A recognized ATS link anywhere on the page wins outright, returned
	// exactly as it appears in the href.
	for _, a := range pageAnchors(page) {
		if _, ok := classifier.MatchJobBoard(a.Href); ok {
			log.Printf("  ✅ Found third-party job board: %s", a.Href)
			return a.Href, true
		}
	}

	for _, label := range classifier.NavLabels {
		if ctx.Err() != nil {
			return "", false
		}
		log.Printf("  → Looking for '%s' navigation section", label)

		nav := page.Locator("a").Filter(playwright.LocatorFilterOptions{
			HasText: regexp.MustCompile(`(?i)^` + regexp.QuoteMeta(label) + `$`),
		})
		count, err := nav.Count()
		if err != nil || count == 0 {
			continue
		}

		log.Printf("  → Found '%s' navigation, checking for career links", label)
		if err := nav.First().Hover(); err != nil {
			continue
		}
		page.WaitForTimeout(s.SettleMs) // let the dropdown render

		if url, ok := firstCareerAnchor(pageAnchors(page), c.Website); ok {
			log.Printf("  ✅ Found career link via navigation menu: %s", url)
			return url, true
		}
	}
	return "", false
}
