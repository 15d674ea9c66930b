package discovery

import (
	"context"
	"log"

	"github.com/playwright-community/playwright-go"
)

// FullPage scans every anchor on the homepage for career link text.
type FullPage struct {
	TimeoutMs float64
	IdleMs    float64
}

func (s *FullPage) Name() string { return "full-page" }

func (s *FullPage) Attempt(ctx context.Context, page playwright.Page, c Company) (string, bool) {
	log.Printf("  → Scanning entire page for career-related links")
	if !gotoHomepage(page, c.Website, s.TimeoutMs, s.IdleMs) {
		return "", false
	}

	if url, ok := firstCareerAnchor(pageAnchors(page), c.Website); ok {
		log.Printf("  ✅ Found career link on page: %s", url)
		return url, true
	}
	return "", false
}
