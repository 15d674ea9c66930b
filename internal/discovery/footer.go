package discovery

import (
	"context"
	"log"

	"github.com/playwright-community/playwright-go"
)

// Footer scans the first footer region of the homepage for career links.
type Footer struct {
	TimeoutMs float64
	IdleMs    float64
}

func (s *Footer) Name() string { return "footer" }

func (s *Footer) Attempt(ctx context.Context, page playwright.Page, c Company) (string, bool) {
	log.Printf("  → Checking footer links")
	if !gotoHomepage(page, c.Website, s.TimeoutMs, s.IdleMs) {
		return "", false
	}

	anchors := footerAnchors(page)
	if anchors == nil {
		return "", false
	}

	log.Printf("  → Footer found, scanning for career links")
	if url, ok := firstCareerAnchor(anchors, c.Website); ok {
		log.Printf("  ✅ Found career link in footer: %s", url)
		return url, true
	}
	return "", false
}
