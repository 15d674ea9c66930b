package discovery

import (
	"log"
	"strings"

	"github.com/playwright-community/playwright-go"

	"go-careerscout-automation/internal/classifier"
)

// gotoHomepage navigates to the company homepage unless the page is already
// there, then waits (bounded) for the network to settle. An idle-wait
// timeout is tolerated: the DOM we have is the DOM we scan.
func gotoHomepage(page playwright.Page, website string, timeoutMs, idleMs float64) bool {
	if strings.TrimSuffix(page.URL(), "/") != strings.TrimSuffix(website, "/") {
		if _, err := page.Goto(website, playwright.PageGotoOptions{
			Timeout: playwright.Float(timeoutMs),
		}); err != nil {
			log.Printf("  ⚠️ Could not load homepage %s: %v", website, err)
			return false
		}
	}
	page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State:   playwright.LoadStateNetworkidle,
		Timeout: playwright.Float(idleMs),
	})
	return true
}

// firstCareerAnchor scans anchors in LINK_TEXTS priority order: the outer
// loop walks the patterns so an anchor matching a higher-priority pattern
// always beats an earlier anchor matching a lower-priority one. The winning
// href is resolved against base.
func firstCareerAnchor(anchors []Anchor, base string) (string, bool) {
	for _, re := range classifier.LinkTextPatterns {
		for _, a := range anchors {
			if re.MatchString(a.Text) {
				return classifier.Resolve(base, a.Href), true
			}
		}
	}
	return "", false
}
