package discovery

import (
	"context"
	"log"
	"strings"

	"github.com/playwright-community/playwright-go"

	"go-careerscout-automation/internal/classifier"
	"go-careerscout-automation/internal/prober"
)

// DirectURL appends each catalog path to the company's base URL and probes
// the result.
type DirectURL struct {
	TimeoutMs float64
}

func (s *DirectURL) Name() string { return "direct-url" }

func (s *DirectURL) Attempt(ctx context.Context, page playwright.Page, c Company) (string, bool) {
	base := strings.TrimSuffix(c.Website, "/")
	log.Printf("  → Trying %d direct URL patterns", len(classifier.PathPatterns))

	for _, path := range classifier.PathPatterns {
		if ctx.Err() != nil {
			return "", false
		}
		candidate := base + path
		res := prober.ProbeWith(page, candidate, s.TimeoutMs, classifier.HasDirectProbeSignal)
		if res.Reachable && res.HasSignal {
			log.Printf("  ✅ Found working careers URL: %s", candidate)
			return candidate, true
		}
	}
	return "", false
}
