package discovery

import (
	"context"
	"fmt"
	"log"

	"github.com/playwright-community/playwright-go"

	"go-careerscout-automation/internal/classifier"
	"go-careerscout-automation/internal/prober"
)

// Subdomain probes https://{guess}.{basedomain} for each catalog guess.
type Subdomain struct {
	TimeoutMs float64
}

func (s *Subdomain) Name() string { return "subdomain" }

func (s *Subdomain) Attempt(ctx context.Context, page playwright.Page, c Company) (string, bool) {
	domain, ok := classifier.BaseDomain(c.Website)
	if !ok {
		return "", false
	}

	log.Printf("  → Checking %d possible career subdomains...", len(classifier.SubdomainGuesses))
	for _, guess := range classifier.SubdomainGuesses {
		if ctx.Err() != nil {
			return "", false
		}
		candidate := fmt.Sprintf("https://%s.%s", guess, domain)
		res := prober.Probe(page, candidate, s.TimeoutMs)
		if res.Reachable && res.HasSignal {
			log.Printf("  ✅ Found career subdomain: %s", candidate)
			return candidate, true
		}
	}
	return "", false
}
