// Package discovery finds a company's careers page by running a fixed
// priority chain of heuristics until one produces a URL.
package discovery

import (
	"context"
	"log"
	"time"

	"github.com/playwright-community/playwright-go"

	"go-careerscout-automation/internal/config"
)

// Company is one input record. Website always carries a scheme.
type Company struct {
	Name    string
	Website string
}

// Outcome is the terminal result for one company. FoundURL is empty when
// every strategy came up dry — that is an expected result, not a failure.
type Outcome struct {
	Company   Company
	FoundURL  string
	Strategy  string
	Timestamp time.Time
}

// Strategy is one discovery heuristic. Attempt reports the career page URL
// it found, or ok=false. Implementations swallow their own navigation and
// DOM errors; a failed candidate is never fatal to the chain.
type Strategy interface {
	Name() string
	Attempt(ctx context.Context, page playwright.Page, c Company) (string, bool)
}

// Chain runs strategies in order and stops at the first success.
type Chain struct {
	strategies []Strategy
}

func NewChain(strategies ...Strategy) *Chain {
	return &Chain{strategies: strategies}
}

// DefaultChain wires the six strategies in their fixed priority order.
func DefaultChain(cfg *config.Config) *Chain {
	return NewChain(
		&Subdomain{TimeoutMs: cfg.SubdomainTimeoutMs},
		&NavMenu{TimeoutMs: cfg.HomepageTimeoutMs, IdleMs: cfg.NetworkIdleMs, SettleMs: cfg.SettleDelayMs},
		&Footer{TimeoutMs: cfg.HomepageTimeoutMs, IdleMs: cfg.NetworkIdleMs},
		&FullPage{TimeoutMs: cfg.HomepageTimeoutMs, IdleMs: cfg.NetworkIdleMs},
		&DirectURL{TimeoutMs: cfg.DirectTimeoutMs},
		&Search{EngineURL: cfg.SearchEngineURL, TimeoutMs: cfg.SearchTimeoutMs, IdleMs: cfg.NetworkIdleMs},
	)
}

// Discover runs the chain for one company. The first strategy returning a
// URL wins and no later strategy runs.
func (ch *Chain) Discover(ctx context.Context, page playwright.Page, c Company) Outcome {
	log.Printf("🔎 Analyzing %s (%s)", c.Name, c.Website)

	for _, s := range ch.strategies {
		if ctx.Err() != nil {
			break
		}
		if url, ok := s.Attempt(ctx, page, c); ok {
			log.Printf("  ✅ Found via %s: %s", s.Name(), url)
			return Outcome{Company: c, FoundURL: url, Strategy: s.Name(), Timestamp: time.Now()}
		}
	}

	log.Printf("  ❌ Could not find career page for %s", c.Name)
	return Outcome{Company: c, Timestamp: time.Now()}
}
