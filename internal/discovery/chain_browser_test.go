package discovery

import (
	"context"
	"strings"
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// helper start mock browser; skips when no driver is installed
func setupPlaywright(t *testing.T) (*playwright.Playwright, playwright.Browser, playwright.Page) {
	t.Helper()
	pw, err := playwright.Run()
	if err != nil {
		t.Skipf("playwright driver unavailable: %v", err)
	}
	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		pw.Stop()
		t.Skipf("could not launch browser: %v", err)
	}
	page, err := browser.NewPage()
	require.NoError(t, err)
	return pw, browser, page
}

func testChain() *Chain {
	return NewChain(
		&Subdomain{TimeoutMs: 1000},
		&NavMenu{TimeoutMs: 3000, IdleMs: 1000, SettleMs: 50},
		&Footer{TimeoutMs: 3000, IdleMs: 1000},
		&FullPage{TimeoutMs: 3000, IdleMs: 1000},
		&DirectURL{TimeoutMs: 1000},
		&Search{EngineURL: "https://search.invalid/?q=", TimeoutMs: 1000, IdleMs: 500},
	)
}

// A Greenhouse link sitting in the footer must beat the direct URL pattern
// probe: link-scanning strategies run first and third-party boards have
// absolute priority.
func TestChain_FooterJobBoardBeatsDirectPattern(t *testing.T) {
	pw, browser, page := setupPlaywright(t)
	defer pw.Stop()
	defer browser.Close()

	homepage := `<html><body>
		<nav><a href="/pricing">Pricing</a></nav>
		<p>Welcome to Acme</p>
		<footer><a href="https://boards.greenhouse.io/acme">Openings</a></footer>
	</body></html>`

	careersPage := `<html><body><h1>Careers at Acme</h1></body></html>`

	page.Route("**/*", func(route playwright.Route) {
		u := route.Request().URL()
		switch {
		case u == "https://acme.test/" || u == "https://acme.test":
			route.Fulfill(playwright.RouteFulfillOptions{
				Status:      playwright.Int(200),
				ContentType: playwright.String("text/html"),
				Body:        homepage,
			})
		case strings.HasPrefix(u, "https://acme.test/"):
			route.Fulfill(playwright.RouteFulfillOptions{
				Status:      playwright.Int(200),
				ContentType: playwright.String("text/html"),
				Body:        careersPage,
			})
		default:
			// subdomain guesses, search engine: unreachable
			route.Abort()
		}
	})

	outcome := testChain().Discover(context.Background(), page, Company{
		Name:    "Acme",
		Website: "https://acme.test",
	})

	assert.Equal(t, "https://boards.greenhouse.io/acme", outcome.FoundURL)
}

// With nothing reachable at all, the chain must terminate with an empty
// result instead of an error or a hang.
func TestChain_AllUnreachableYieldsNotFound(t *testing.T) {
	pw, browser, page := setupPlaywright(t)
	defer pw.Stop()
	defer browser.Close()

	page.Route("**/*", func(route playwright.Route) {
		route.Abort()
	})

	outcome := testChain().Discover(context.Background(), page, Company{
		Name:    "Ghost Co",
		Website: "https://ghost.test",
	})

	assert.Empty(t, outcome.FoundURL)
	assert.Empty(t, outcome.Strategy)
}
