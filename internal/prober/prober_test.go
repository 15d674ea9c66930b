package prober

import (
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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

func fulfill(status int, body string) func(playwright.Route) {
	return func(route playwright.Route) {
		route.Fulfill(playwright.RouteFulfillOptions{
			Status:      playwright.Int(status),
			ContentType: playwright.String("text/html"),
			Body:        body,
		})
	}
}

func TestProbeCareerPage(t *testing.T) {
	pw, browser, page := setupPlaywright(t)
	defer pw.Stop()
	defer browser.Close()

	page.Route("**/*", fulfill(200, "<html><body><h1>Open Positions at Acme</h1></body></html>"))

	res := Probe(page, "https://careers.acme.test/", 5000)
	assert.True(t, res.Reachable)
	assert.True(t, res.HasSignal)
	assert.Equal(t, "https://careers.acme.test/", res.FinalURL)
}

func TestProbeNoSignal(t *testing.T) {
	pw, browser, page := setupPlaywright(t)
	defer pw.Stop()
	defer browser.Close()

	page.Route("**/*", fulfill(200, "<html><body><h1>Buy our widgets</h1></body></html>"))

	res := Probe(page, "https://acme.test/widgets", 5000)
	assert.True(t, res.Reachable)
	assert.False(t, res.HasSignal)
}

func TestProbeHTTPError(t *testing.T) {
	pw, browser, page := setupPlaywright(t)
	defer pw.Stop()
	defer browser.Close()

	page.Route("**/*", fulfill(404, "<html><body>careers not here</body></html>"))

	res := Probe(page, "https://acme.test/careers", 5000)
	assert.False(t, res.Reachable)
	assert.False(t, res.HasSignal)
}

func TestProbeUnreachable(t *testing.T) {
	pw, browser, page := setupPlaywright(t)
	defer pw.Stop()
	defer browser.Close()

	page.Route("**/*", func(route playwright.Route) {
		route.Abort()
	})

	res := Probe(page, "https://ghost.test/", 5000)
	assert.Equal(t, Result{}, res, "navigation failure is a miss, not an error")
}

// A navigation that exceeds the timeout must resolve to a miss within a
// bounded margin instead of hanging.
func TestProbeTimeoutBounded(t *testing.T) {
	pw, browser, page := setupPlaywright(t)
	defer pw.Stop()
	defer browser.Close()

	// never answer the request
	page.Route("**/*", func(route playwright.Route) {})

	start := time.Now()
	res := Probe(page, "https://slow.test/", 1000)
	elapsed := time.Since(start)

	assert.False(t, res.Reachable)
	assert.Less(t, elapsed, 10*time.Second)
}
