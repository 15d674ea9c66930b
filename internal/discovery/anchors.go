package discovery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/playwright-community/playwright-go"
)

// Anchor is one link extracted from rendered page content.
type Anchor struct {
	Href string
	Text string
}

// pageAnchors parses the current rendered content and returns every anchor
// with a non-empty href.
func pageAnchors(page playwright.Page) []Anchor {
	content, err := page.Content()
	if err != nil {
		return nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil
	}
	return collectAnchors(doc.Selection)
}

// footerAnchors returns the anchors inside the first footer element, or nil
// when the page has none.
func footerAnchors(page playwright.Page) []Anchor {
	content, err := page.Content()
	if err != nil {
		return nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil
	}
	footer := doc.Find("footer").First()
	if footer.Length() == 0 {
		return nil
	}
	return collectAnchors(footer)
}

func collectAnchors(sel *goquery.Selection) []Anchor {
	var anchors []Anchor
	sel.Find("a").Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok || href == "" {
			return
		}
		anchors = append(anchors, Anchor{
			Href: href,
			Text: strings.TrimSpace(a.Text()),
		})
	})
	return anchors
}
