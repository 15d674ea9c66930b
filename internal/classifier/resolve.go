package classifier

import "strings"

// Resolve turns an href found on a page into an absolute URL against base.
// Absolute hrefs pass through untouched, so Resolve is idempotent.
func Resolve(base, href string) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	base = strings.TrimSuffix(base, "/")
	if strings.HasPrefix(href, "/") {
		return base + href
	}
	return base + "/" + href
}
