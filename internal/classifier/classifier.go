// Pure matchers over the catalogs. No I/O here so everything is unit
// testable without a browser.

package classifier

import (
	"regexp"
	"strings"
)

// MatchJobBoard reports whether href points at a known third-party ATS job
// board. The returned slug is the company identifier on that platform, empty
// when the matching pattern has no capture group.
func MatchJobBoard(href string) (string, bool) {
	for _, re := range jobBoardPatterns {
		m := re.FindStringSubmatch(href)
		if m == nil {
			continue
		}
		if len(m) > 1 {
			return m[1], true
		}
		return "", true
	}
	return "", false
}

// IsCareerLinkText reports whether anchor text looks like a careers link.
func IsCareerLinkText(text string) bool {
	for _, re := range LinkTextPatterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// IsCareerPath reports whether a URL path is one of the known career page
// paths.
func IsCareerPath(path string) bool {
	p := strings.ToLower(strings.TrimSuffix(path, "/"))
	for _, pattern := range PathPatterns {
		if p == pattern || strings.HasSuffix(p, pattern) || strings.Contains(p, pattern+"/") {
			return true
		}
	}
	return false
}

// HasCareerSignal reports whether rendered page content carries career
// signal words.
func HasCareerSignal(content string) bool {
	return signalRegex.MatchString(content)
}

// HasDirectProbeSignal is the slightly wider signal check used when probing
// direct URL patterns.
func HasDirectProbeSignal(content string) bool {
	return directSignalRegex.MatchString(content)
}

var hostRegex = regexp.MustCompile(`^https?://(?:www\.)?([^/]+)`)

// BaseDomain extracts the second-level+TLD domain from a URL, e.g.
// "https://www.eng.acme.com/x" -> "acme.com".
func BaseDomain(rawURL string) (string, bool) {
	m := hostRegex.FindStringSubmatch(rawURL)
	if m == nil {
		return "", false
	}
	parts := strings.Split(m[1], ".")
	if len(parts) < 2 {
		return m[1], true
	}
	return strings.Join(parts[len(parts)-2:], "."), true
}
