// Package url provides URL helpers for grouping tabs.
package url

import (
	"net/url"
	"strings"
)

// DomainOf returns the grouping key for a tab URL: the lowercased hostname
// without port and with a leading "www." stripped, so youtube.com and
// www.youtube.com land in the same group.
//
// A URL that cannot be parsed, or that has no scheme, is returned unchanged.
// A well-formed URL without a host (about:blank) yields "".
func DomainOf(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" {
		return rawURL
	}
	host := strings.ToLower(parsed.Hostname())
	return strings.TrimPrefix(host, "www.")
}
