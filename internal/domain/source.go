package domain

import (
	"net/url"
	"strings"
)

// SourceOf returns the source label for an article URL: the last two
// dot-separated labels of the host. Hosts with two or fewer labels are
// returned unchanged. Multi-part public suffixes are not special-cased,
// so "news.bbc.co.uk" yields "co.uk". Known limitation, kept on purpose.
func SourceOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	host := u.Hostname()
	labels := strings.Split(host, ".")
	if len(labels) <= 2 {
		return host
	}

	return strings.Join(labels[len(labels)-2:], ".")
}
