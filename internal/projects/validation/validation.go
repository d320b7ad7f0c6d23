// Package validation holds the input checks that gate project creation.
package validation

import "net/url"

// scrapedDataFields are the keys every scraped payload must carry.
// Only presence is checked; empty values are acceptable.
var scrapedDataFields = []string{"url", "title", "content"}

// ValidWebsiteURL reports whether s is a syntactically valid absolute URL,
// meaning it parses with both a scheme and a host. Malformed input yields
// false, never an error. No reachability check is performed.
func ValidWebsiteURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// ValidScrapedData reports whether the scraped payload has the minimum
// required shape. This is a key-presence check, not a schema validation.
func ValidScrapedData(data map[string]any) bool {
	for _, field := range scrapedDataFields {
		if _, ok := data[field]; !ok {
			return false
		}
	}
	return true
}
