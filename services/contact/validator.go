package contact

import (
	"regexp"
	"strings"
)

// InvalidWebsiteMessage is shown next to the website field when it is not URL shaped
const InvalidWebsiteMessage = "Please enter a valid URL (e.g., example.com or https://example.com)"

// websitePattern accepts an optional http(s) scheme, dotted host labels, a 2-6
// character top level label and an optional path. Ports, query strings and
// non-ASCII hosts do not match.
var websitePattern = regexp.MustCompile(`(?i)^(https?://)?([\da-z.-]+)\.([a-z.]{2,6})([/\w .-]*)*/?$`)

// IsValidURL reports whether s is acceptable for the optional website field.
// Blank input is valid.
func IsValidURL(s string) bool {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return true
	}
	return websitePattern.MatchString(trimmed)
}
