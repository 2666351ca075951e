package components

import (
	"strings"
)

// hostLabelLength caps the host shown under a portfolio card
const hostLabelLength = 25

// HostLabel strips the scheme from a URL and truncates it for display.
// The ellipsis is always appended.
func HostLabel(url string) string {
	label := url
	if strings.HasPrefix(label, "https://") {
		label = strings.TrimPrefix(label, "https://")
	} else {
		label = strings.TrimPrefix(label, "http://")
	}

	runes := []rune(label)
	if len(runes) > hostLabelLength {
		runes = runes[:hostLabelLength]
	}
	return string(runes) + "..."
}
