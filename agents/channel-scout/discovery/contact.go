package discovery

import (
	"regexp"
	"strings"
)

// NotAvailable is the placeholder written for any field with no data.
const NotAvailable = "N/A"

var (
	emailPattern = regexp.MustCompile(`(?i)\b[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,7}\b`)

	// A URL match runs until whitespace, angle brackets or a double quote.
	// Host exclusion is a post-filter because RE2 has no lookahead.
	websitePattern = regexp.MustCompile(`https?://[^\s<>"]+`)

	// YouTube's own links in a description are not the channel's website.
	excludedHosts = []string{"youtube.com", "youtu.be"}
)

// ContactInfo holds whatever contact details a description exposes.
type ContactInfo struct {
	Email   string
	Website string
}

// ExtractContacts pulls an email address and an external website out of a
// channel description. The two matches are independent; either falls back
// to "N/A" on its own.
func ExtractContacts(description string) ContactInfo {
	contacts := ContactInfo{Email: NotAvailable, Website: NotAvailable}

	if email := emailPattern.FindString(description); email != "" {
		contacts.Email = email
	}

	for _, candidate := range websitePattern.FindAllString(description, -1) {
		if !isExcludedHost(candidate) {
			contacts.Website = candidate
			break
		}
	}

	return contacts
}

func isExcludedHost(rawURL string) bool {
	host := strings.ToLower(rawURL)
	if i := strings.Index(host, "://"); i >= 0 {
		host = host[i+3:]
	}
	host = strings.TrimPrefix(host, "www.")
	for _, excluded := range excludedHosts {
		if strings.HasPrefix(host, excluded) {
			return true
		}
	}
	return false
}
