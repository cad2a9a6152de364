package npm

import (
	"encoding/json"
	"time"
)

// Package is one search result record. Immutable once fetched.
type Package struct {
	Name        string       `json:"name"`
	Version     string       `json:"version"`
	Description string       `json:"description"`
	Keywords    []string     `json:"keywords"`
	Date        time.Time    `json:"date"`
	Links       PackageLinks `json:"links"`
	Publisher   *Contact     `json:"publisher"`
	Maintainers ContactList  `json:"maintainers"`
}

// PackageLinks holds the URL set attached to a search result.
type PackageLinks struct {
	NPM        string `json:"npm"`
	Homepage   string `json:"homepage"`
	Repository string `json:"repository"`
	Bugs       string `json:"bugs"`
}

// Contact is a publisher or maintainer entry.
type Contact struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// ContactList tolerates the registry occasionally serving a non-array
// maintainers field on old records; anything that isn't an array decodes
// as empty rather than failing the whole page.
type ContactList []Contact

// UnmarshalJSON implements json.Unmarshaler.
func (l *ContactList) UnmarshalJSON(data []byte) error {
	var contacts []Contact
	if err := json.Unmarshal(data, &contacts); err != nil {
		*l = nil
		return nil
	}
	*l = contacts
	return nil
}
