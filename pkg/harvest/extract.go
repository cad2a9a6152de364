package harvest

import "github.com/dferrans/pkgreach/pkg/registry/npm"

// ExtractEmails pulls contact addresses out of a package record: the
// publisher's email first (if present), then each maintainer's email in
// listed order. Empty and absent values are skipped. No syntax validation
// is applied.
func ExtractEmails(p npm.Package) []string {
	var emails []string
	if p.Publisher != nil && p.Publisher.Email != "" {
		emails = append(emails, p.Publisher.Email)
	}
	for _, m := range p.Maintainers {
		if m.Email != "" {
			emails = append(emails, m.Email)
		}
	}
	return emails
}
