package harvest

// EmailSet is a membership set of email addresses. Matching is exact; no
// address normalization or syntax validation is applied.
type EmailSet map[string]struct{}

// NewEmailSet creates a set containing the given addresses.
func NewEmailSet(emails ...string) EmailSet {
	s := make(EmailSet, len(emails))
	for _, e := range emails {
		s.Add(e)
	}
	return s
}

// Contains reports whether email is in the set.
func (s EmailSet) Contains(email string) bool {
	_, ok := s[email]
	return ok
}

// Add inserts email into the set.
func (s EmailSet) Add(email string) {
	s[email] = struct{}{}
}

// Len returns the number of addresses in the set.
func (s EmailSet) Len() int { return len(s) }
