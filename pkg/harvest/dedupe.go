package harvest

// Dedupe filters a query's extracted addresses, keeping an address only if:
//
//   - it is the first occurrence of that value in emails (earliest index wins)
//   - it is absent from sent (already contacted in a previous run)
//   - it is absent from seen (already retained for an earlier query this run)
//
// Order is preserved. Neither input set is mutated; the caller adds the
// retained addresses to seen before processing the next query.
func Dedupe(emails []string, sent, seen EmailSet) []string {
	var retained []string
	inBatch := make(EmailSet, len(emails))

	for _, e := range emails {
		if inBatch.Contains(e) || sent.Contains(e) || seen.Contains(e) {
			continue
		}
		inBatch.Add(e)
		retained = append(retained, e)
	}
	return retained
}
