// Package sentstore persists the set of already-contacted email addresses
// across harvest runs.
//
// The store is read once at startup and optionally appended to after a
// successful run. Three backends are provided:
//
//   - file: newline-delimited list, the default for single-host usage
//   - redis: a shared set for teams running harvests from several hosts
//   - memory: in-process, for tests and throwaway runs
package sentstore

import "context"

// Store is the persistence interface for the sent-email set.
//
// Load returns every known address; callers build their own lookup set from
// it and treat it as read-only for the duration of a run. Add appends new
// addresses; duplicates are tolerated.
type Store interface {
	Load(ctx context.Context) ([]string, error)
	Add(ctx context.Context, emails ...string) error
	Close() error
}
