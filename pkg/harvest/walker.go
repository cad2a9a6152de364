package harvest

import (
	"context"
	"fmt"

	"github.com/dferrans/pkgreach/pkg/observability"
	"github.com/dferrans/pkgreach/pkg/registry/npm"
)

// DefaultPages is the number of result pages walked per query. Combined with
// the registry's 250-per-page cap this covers up to 10,000 packages.
const DefaultPages = 40

// Walker fetches the full result set for a query, one page at a time,
// strictly sequentially.
type Walker struct {
	Client   *npm.Client
	Pages    int  // pages per query, DefaultPages if zero
	PageSize int  // results per page, clamped to the registry cap
	Refresh  bool // bypass the response cache
}

// FetchAll walks pages 0..Pages-1 for query, accumulating packages in
// arrival order. A page that comes back empty ends the walk early: the
// registry has no more results. Any page failure aborts the remaining
// pages and is returned wrapped with the query and page.
func (w *Walker) FetchAll(ctx context.Context, query string) ([]npm.Package, error) {
	pages := w.Pages
	if pages <= 0 {
		pages = DefaultPages
	}

	var all []npm.Package
	for page := 0; page < pages; page++ {
		pkgs, err := w.Client.Search(ctx, query, page, w.PageSize, w.Refresh)
		if err != nil {
			return all, fmt.Errorf("query %q page %d: %w", query, page, err)
		}
		all = append(all, pkgs...)
		observability.Harvest().OnPageFetched(ctx, query, page+1, pages, len(pkgs))

		if len(pkgs) == 0 {
			break
		}
	}
	return all, nil
}
