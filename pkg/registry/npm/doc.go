// Package npm provides an HTTP client for the npm registry search API.
//
// # Overview
//
// This package fetches pages of search results from the npm registry
// (https://registry.npmjs.org/-/v1/search). Search results carry the
// publisher and maintainer contact records used for email harvesting.
//
// # Usage
//
//	client, err := npm.NewClient(24 * time.Hour)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	pkgs, err := client.Search(ctx, "http client", 0, 250, false)
//	for _, p := range pkgs {
//	    fmt.Println(p.Name, p.Publisher, p.Maintainers)
//	}
//
// # Paging
//
// Pages are zero-based and mapped to the API's `from` offset as page*size.
// The registry caps size at 250 ([MaxPageSize]); larger values are clamped.
//
// # Relevance Weighting
//
// Queries pin popularity=1.0, quality=0.0, maintenance=0.0 so that result
// ordering is stable and favors widely used packages.
//
// # Caching
//
// Pages are cached per (query, page, size) to make repeated runs cheap.
// Pass refresh=true to bypass the cache.
package npm
