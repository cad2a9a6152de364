// Package httputil provides HTTP utilities for package registry clients.
//
// # Overview
//
// This package provides infrastructure used by the registry API clients:
//
//   - [Cache]: File-based HTTP response caching
//   - [Retry]: Automatic retry with fixed backoff and request throttling
//
// # Caching
//
// [Cache] stores HTTP responses in the filesystem (~/.cache/pkgreach/)
// with configurable TTL. This makes repeated harvest runs cheap and
// reduces load on the registry.
//
// Usage:
//
//	cache, err := httputil.NewCache("", 24 * time.Hour)
//	ok, err := cache.Get("search:react:0", &page)  // Check cache
//	if !ok {
//	    page = fetchFromAPI()
//	    cache.Set("search:react:0", page)          // Store for later
//	}
//
// Cache keys should be namespaced to avoid collisions.
//
// # Retry
//
// [Retry] wraps registry requests with automatic retry for transient
// failures: network errors, 5xx responses, and undecodable bodies. Unlike a
// typical exponential-backoff helper, the pacing here is deliberately fixed:
// the registry search endpoint tolerates a steady request rate better than
// bursts, so every success is followed by a short throttle and every failure
// by a long pause.
//
//	err := httputil.Retry(ctx, httputil.DefaultPolicy(), func() error {
//	    return client.fetchPage(ctx, query, page)
//	})
//
// Exhausting the budget surfaces [ErrRetriesExhausted] wrapping the last
// failure; callers treat that as fatal for the current page walk.
//
// The cache can be cleared via `pkgreach cache clear` or by deleting the
// cache directory.
package httputil
