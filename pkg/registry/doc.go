// Package registry provides shared HTTP infrastructure for package registry
// API clients.
//
// # Overview
//
// [Client] bundles the concerns every registry client needs:
//
//   - Response caching via [httputil.Cache]
//   - Retry pacing via [httputil.Retry] (fixed backoff, post-success throttle)
//   - Default request headers
//   - HTTP status mapping to sentinel errors
//
// Registry-specific clients (e.g. the npm search client) embed [Client] and
// add typed endpoints on top.
//
// # Error Mapping
//
//   - 404            → [ErrNotFound] (not retried)
//   - 429            → retryable rate-limit error
//   - 5xx, transport → retryable [ErrNetwork]
//   - undecodable    → retryable [ErrParse]
//   - other non-200  → [ErrNetwork] (not retried)
package registry
