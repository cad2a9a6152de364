// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about harvest execution, cache operations, and API calls.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Lets the CLI drive its progress display off harvest events without
//     coupling pkg/harvest to the terminal UI
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetHarvestHooks(&myHarvestHooks{})
//	    observability.SetHTTPHooks(&myHTTPHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Harvest().OnQueryStart(ctx, query, pages)
//	// ... walk pages ...
//	observability.Harvest().OnQueryComplete(ctx, query, newEmails, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Harvest Hooks
// =============================================================================

// HarvestHooks receives events from the harvest run.
type HarvestHooks interface {
	// Query events
	OnQueryStart(ctx context.Context, query string, pages int)
	OnQueryComplete(ctx context.Context, query string, newEmails int, duration time.Duration, err error)

	// Page events
	OnPageFetched(ctx context.Context, query string, page, pages, packages int)

	// Output events
	OnOutputWritten(ctx context.Context, query, path string, emails int)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, key string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, key string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, key string, size int)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from HTTP client operations.
type HTTPHooks interface {
	// OnRequest records an outgoing HTTP request.
	OnRequest(ctx context.Context, method, host, path string)

	// OnResponse records an HTTP response.
	OnResponse(ctx context.Context, method, host, path string, statusCode int, duration time.Duration)

	// OnError records an HTTP error (network failure, timeout).
	OnError(ctx context.Context, method, host, path string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopHarvestHooks is a no-op implementation of HarvestHooks.
type NoopHarvestHooks struct{}

func (NoopHarvestHooks) OnQueryStart(context.Context, string, int)                          {}
func (NoopHarvestHooks) OnQueryComplete(context.Context, string, int, time.Duration, error) {}
func (NoopHarvestHooks) OnPageFetched(context.Context, string, int, int, int)               {}
func (NoopHarvestHooks) OnOutputWritten(context.Context, string, string, int)               {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, string, error)                 {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	harvestHooks HarvestHooks = NoopHarvestHooks{}
	cacheHooks   CacheHooks   = NoopCacheHooks{}
	httpHooks    HTTPHooks    = NoopHTTPHooks{}
	hooksMu      sync.RWMutex
)

// SetHarvestHooks registers custom harvest hooks.
// This should be called once at application startup before any harvest operations.
func SetHarvestHooks(h HarvestHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		harvestHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before any HTTP operations.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Harvest returns the registered harvest hooks.
func Harvest() HarvestHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return harvestHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	harvestHooks = NoopHarvestHooks{}
	cacheHooks = NoopCacheHooks{}
	httpHooks = NoopHTTPHooks{}
}
