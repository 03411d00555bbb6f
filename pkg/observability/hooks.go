// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers can register
// hooks at startup to receive events about report runs and cache operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach avoids import cycles (hooks are registered by main, not by
// libraries) and keeps the core library free of observability frameworks.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetReportHooks(&myReportHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Report().OnBuildStart(ctx, snapshotPath)
//	// ... build the graph ...
//	observability.Report().OnBuildComplete(ctx, snapshotPath, nodeCount, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Report Hooks
// =============================================================================

// ReportHooks receives events from the report pipeline.
type ReportHooks interface {
	// Graph build events
	OnBuildStart(ctx context.Context, snapshot string)
	OnBuildComplete(ctx context.Context, snapshot string, nodeCount int, duration time.Duration, err error)

	// Render events
	OnRenderStart(ctx context.Context, kind, format string)
	OnRenderComplete(ctx context.Context, kind, format string, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Defaults
// =============================================================================

// noopReportHooks is the default ReportHooks implementation.
type noopReportHooks struct{}

func (noopReportHooks) OnBuildStart(context.Context, string)                               {}
func (noopReportHooks) OnBuildComplete(context.Context, string, int, time.Duration, error) {}
func (noopReportHooks) OnRenderStart(context.Context, string, string)                      {}
func (noopReportHooks) OnRenderComplete(context.Context, string, string, time.Duration, error) {
}

// noopCacheHooks is the default CacheHooks implementation.
type noopCacheHooks struct{}

func (noopCacheHooks) OnCacheHit(context.Context, string)      {}
func (noopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (noopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Registry
// =============================================================================

var (
	mu          sync.RWMutex
	reportHooks ReportHooks = noopReportHooks{}
	cacheHooks  CacheHooks  = noopCacheHooks{}
)

// SetReportHooks registers report hooks. Pass nil to restore the no-op
// default. Intended to be called once during startup.
func SetReportHooks(h ReportHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		reportHooks = noopReportHooks{}
		return
	}
	reportHooks = h
}

// SetCacheHooks registers cache hooks. Pass nil to restore the no-op default.
func SetCacheHooks(h CacheHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		cacheHooks = noopCacheHooks{}
		return
	}
	cacheHooks = h
}

// Report returns the registered report hooks.
func Report() ReportHooks {
	mu.RLock()
	defer mu.RUnlock()
	return reportHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	mu.RLock()
	defer mu.RUnlock()
	return cacheHooks
}
