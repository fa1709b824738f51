// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about projection runs and snapshot feed activity.
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
//   - Allows different backends to be plugged in later
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetProjectionHooks(&myProjectionHooks{})
//	    observability.SetFeedHooks(&myFeedHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Projection().OnGenerateStart(nodeCount)
//	// ... build and render ...
//	observability.Projection().OnGenerateComplete(nodeCount, argsChanged, duration, err)
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Projection Hooks
// =============================================================================

// ProjectionHooks receives events from the tree-to-graph projection.
type ProjectionHooks interface {
	// OnGenerateStart records the beginning of a projection run over a
	// snapshot with the given behaviour count.
	OnGenerateStart(behaviourCount int)

	// OnGenerateComplete records the end of a projection run. argsChanged
	// reports whether the drawing arguments differed from the previous run.
	OnGenerateComplete(behaviourCount int, argsChanged bool, duration time.Duration, err error)
}

// =============================================================================
// Feed Hooks
// =============================================================================

// FeedHooks receives events from the snapshot feed.
type FeedHooks interface {
	// OnPublish records a snapshot published to the feed.
	OnPublish(channel string, payloadBytes int)

	// OnSnapshot records a snapshot received and decoded from the feed.
	OnSnapshot(channel string, behaviourCount int)

	// OnDecodeError records a malformed payload skipped by a subscriber.
	OnDecodeError(channel string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopProjectionHooks is a no-op implementation of ProjectionHooks.
type NoopProjectionHooks struct{}

func (NoopProjectionHooks) OnGenerateStart(int)                                {}
func (NoopProjectionHooks) OnGenerateComplete(int, bool, time.Duration, error) {}

// NoopFeedHooks is a no-op implementation of FeedHooks.
type NoopFeedHooks struct{}

func (NoopFeedHooks) OnPublish(string, int)       {}
func (NoopFeedHooks) OnSnapshot(string, int)      {}
func (NoopFeedHooks) OnDecodeError(string, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	projectionHooks ProjectionHooks = NoopProjectionHooks{}
	feedHooks       FeedHooks       = NoopFeedHooks{}
	hooksMu         sync.RWMutex
)

// SetProjectionHooks registers custom projection hooks.
// This should be called once at application startup before any projections.
func SetProjectionHooks(h ProjectionHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		projectionHooks = h
	}
}

// SetFeedHooks registers custom feed hooks.
// This should be called once at application startup before feed operations.
func SetFeedHooks(h FeedHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		feedHooks = h
	}
}

// Projection returns the registered projection hooks.
func Projection() ProjectionHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return projectionHooks
}

// Feed returns the registered feed hooks.
func Feed() FeedHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return feedHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	projectionHooks = NoopProjectionHooks{}
	feedHooks = NoopFeedHooks{}
}
