// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about drag/resize interactions and profile storage.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetInteractionHooks(&myInteractionHooks{})
//	    observability.SetStoreHooks(&myStoreHooks{})
//	    // ... run application
//	}
//
// Components call hooks to emit events:
//
//	observability.Interaction().OnInteractionStart(ctx, profile, "drag", itemID)
//	// ... previews ...
//	observability.Interaction().OnInteractionCommit(ctx, profile, "drag", itemID, outcome, duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Interaction Hooks
// =============================================================================

// InteractionHooks receives events about drags and resizes.
type InteractionHooks interface {
	// OnInteractionStart records the start of a drag or resize of itemID.
	OnInteractionStart(ctx context.Context, profile, kind, itemID string)

	// OnInteractionCommit records a committed interaction. outcome is the
	// resolver outcome of the final proposal ("moved", "swapped", "pushed",
	// "resized" or "noop").
	OnInteractionCommit(ctx context.Context, profile, kind, itemID, outcome string, duration time.Duration)

	// OnInteractionCancel records an abandoned interaction.
	OnInteractionCancel(ctx context.Context, profile, kind, itemID string, duration time.Duration)
}

// =============================================================================
// Store Hooks
// =============================================================================

// StoreHooks receives events from profile persistence.
type StoreHooks interface {
	// OnLoad records a profile load. found is false for unknown profiles.
	OnLoad(ctx context.Context, backend, profile string, found bool, duration time.Duration, err error)

	// OnSave records a profile write of the given encoded size.
	OnSave(ctx context.Context, backend, profile string, size int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopInteractionHooks is a no-op implementation of InteractionHooks.
type NoopInteractionHooks struct{}

func (NoopInteractionHooks) OnInteractionStart(context.Context, string, string, string) {}
func (NoopInteractionHooks) OnInteractionCommit(context.Context, string, string, string, string, time.Duration) {
}
func (NoopInteractionHooks) OnInteractionCancel(context.Context, string, string, string, time.Duration) {
}

// NoopStoreHooks is a no-op implementation of StoreHooks.
type NoopStoreHooks struct{}

func (NoopStoreHooks) OnLoad(context.Context, string, string, bool, time.Duration, error) {}
func (NoopStoreHooks) OnSave(context.Context, string, string, int, time.Duration, error)  {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	interactionHooks InteractionHooks = NoopInteractionHooks{}
	storeHooks       StoreHooks       = NoopStoreHooks{}
	hooksMu          sync.RWMutex
)

// SetInteractionHooks registers custom interaction hooks.
// This should be called once at application startup.
func SetInteractionHooks(h InteractionHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		interactionHooks = h
	}
}

// SetStoreHooks registers custom store hooks.
// This should be called once at application startup before any store operations.
func SetStoreHooks(h StoreHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		storeHooks = h
	}
}

// Interaction returns the registered interaction hooks.
func Interaction() InteractionHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return interactionHooks
}

// Store returns the registered store hooks.
func Store() StoreHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return storeHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	interactionHooks = NoopInteractionHooks{}
	storeHooks = NoopStoreHooks{}
}
