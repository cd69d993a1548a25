// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about editor transactions, drag gestures, template storage
// and API requests.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, so the core packages stay
// free of observability frameworks.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetEditorHooks(&myEditorHooks{})
//	    observability.SetStoreHooks(&myStoreHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	start := time.Now()
//	// ... apply transaction ...
//	observability.Editor().OnDispatch(len(tr.Steps()), tr.DocChanged(), time.Since(start))
//
// Editor and drag hooks carry no context: they fire synchronously inside a
// single edit and never block.
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Editor Hooks
// =============================================================================

// EditorHooks receives events from the editor state host.
type EditorHooks interface {
	// OnDispatch records an applied transaction.
	OnDispatch(steps int, docChanged bool, duration time.Duration)

	// OnNormalize records a normalization pass that modified the document.
	OnNormalize(collapsed, resynced int)

	// OnRejected records an edit that produced no transaction.
	OnRejected(op string, err error)
}

// =============================================================================
// Drag Hooks
// =============================================================================

// DragHooks receives events from drag sessions.
type DragHooks interface {
	// OnDragStart records the start of a gesture.
	OnDragStart(sourceType string)

	// OnDrop records a gesture that ended on a valid drop target.
	OnDrop(sourceType, targetType, edge string)

	// OnDragCancel records a gesture that ended without a drop.
	OnDragCancel(reason string)
}

// =============================================================================
// Store Hooks
// =============================================================================

// StoreHooks receives events from template store operations.
type StoreHooks interface {
	// OnStoreHit records a successful lookup.
	OnStoreHit(ctx context.Context, backend string)

	// OnStoreMiss records a lookup of a missing template.
	OnStoreMiss(ctx context.Context, backend string)

	// OnStoreSet records a template write.
	OnStoreSet(ctx context.Context, backend string, size int)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the HTTP API server.
type HTTPHooks interface {
	// OnRequest records an incoming request.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse records a completed response.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopEditorHooks is a no-op implementation of EditorHooks.
type NoopEditorHooks struct{}

func (NoopEditorHooks) OnDispatch(int, bool, time.Duration) {}
func (NoopEditorHooks) OnNormalize(int, int)                {}
func (NoopEditorHooks) OnRejected(string, error)            {}

// NoopDragHooks is a no-op implementation of DragHooks.
type NoopDragHooks struct{}

func (NoopDragHooks) OnDragStart(string)            {}
func (NoopDragHooks) OnDrop(string, string, string) {}
func (NoopDragHooks) OnDragCancel(string)           {}

// NoopStoreHooks is a no-op implementation of StoreHooks.
type NoopStoreHooks struct{}

func (NoopStoreHooks) OnStoreHit(context.Context, string)      {}
func (NoopStoreHooks) OnStoreMiss(context.Context, string)     {}
func (NoopStoreHooks) OnStoreSet(context.Context, string, int) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	editorHooks EditorHooks = NoopEditorHooks{}
	dragHooks   DragHooks   = NoopDragHooks{}
	storeHooks  StoreHooks  = NoopStoreHooks{}
	httpHooks   HTTPHooks   = NoopHTTPHooks{}
	hooksMu     sync.RWMutex
)

// SetEditorHooks registers custom editor hooks.
// This should be called once at application startup before any editing.
func SetEditorHooks(h EditorHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		editorHooks = h
	}
}

// SetDragHooks registers custom drag hooks.
func SetDragHooks(h DragHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		dragHooks = h
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

// SetHTTPHooks registers custom HTTP hooks.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Editor returns the registered editor hooks.
func Editor() EditorHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return editorHooks
}

// Drag returns the registered drag hooks.
func Drag() DragHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return dragHooks
}

// Store returns the registered store hooks.
func Store() StoreHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return storeHooks
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
	editorHooks = NoopEditorHooks{}
	dragHooks = NoopDragHooks{}
	storeHooks = NoopStoreHooks{}
	httpHooks = NoopHTTPHooks{}
}
