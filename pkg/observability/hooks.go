// Package observability provides hooks for metrics and logging around the
// editing engine.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register
// hooks at startup to receive events about document mutations, history
// snapshots, template application, and binding sync.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces per event category
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This keeps the engine free of observability-framework imports and lets
// hosts plug in whatever backend they run.
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
package observability

import "sync"

// =============================================================================
// Editor Hooks
// =============================================================================

// EditorHooks receives events from the editing engine.
type EditorHooks interface {
	// OnMutation records a committed structural mutation by operation name.
	OnMutation(op string)

	// OnSnapshot records a history snapshot and the resulting undo depth.
	OnSnapshot(depth int)

	// OnTemplateApply records a template application: grid shape, item
	// count, and the number of pages written.
	OnTemplateApply(cols, rows, items, pages int)

	// OnSync records a product sync and how many elements it touched.
	OnSync(productID string, updated int)
}

// =============================================================================
// Store Hooks
// =============================================================================

// StoreHooks receives events from saved-catalog persistence backends.
type StoreHooks interface {
	// OnPut records a catalog save.
	OnPut(backend, catalogID string, err error)

	// OnGet records a catalog load.
	OnGet(backend, catalogID string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopEditorHooks is a no-op implementation of EditorHooks.
type NoopEditorHooks struct{}

func (NoopEditorHooks) OnMutation(string)                  {}
func (NoopEditorHooks) OnSnapshot(int)                     {}
func (NoopEditorHooks) OnTemplateApply(int, int, int, int) {}
func (NoopEditorHooks) OnSync(string, int)                 {}

// NoopStoreHooks is a no-op implementation of StoreHooks.
type NoopStoreHooks struct{}

func (NoopStoreHooks) OnPut(string, string, error) {}
func (NoopStoreHooks) OnGet(string, string, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	editorHooks EditorHooks = NoopEditorHooks{}
	storeHooks  StoreHooks  = NoopStoreHooks{}
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

// SetStoreHooks registers custom store hooks.
// This should be called once at application startup before any persistence.
func SetStoreHooks(h StoreHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		storeHooks = h
	}
}

// Editor returns the registered editor hooks.
func Editor() EditorHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return editorHooks
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
	editorHooks = NoopEditorHooks{}
	storeHooks = NoopStoreHooks{}
}
