package wpkit

import "context"

// Store is one webview engine's cookie storage backend.
type Store interface {
	// Engine reports which webview engine owns the store.
	Engine() Engine
	// List returns every cookie currently in the store.
	List(ctx context.Context) ([]Cookie, error)
	// Delete removes one cookie, matched by name, domain and path.
	Delete(ctx context.Context, c Cookie) error
}
