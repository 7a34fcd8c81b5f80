package config

import "context"

// Loader is the interface for a format-specific boilerplate loader.
type Loader interface {
	// Load reads every boilerplate document found under the given paths
	// (files or directories) and renders them into a Model.
	Load(ctx context.Context, paths ...string) (*Model, error)

	// LoadSource renders a single in-memory document. The filename is only
	// used in diagnostics.
	LoadSource(ctx context.Context, filename string, src []byte) (*Model, error)
}
