package boilerplate

import (
	"context"
	_ "embed"
	"sync"

	"github.com/vk/postfmt/internal/config"
	"github.com/vk/postfmt/internal/hcl"
)

// DefaultVariant is the variant used when no naming convention is requested.
const DefaultVariant = "upper"

// Filename is the name reported in diagnostics for the embedded document.
const Filename = "gglm.hcl"

//go:embed gglm.hcl
var source []byte

var (
	loadOnce sync.Once
	model    *config.Model
	loadErr  error
)

// Source returns a copy of the embedded boilerplate document, e.g. as a
// starting point for a custom -boilerplate file.
func Source() []byte {
	return append([]byte(nil), source...)
}

// Default returns the built-in variant set. The embedded document is parsed
// on the first call only; later calls return the same model.
func Default(ctx context.Context) (*config.Model, error) {
	loadOnce.Do(func() {
		model, loadErr = hcl.NewLoader().LoadSource(ctx, Filename, source)
	})
	return model, loadErr
}
