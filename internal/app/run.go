package app

import (
	"context"
	"fmt"

	"github.com/vk/postfmt/internal/ctxlog"
	"github.com/vk/postfmt/internal/postfmt"
)

// Run rewrites the configured file in place.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	ctx = ctxlog.With(ctx, "path", a.config.Path, "variant", a.variant.Name)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.")

	if err := postfmt.Rewrite(ctx, a.config.Path, a.variant); err != nil {
		return fmt.Errorf("post-format failed: %w", err)
	}

	logger.Info("Header post-formatted.")
	return nil
}
