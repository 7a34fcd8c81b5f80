package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/postfmt/internal/boilerplate"
	"github.com/vk/postfmt/internal/config"
	"github.com/vk/postfmt/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	logger  *slog.Logger
	config  *Config
	variant *config.Variant
}

// NewApp is the constructor for the main application. It builds an isolated
// logger, loads the boilerplate variants, and resolves the requested one. The
// input file is not touched here, so a bad variant never costs a rewrite.
func NewApp(logW io.Writer, cfg *Config, loader config.Loader) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	var (
		model *config.Model
		err   error
	)
	if cfg.BoilerplatePath != "" {
		model, err = loader.Load(ctx, cfg.BoilerplatePath)
	} else {
		model, err = boilerplate.Default(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load boilerplate: %w", err)
	}
	logger.Debug("Boilerplate loaded.", "variants", model.Names(), "custom", cfg.BoilerplatePath != "")

	variant, err := model.Variant(cfg.Naming)
	if err != nil {
		return nil, err
	}
	logger.Debug("Naming variant selected.", "variant", variant.Name, "description", variant.Description)

	return &App{
		logger:  logger,
		config:  cfg,
		variant: variant,
	}, nil
}

// Variant returns the boilerplate variant this App wraps with. This is
// primarily for testing.
func (a *App) Variant() *config.Variant {
	return a.variant
}
