package app

import (
	"errors"

	"github.com/vk/postfmt/internal/boilerplate"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Path            string // header rewritten in place
	Naming          string // boilerplate variant
	BoilerplatePath string // .hcl file or directory replacing the built-in variants

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.Path == "" {
		return nil, errors.New("Path is a required configuration field and cannot be empty")
	}
	if cfg.Naming == "" {
		cfg.Naming = boilerplate.DefaultVariant
	}

	return &cfg, nil
}
