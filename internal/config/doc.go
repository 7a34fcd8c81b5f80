// Package config defines the format-agnostic boilerplate model for the
// application, along with the Loader interface for reading it from a concrete
// source.
//
// The `config.Model` is the single source of truth for the `postfmt`
// package. Concrete implementations of the Loader interface, such as for HCL,
// are provided in separate packages.
package config
