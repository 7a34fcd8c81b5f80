// Package boilerplate ships the built-in header and footer variants that are
// wrapped around every processed file. The text lives in an embedded HCL
// document and is rendered once per process; callers only ever see the
// resulting immutable config.Model.
package boilerplate
