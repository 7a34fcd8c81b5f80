// Package hcl provides the concrete HCL implementation of the boilerplate
// Loader interface defined in the `config` package. It is responsible for all
// file parsing, schema decoding, and rendering of the header and footer
// templates for each naming variant.
package hcl
