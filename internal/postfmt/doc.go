// Package postfmt is the post-formatting pass for the generated gglm header.
//
// It drops the generator's directive lines (first byte '#'), spaces out
// function bodies and constants by appending a blank line after any line that
// starts with '}' or "const", and wraps the result in a boilerplate variant.
// The rules are purely textual; no C is parsed.
package postfmt
