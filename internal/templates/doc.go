// Package templates supplies the literal boilerplate text emitted into
// generated documentation and fixture files. Templates are embedded in the
// binary; when a template base URL is configured, a fresher remote copy is
// preferred with silent fallback to the embedded one.
package templates
