package plugin

import (
	"github.com/pyforge-labs/pyforge/internal/builder"
	"github.com/pyforge-labs/pyforge/internal/conf"
)

// Registry is the explicit, ordered collection of discovered artifact
// definitions and builders. Registration is first-wins per kind: sources
// are enqueued downstream-first (the project itself, then its dependencies
// in declaration order, built-ins last), so a downstream package shadows an
// upstream definition of the same artifact.
type Registry struct {
	files    []FileEntry
	builders []BuilderEntry

	fileKinds    map[string]string // kind → owning source
	builderNames map[string]string // name → owning source
}

// FileEntry pairs an artifact definition with the source that contributed it.
type FileEntry struct {
	Source string
	File   conf.File
}

// BuilderEntry pairs a builder with the source that contributed it.
type BuilderEntry struct {
	Source  string
	Builder builder.Builder
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		fileKinds:    make(map[string]string),
		builderNames: make(map[string]string),
	}
}

// AddFile registers an artifact definition for source. It reports false
// when the kind is already claimed by an earlier (more downstream) source.
func (r *Registry) AddFile(source string, f conf.File) bool {
	if _, taken := r.fileKinds[f.Kind]; taken {
		return false
	}
	r.fileKinds[f.Kind] = source
	r.files = append(r.files, FileEntry{Source: source, File: f})
	return true
}

// AddBuilder registers a builder for source. It reports false when the
// builder name is already claimed.
func (r *Registry) AddBuilder(source string, b builder.Builder) bool {
	if _, taken := r.builderNames[b.Name()]; taken {
		return false
	}
	r.builderNames[b.Name()] = source
	r.builders = append(r.builders, BuilderEntry{Source: source, Builder: b})
	return true
}

// Files returns the effective artifact definitions in registration order.
// The order is stable across runs so reconciliation side effects (directory
// creation, file writes) are reproducible.
func (r *Registry) Files() []FileEntry {
	out := make([]FileEntry, len(r.files))
	copy(out, r.files)
	return out
}

// Builders returns the effective builders in registration order.
func (r *Registry) Builders() []BuilderEntry {
	out := make([]BuilderEntry, len(r.builders))
	copy(out, r.builders)
	return out
}

// Owner returns the source that won the given artifact kind, or "" if the
// kind is unregistered.
func (r *Registry) Owner(kind string) string {
	return r.fileKinds[kind]
}
