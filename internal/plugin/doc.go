// Package plugin discovers the configuration artifacts and builders
// contributed by a project's dependency chain and collects them into an
// explicit, ordered registry. Discovery is manifest-driven: a dependency
// package opts in by shipping a pyforge-plugin.yaml next to its code. A
// single broken manifest never blocks the rest of the chain.
package plugin
