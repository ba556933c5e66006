// Package pathres converts between dotted Python module identifiers and
// filesystem paths, and resolves package directories under a project root.
// Directory creation is scoped: creating a package directory also ensures
// the __init__.py markers that make it importable.
package pathres
