// Package cli wires the cobra command tree: init, setup, build, test,
// config, and version. Commands stay thin; the work lives in the setup,
// plugin, and builder packages.
package cli
