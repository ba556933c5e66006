// Package pluginspec defines the pyforge-plugin.yaml manifest: the explicit,
// configuration-driven declaration of the config files and builders a
// dependency package contributes. Manifests are schema-validated before use
// and version-gated against the running PyForge version.
package pluginspec
