// Package config manages the global PyForge configuration file
// (~/.pyforge/config.yaml), environment overrides, and access token
// resolution.
package config
