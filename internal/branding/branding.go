// Package branding provides compile-time identity values for the CLI.
//
// Forkers edit branding.yaml in this package, then rebuild. Go's
// //go:embed bakes the values into the binary.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName         string `yaml:"cli_name"`
	DisplayName     string `yaml:"display_name"`
	Description     string `yaml:"description"`
	HomeDir         string `yaml:"home_dir"`
	EnvPrefix       string `yaml:"env_prefix"`
	GoModule        string `yaml:"go_module"`
	TemplateBaseURL string `yaml:"template_base_url"`
	ManifestName    string `yaml:"manifest_name"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:         "pyforge",
			DisplayName:     "PyForge",
			Description:     "Scaffold generator and config reconciler for Python projects",
			HomeDir:         ".pyforge",
			EnvPrefix:       "PYFORGE",
			GoModule:        "github.com/pyforge-labs/pyforge",
			TemplateBaseURL: "",
			ManifestName:    "pyforge-plugin.yaml",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "pyforge").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "PyForge").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".pyforge").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "PYFORGE").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Used by rebrand scripts, not at runtime.
func GoModule() string { load(); return defaults.GoModule }

// TemplateBaseURL returns the optional remote template base URL.
// Empty means templates come only from the embedded copies.
func TemplateBaseURL() string { load(); return defaults.TemplateBaseURL }

// ManifestName returns the plugin manifest filename looked up inside
// dependency packages (e.g., "pyforge-plugin.yaml").
func ManifestName() string { load(); return defaults.ManifestName }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("TOKEN") → "PYFORGE_TOKEN".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
