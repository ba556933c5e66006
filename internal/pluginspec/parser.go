package pluginspec

import (
	"fmt"
	"os"

	"github.com/Masterminds/semver/v3"
	"go.yaml.in/yaml/v3"
)

// Parse reads and parses a plugin manifest file.
func Parse(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	return ParseBytes(data, path)
}

// ParseBytes parses manifest YAML. The path is used in error messages only.
func ParseBytes(data []byte, path string) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	if m.Name == "" {
		return nil, fmt.Errorf("manifest %s missing required 'name' field", path)
	}
	return &m, nil
}

// Compatible reports whether the manifest's Requires constraint accepts the
// given PyForge version. An empty constraint accepts everything; a dev
// version that does not parse as semver is also accepted so local builds
// can load any plugin.
func Compatible(m *Manifest, pyforgeVersion string) (bool, error) {
	if m.Requires == "" {
		return true, nil
	}
	constraint, err := semver.NewConstraint(m.Requires)
	if err != nil {
		return false, fmt.Errorf("manifest %s has invalid 'requires' constraint %q: %w", m.Name, m.Requires, err)
	}
	v, err := semver.NewVersion(pyforgeVersion)
	if err != nil {
		return true, nil
	}
	return constraint.Check(v), nil
}
