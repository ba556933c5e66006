package artifacts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/pyforge-labs/pyforge/internal/conf"
)

// Project holds the metadata every artifact's desired content is computed
// from.
type Project struct {
	Root        string // absolute project root directory
	Name        string // distribution name, e.g. "my-tool"
	Package     string // dotted import package, e.g. "my_tool"
	Version     string // semver, e.g. "0.1.0"
	Description string
	Repo        string // repository URL, may be empty
}

// Validate checks that the metadata is complete enough to generate from.
func (p Project) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("project name must not be empty")
	}
	if p.Package == "" {
		return fmt.Errorf("project package must not be empty")
	}
	if _, err := semver.NewVersion(p.Version); err != nil {
		return fmt.Errorf("project version %q is not valid semver: %w", p.Version, err)
	}
	return nil
}

// New derives a Project from a root directory and a distribution name,
// filling sensible defaults for the rest.
func New(root, name string) Project {
	if name == "" {
		name = filepath.Base(root)
	}
	return Project{
		Root:        root,
		Name:        name,
		Package:     strings.ReplaceAll(strings.ToLower(name), "-", "_"),
		Version:     "0.1.0",
		Description: name,
	}
}

// Load reads project metadata from an existing pyproject.toml under root.
// A missing pyproject yields a derived default Project rather than an error
// so that setup can bootstrap a bare directory.
func Load(root string) (Project, error) {
	data, err := os.ReadFile(filepath.Join(root, "pyproject.toml"))
	if os.IsNotExist(err) {
		return New(root, ""), nil
	}
	if err != nil {
		return Project{}, fmt.Errorf("reading pyproject.toml: %w", err)
	}

	payload, err := conf.TOMLCodec{}.Load(data)
	if err != nil {
		return Project{}, &conf.MalformedConfigError{Path: filepath.Join(root, "pyproject.toml"), Err: err}
	}

	p := New(root, "")
	doc, _ := payload.(map[string]any)
	proj, _ := doc["project"].(map[string]any)
	if name, ok := proj["name"].(string); ok && name != "" {
		p.Name = name
		p.Package = strings.ReplaceAll(strings.ToLower(name), "-", "_")
	}
	if version, ok := proj["version"].(string); ok && version != "" {
		p.Version = version
	}
	if desc, ok := proj["description"].(string); ok {
		p.Description = desc
	}
	return p, nil
}

// Dependencies returns the normalized names of the project's declared
// dependencies from pyproject.toml, in declaration order. Version
// specifiers and extras are stripped: "requests>=2.0" → "requests".
func Dependencies(root string) ([]string, error) {
	data, err := os.ReadFile(filepath.Join(root, "pyproject.toml"))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading pyproject.toml: %w", err)
	}

	payload, err := conf.TOMLCodec{}.Load(data)
	if err != nil {
		return nil, &conf.MalformedConfigError{Path: filepath.Join(root, "pyproject.toml"), Err: err}
	}

	doc, _ := payload.(map[string]any)
	proj, _ := doc["project"].(map[string]any)
	raw, _ := proj["dependencies"].([]any)

	var deps []string
	for _, entry := range raw {
		s, ok := entry.(string)
		if !ok {
			continue
		}
		if name := NormalizeRequirement(s); name != "" {
			deps = append(deps, name)
		}
	}
	return deps, nil
}

// NormalizeRequirement reduces a PEP 508 requirement string to its bare
// distribution name: "requests[socks]>=2.0; python_version>'3'" → "requests".
func NormalizeRequirement(req string) string {
	name := strings.TrimSpace(req)
	if i := strings.IndexAny(name, " <>=!~[;("); i >= 0 {
		name = name[:i]
	}
	return strings.TrimSpace(name)
}
