package plugin

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/pyforge-labs/pyforge/internal/artifacts"
	"github.com/pyforge-labs/pyforge/internal/branding"
	"github.com/pyforge-labs/pyforge/internal/builder"
	"github.com/pyforge-labs/pyforge/internal/conf"
	"github.com/pyforge-labs/pyforge/internal/pathres"
	"github.com/pyforge-labs/pyforge/internal/pluginspec"
)

// LoadError records a plugin manifest that could not be loaded. Load errors
// never abort discovery; they are collected and surfaced on the Result.
type LoadError struct {
	Package string
	Path    string
	Err     error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("plugin %s (%s): %v", e.Package, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Options configures a discovery pass.
type Options struct {
	// SearchPaths are the directories installed dependency packages are
	// resolved in, tried in order.
	SearchPaths []string

	// Version is the running PyForge version used to gate plugin
	// 'requires' constraints.
	Version string
}

// Result is the outcome of a discovery pass: the effective registry plus
// every manifest failure encountered along the way.
type Result struct {
	Registry *Registry
	Errors   []*LoadError
}

// Discover builds the effective registry for a project. Precedence,
// downstream first:
//
//  1. the project's own manifest (pyforge-plugin.yaml at the root),
//  2. each declared dependency in pyproject declaration order, recursing
//     into plugin-declared dependencies depth-first,
//  3. the built-in artifact set and source-archive builder.
//
// The first registration wins per artifact kind, so anything upstream or
// built-in can be overridden downstream. A dependency without a manifest is
// simply not a plugin; a dependency whose manifest is broken yields a
// collected LoadError.
func Discover(p artifacts.Project, opts Options) *Result {
	res := &Result{Registry: NewRegistry()}
	seen := make(map[string]bool)

	// The project's own manifest has the highest precedence.
	ownManifest := filepath.Join(p.Root, branding.ManifestName())
	if _, err := os.Stat(ownManifest); err == nil {
		loadManifest(res, p.Name, ownManifest, opts, seen)
	}

	deps, err := artifacts.Dependencies(p.Root)
	if err != nil {
		res.Errors = append(res.Errors, &LoadError{Package: p.Name, Path: p.Root, Err: err})
	}
	walkDependencies(res, deps, opts, seen)

	// Built-ins register last so any plugin can shadow them.
	for _, f := range artifacts.Builtin(p) {
		res.Registry.AddFile("builtin", f)
	}
	res.Registry.AddBuilder("builtin", builder.SourceArchive{
		ProjectName: p.Name,
		Version:     p.Version,
		PackageDir:  pathres.PackageDir(p.Root, p.Package),
	})

	return res
}

func walkDependencies(res *Result, deps []string, opts Options, seen map[string]bool) {
	for _, dep := range deps {
		if seen[dep] {
			continue
		}
		seen[dep] = true

		dir, ok := locatePackage(dep, opts.SearchPaths)
		if !ok {
			log.Debug().Str("package", dep).Msg("dependency not installed locally, skipping")
			continue
		}

		manifestPath := filepath.Join(dir, branding.ManifestName())
		if _, err := os.Stat(manifestPath); err != nil {
			log.Debug().Str("package", dep).Msg("dependency carries no plugin manifest")
			continue
		}

		loadManifest(res, dep, manifestPath, opts, seen)
	}
}

// loadManifest validates, gates, and registers one manifest, then recurses
// into the plugin's own declared dependencies.
func loadManifest(res *Result, pkg, path string, opts Options, seen map[string]bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		res.Errors = append(res.Errors, &LoadError{Package: pkg, Path: path, Err: err})
		return
	}

	valResult, err := pluginspec.Validate(data)
	if err != nil {
		res.Errors = append(res.Errors, &LoadError{Package: pkg, Path: path, Err: err})
		return
	}
	if !valResult.Valid {
		res.Errors = append(res.Errors, &LoadError{Package: pkg, Path: path, Err: issuesError(valResult.Issues)})
		return
	}

	m, err := pluginspec.ParseBytes(data, path)
	if err != nil {
		res.Errors = append(res.Errors, &LoadError{Package: pkg, Path: path, Err: err})
		return
	}

	compatible, err := pluginspec.Compatible(m, opts.Version)
	if err != nil {
		res.Errors = append(res.Errors, &LoadError{Package: pkg, Path: path, Err: err})
		return
	}
	if !compatible {
		res.Errors = append(res.Errors, &LoadError{
			Package: pkg,
			Path:    path,
			Err:     fmt.Errorf("requires pyforge %s, running %s", m.Requires, opts.Version),
		})
		return
	}

	log.Debug().Str("plugin", m.Name).Str("version", m.Version).Msg("loading plugin manifest")

	for _, spec := range m.ConfigFiles {
		f, err := fileFromSpec(spec)
		if err != nil {
			res.Errors = append(res.Errors, &LoadError{Package: pkg, Path: path, Err: err})
			continue
		}
		if !res.Registry.AddFile(m.Name, f) {
			log.Debug().Str("plugin", m.Name).Str("kind", spec.Kind).
				Str("owner", res.Registry.Owner(spec.Kind)).Msg("artifact kind already claimed downstream")
		}
	}

	for _, spec := range m.Builders {
		res.Registry.AddBuilder(m.Name, builder.StaticFiles{BuilderName: spec.Name, Files: spec.Files})
	}

	walkDependencies(res, m.Dependencies, opts, seen)
}

// fileFromSpec converts a declarative manifest entry into an artifact
// definition.
func fileFromSpec(spec pluginspec.ConfigFileSpec) (conf.File, error) {
	var codec conf.Codec
	check := conf.CheckParses

	switch spec.Format {
	case "toml":
		codec = conf.TOMLCodec{}
		check = conf.CheckSuperset
	case "yaml":
		codec = conf.YAMLCodec{}
		check = conf.CheckSuperset
	case "json":
		codec = conf.JSONCodec{}
		check = conf.CheckSuperset
	case "text":
		codec = conf.TextCodec{Extension: filepath.Ext(spec.Path)}
		check = conf.CheckNonEmpty
	case "markdown":
		codec = conf.TextCodec{Extension: ".md"}
		check = conf.CheckNonEmpty
	case "marker":
		codec = conf.MarkerCodec{Name: filepath.Base(spec.Path)}
		check = conf.CheckExists
	default:
		return conf.File{}, fmt.Errorf("config file %s has unknown format %q", spec.Kind, spec.Format)
	}

	if spec.Check != "" {
		switch spec.Check {
		case "parses":
			check = conf.CheckParses
		case "superset":
			check = conf.CheckSuperset
		case "nonempty":
			check = conf.CheckNonEmpty
		case "exists":
			check = conf.CheckExists
		default:
			return conf.File{}, fmt.Errorf("config file %s has unknown check %q", spec.Kind, spec.Check)
		}
	}

	desired := desiredFromSpec(spec)
	return conf.File{
		Kind:    spec.Kind,
		RelPath: filepath.FromSlash(spec.Path),
		Codec:   codec,
		Check:   check,
		Desired: desired,
	}, nil
}

func desiredFromSpec(spec pluginspec.ConfigFileSpec) func() (any, error) {
	switch spec.Format {
	case "text", "markdown":
		lines := spec.Lines
		return func() (any, error) { return lines, nil }
	case "marker":
		return func() (any, error) { return map[string]any{}, nil }
	default:
		content := spec.Content
		return func() (any, error) {
			if content == nil {
				return map[string]any{}, nil
			}
			return content, nil
		}
	}
}

// locatePackage resolves an installed dependency to a directory. Both the
// distribution name and its underscore form are tried, since Python import
// packages conventionally replace dashes.
func locatePackage(name string, searchPaths []string) (string, bool) {
	candidates := []string{name, strings.ReplaceAll(name, "-", "_")}
	for _, base := range searchPaths {
		for _, cand := range candidates {
			dir := filepath.Join(base, cand)
			if info, err := os.Stat(dir); err == nil && info.IsDir() {
				return dir, true
			}
		}
	}
	return "", false
}

func issuesError(issues []pluginspec.ValidationIssue) error {
	parts := make([]string, 0, len(issues))
	for _, issue := range issues {
		msg := issue.Message
		if issue.Path != "" {
			msg = issue.Path + ": " + msg
		}
		parts = append(parts, msg)
	}
	return fmt.Errorf("manifest failed schema validation: %s", strings.Join(parts, "; "))
}
