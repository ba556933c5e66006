package setup

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/pyforge-labs/pyforge/internal/artifacts"
	"github.com/pyforge-labs/pyforge/internal/conf"
	"github.com/pyforge-labs/pyforge/internal/plugin"
)

// Options configures a reconciliation run.
type Options struct {
	// SearchPaths are handed through to plugin discovery.
	SearchPaths []string

	// Version is the running PyForge version for plugin gating.
	Version string
}

// FileResult records what happened to one artifact.
type FileResult struct {
	Kind   string
	Source string
	Path   string
	Action conf.Action
	Err    error
}

// Report aggregates the outcome of a run.
type Report struct {
	Files    []FileResult
	Warnings []*plugin.LoadError // broken plugin manifests, non-fatal
}

// Failed reports whether any artifact reconciliation failed.
func (r *Report) Failed() bool {
	for _, f := range r.Files {
		if f.Err != nil {
			return true
		}
	}
	return false
}

// Run discovers every artifact definition for the project and reconciles
// each one in registry order. Plugin manifest failures are surfaced as
// warnings on the report; reconciliation failures are recorded per artifact
// and joined into the returned error. One broken artifact does not stop the
// rest from converging.
func Run(p artifacts.Project, opts Options) (*Report, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid project metadata: %w", err)
	}

	discovered := plugin.Discover(p, plugin.Options{
		SearchPaths: opts.SearchPaths,
		Version:     opts.Version,
	})

	report := &Report{Warnings: discovered.Errors}

	var errs []error
	for _, entry := range discovered.Registry.Files() {
		action, err := conf.Reconcile(p.Root, entry.File)
		report.Files = append(report.Files, FileResult{
			Kind:   entry.File.Kind,
			Source: entry.Source,
			Path:   entry.File.RelPath,
			Action: action,
			Err:    err,
		})
		if err != nil {
			log.Error().Err(err).Str("kind", entry.File.Kind).Msg("reconciliation failed")
			errs = append(errs, fmt.Errorf("%s: %w", entry.File.Kind, err))
			continue
		}
		log.Debug().Str("kind", entry.File.Kind).Str("source", entry.Source).
			Stringer("action", action).Msg("reconciled")
	}

	return report, errors.Join(errs...)
}
