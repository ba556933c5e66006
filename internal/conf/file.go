package conf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pyforge-labs/pyforge/internal/pathres"
)

// CheckMode selects the correctness predicate applied to an existing file.
type CheckMode int

const (
	// CheckParses: the file exists and parses under its codec.
	CheckParses CheckMode = iota
	// CheckSuperset: the file exists, parses, and contains every key of
	// the desired payload (recursively; values are not compared).
	CheckSuperset
	// CheckNonEmpty: the file exists and has non-whitespace content.
	// Deliberately weak: users may customize generated boilerplate and the
	// customized file stays correct.
	CheckNonEmpty
	// CheckExists: the file exists. Used for empty marker files.
	CheckExists
)

// File describes one managed configuration artifact: where it lives, how it
// is encoded, what it should contain, and how correctness is judged.
// Definitions are stateless; all observable state lives in the file itself.
type File struct {
	// Kind is the stable identity used for plugin override resolution,
	// e.g. "pyproject" or "readme".
	Kind string

	// RelPath is the artifact location relative to the project root.
	RelPath string

	Codec Codec

	// Desired computes the canonical payload. It is re-evaluated on every
	// reconciliation pass and never cached.
	Desired func() (any, error)

	Check CheckMode

	// Package, when set, names the dotted Python package the artifact
	// lives in. Reconciliation then also ensures the package directory
	// chain and its __init__.py markers.
	Package string
}

// Path returns the absolute artifact path under root.
func (f File) Path(root string) string {
	return filepath.Join(root, f.RelPath)
}

// Action reports what a reconciliation pass did.
type Action int

const (
	ActionNone Action = iota
	ActionCreated
	ActionMerged
)

func (a Action) String() string {
	switch a {
	case ActionCreated:
		return "created"
	case ActionMerged:
		return "merged"
	default:
		return "unchanged"
	}
}

// IsCorrect reports whether the artifact on disk satisfies its check mode.
// A file that exists but cannot be parsed yields a MalformedConfigError.
func IsCorrect(root string, f File) (bool, error) {
	path := f.Path(root)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}

	switch f.Check {
	case CheckExists:
		return true, nil

	case CheckNonEmpty:
		return strings.TrimSpace(string(data)) != "", nil

	case CheckParses:
		if _, err := f.Codec.Load(data); err != nil {
			return false, &MalformedConfigError{Path: path, Err: err}
		}
		return true, nil

	case CheckSuperset:
		existing, err := loadMapping(f, path, data)
		if err != nil {
			return false, err
		}
		desired, err := desiredMapping(f)
		if err != nil {
			return false, err
		}
		return hasKeys(existing, desired), nil
	}

	return false, fmt.Errorf("unknown check mode %d for %s", f.Check, f.Kind)
}

// Reconcile brings the artifact on disk to a state consistent with its
// desired content: missing → created with canonical content; present but
// missing required keys (structured formats) → missing keys merged in
// additively; already correct → untouched. Calling Reconcile twice in a row
// performs no further change on the second call.
func Reconcile(root string, f File) (Action, error) {
	path := f.Path(root)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return create(root, f)
	}
	if err != nil {
		return ActionNone, fmt.Errorf("reading %s: %w", path, err)
	}

	switch f.Check {
	case CheckExists:
		return ActionNone, nil

	case CheckNonEmpty:
		if strings.TrimSpace(string(data)) != "" {
			return ActionNone, nil
		}
		// Exists but blank: treat like a missing file.
		return create(root, f)

	case CheckParses:
		if _, err := f.Codec.Load(data); err != nil {
			return ActionNone, &MalformedConfigError{Path: path, Err: err}
		}
		return ActionNone, nil

	case CheckSuperset:
		existing, err := loadMapping(f, path, data)
		if err != nil {
			return ActionNone, err
		}
		desired, err := desiredMapping(f)
		if err != nil {
			return ActionNone, err
		}
		if !mergeMissing(existing, desired) {
			return ActionNone, nil
		}
		if err := write(path, f, existing); err != nil {
			return ActionNone, err
		}
		return ActionMerged, nil
	}

	return ActionNone, fmt.Errorf("unknown check mode %d for %s", f.Check, f.Kind)
}

func create(root string, f File) (Action, error) {
	payload, err := f.Desired()
	if err != nil {
		return ActionNone, fmt.Errorf("computing desired content for %s: %w", f.Kind, err)
	}

	if f.Package != "" {
		if _, err := pathres.EnsurePackageDir(root, f.Package); err != nil {
			return ActionNone, err
		}
	}

	path := f.Path(root)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return ActionNone, fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := write(path, f, payload); err != nil {
		return ActionNone, err
	}
	return ActionCreated, nil
}

func write(path string, f File, payload any) error {
	out, err := f.Codec.Dump(payload)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func loadMapping(f File, path string, data []byte) (map[string]any, error) {
	payload, err := f.Codec.Load(data)
	if err != nil {
		return nil, &MalformedConfigError{Path: path, Err: err}
	}
	m, ok := asStringMap(payload)
	if !ok {
		return nil, &MalformedConfigError{Path: path, Err: fmt.Errorf("document root is %T, expected a mapping", payload)}
	}
	return m, nil
}

func desiredMapping(f File) (map[string]any, error) {
	payload, err := f.Desired()
	if err != nil {
		return nil, fmt.Errorf("computing desired content for %s: %w", f.Kind, err)
	}
	m, ok := asStringMap(payload)
	if !ok {
		return nil, &TypeMismatchError{Format: f.Codec.Ext(), Want: "a string-keyed mapping", Got: payload}
	}
	return m, nil
}

// mergeMissing adds keys present in desired but absent from existing,
// recursing into nested mappings. Existing values and user-added keys are
// never touched. It reports whether existing was changed.
func mergeMissing(existing, desired map[string]any) bool {
	changed := false
	for k, dv := range desired {
		ev, ok := existing[k]
		if !ok {
			existing[k] = dv
			changed = true
			continue
		}
		em, eok := ev.(map[string]any)
		dm, dok := dv.(map[string]any)
		if eok && dok {
			if mergeMissing(em, dm) {
				changed = true
			}
		}
		// Scalar or shape mismatch: the existing value wins.
	}
	return changed
}

// hasKeys reports whether existing contains every key of desired,
// recursing into nested mappings. Values are not compared.
func hasKeys(existing, desired map[string]any) bool {
	for k, dv := range desired {
		ev, ok := existing[k]
		if !ok {
			return false
		}
		if dm, dok := dv.(map[string]any); dok {
			em, eok := ev.(map[string]any)
			if !eok || !hasKeys(em, dm) {
				return false
			}
		}
	}
	return true
}
