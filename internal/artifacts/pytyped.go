package artifacts

import (
	"path/filepath"

	"github.com/pyforge-labs/pyforge/internal/conf"
	"github.com/pyforge-labs/pyforge/internal/pathres"
)

// PyTyped manages the PEP 561 py.typed marker inside the import package.
// The file is always empty; reconciliation also ensures the package
// directory chain with its __init__.py markers.
func PyTyped(p Project) conf.File {
	rel := filepath.Join(pathres.PackageDir("", p.Package), "py.typed")
	return conf.File{
		Kind:    "py-typed",
		RelPath: rel,
		Codec:   conf.MarkerCodec{Name: "py.typed"},
		Check:   conf.CheckExists,
		Package: p.Package,
		Desired: func() (any, error) {
			return map[string]any{}, nil
		},
	}
}
