package artifacts

import (
	"github.com/pyforge-labs/pyforge/internal/conf"
)

// Builtin returns the canonical artifact set for a project in reconciliation
// order. The order is stable so that directory-creation side effects are
// reproducible across runs.
func Builtin(p Project) []conf.File {
	return []conf.File{
		Pyproject(p),
		Gitignore(p),
		Readme(p),
		Contributing(p),
		Security(p),
		CIWorkflow(p),
		PyTyped(p),
		Conftest(p),
	}
}
