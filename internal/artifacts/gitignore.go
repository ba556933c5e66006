package artifacts

import (
	"github.com/pyforge-labs/pyforge/internal/conf"
)

// gitignoreLines is the canonical ignore set for a Python project.
var gitignoreLines = []string{
	"__pycache__/",
	"*.py[cod]",
	"*.egg-info/",
	".eggs/",
	"build/",
	"dist/",
	".venv/",
	"venv/",
	".pytest_cache/",
	".mypy_cache/",
	".coverage",
	"htmlcov/",
	".env",
}

// Gitignore manages .gitignore. Non-empty check: users extend the file
// freely after generation.
func Gitignore(p Project) conf.File {
	return conf.File{
		Kind:    "gitignore",
		RelPath: ".gitignore",
		Codec:   conf.TextCodec{},
		Check:   conf.CheckNonEmpty,
		Desired: func() (any, error) {
			return gitignoreLines, nil
		},
	}
}
