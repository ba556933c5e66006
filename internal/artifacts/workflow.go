package artifacts

import (
	"github.com/pyforge-labs/pyforge/internal/conf"
)

// CIWorkflow manages the GitHub Actions workflow. The check is parse-only:
// once a valid workflow exists, its job graph belongs to the user.
func CIWorkflow(p Project) conf.File {
	return conf.File{
		Kind:    "ci-workflow",
		RelPath: ".github/workflows/ci.yaml",
		Codec:   conf.YAMLCodec{},
		Check:   conf.CheckParses,
		Desired: func() (any, error) {
			return map[string]any{
				"name": "CI",
				"on": map[string]any{
					"push":         map[string]any{"branches": []string{"main"}},
					"pull_request": map[string]any{},
				},
				"jobs": map[string]any{
					"test": map[string]any{
						"runs-on": "ubuntu-latest",
						"strategy": map[string]any{
							"matrix": map[string]any{
								"python-version": []string{"3.9", "3.11", "3.12"},
							},
						},
						"steps": []any{
							map[string]any{"uses": "actions/checkout@v4"},
							map[string]any{
								"uses": "actions/setup-python@v5",
								"with": map[string]any{"python-version": "${{ matrix.python-version }}"},
							},
							map[string]any{"run": "pip install -e \".[dev]\""},
							map[string]any{"run": "pytest"},
						},
					},
				},
			}, nil
		},
	}
}
