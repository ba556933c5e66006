package artifacts

import (
	"github.com/pyforge-labs/pyforge/internal/conf"
)

// Pyproject manages pyproject.toml. Existing files are merged additively:
// keys the project owner added or edited are never overwritten, only the
// required keys missing from the document are filled in.
func Pyproject(p Project) conf.File {
	return conf.File{
		Kind:    "pyproject",
		RelPath: "pyproject.toml",
		Codec:   conf.TOMLCodec{},
		Check:   conf.CheckSuperset,
		Desired: func() (any, error) {
			return map[string]any{
				"build-system": map[string]any{
					"requires":      []string{"setuptools>=68"},
					"build-backend": "setuptools.build_meta",
				},
				"project": map[string]any{
					"name":            p.Name,
					"version":         p.Version,
					"description":     p.Description,
					"requires-python": ">=3.9",
					"dependencies":    []string{},
				},
				"tool": map[string]any{
					"pytest": map[string]any{
						"ini_options": map[string]any{
							"testpaths": []string{"tests"},
						},
					},
				},
			}, nil
		},
	}
}
