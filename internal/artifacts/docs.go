package artifacts

import (
	"github.com/pyforge-labs/pyforge/internal/conf"
	"github.com/pyforge-labs/pyforge/internal/templates"
)

// markdownFile builds a Markdown artifact rendered from a named template.
// Correctness is the weak non-empty check: after first generation the file
// belongs to the user and is never regenerated over their edits.
func markdownFile(p Project, kind, relPath, tmpl string) conf.File {
	return conf.File{
		Kind:    kind,
		RelPath: relPath,
		Codec:   conf.TextCodec{Extension: ".md"},
		Check:   conf.CheckNonEmpty,
		Desired: func() (any, error) {
			lines, err := templates.Render(tmpl, p)
			if err != nil {
				return nil, err
			}
			return lines, nil
		},
	}
}

// Readme manages README.md.
func Readme(p Project) conf.File {
	return markdownFile(p, "readme", "README.md", "readme.md")
}

// Contributing manages CONTRIBUTING.md.
func Contributing(p Project) conf.File {
	return markdownFile(p, "contributing", "CONTRIBUTING.md", "contributing.md")
}

// Security manages SECURITY.md.
func Security(p Project) conf.File {
	return markdownFile(p, "security", "SECURITY.md", "security.md")
}

// Conftest manages tests/conftest.py, the shared pytest fixture stub.
func Conftest(p Project) conf.File {
	return conf.File{
		Kind:    "conftest",
		RelPath: "tests/conftest.py",
		Codec:   conf.TextCodec{Extension: ".py"},
		Check:   conf.CheckNonEmpty,
		Desired: func() (any, error) {
			lines, err := templates.Render("conftest.py", p)
			if err != nil {
				return nil, err
			}
			return lines, nil
		},
	}
}
