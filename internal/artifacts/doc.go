// Package artifacts defines the built-in configuration artifacts PyForge
// manages for a project: pyproject.toml, the CI workflow, documentation
// boilerplate, .gitignore, the py.typed marker, and the pytest fixture
// stub. Each constructor binds project metadata into a conf.File
// definition; plugins may override any of them by kind.
package artifacts
