package pathres

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ModulePath converts a dotted module identifier into a source file path
// relative to the project root, e.g. "pkg.sub.mod" → "pkg/sub/mod.py".
func ModulePath(dotted string) string {
	return filepath.Join(strings.Split(dotted, ".")...) + ".py"
}

// ModuleName converts a source file path relative to the project root into
// a dotted module identifier, e.g. "pkg/sub/mod.py" → "pkg.sub.mod".
func ModuleName(relPath string) string {
	trimmed := strings.TrimSuffix(relPath, ".py")
	trimmed = strings.TrimSuffix(trimmed, string(filepath.Separator)+"__init__")
	return strings.Join(strings.Split(filepath.ToSlash(trimmed), "/"), ".")
}

// PackageDir returns the directory of a dotted package under root,
// e.g. PackageDir("/p", "pkg.sub") → "/p/pkg/sub".
func PackageDir(root, dotted string) string {
	return filepath.Join(root, filepath.Join(strings.Split(dotted, ".")...))
}

// EnsurePackageDir creates the directory chain for a dotted package under
// root. Every package directory in the chain gets an __init__.py marker so
// the result is importable; existing markers are left alone.
func EnsurePackageDir(root, dotted string) (string, error) {
	dir := root
	for _, part := range strings.Split(dotted, ".") {
		dir = filepath.Join(dir, part)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("creating package directory %s: %w", dir, err)
		}
		initPath := filepath.Join(dir, "__init__.py")
		if _, err := os.Stat(initPath); os.IsNotExist(err) {
			if err := os.WriteFile(initPath, []byte{}, 0o644); err != nil {
				return "", fmt.Errorf("creating package marker %s: %w", initPath, err)
			}
		}
	}
	return dir, nil
}
