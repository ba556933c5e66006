package builder

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Builder produces one or more distributable artifacts into a staging
// directory. Implementations write files into the tempDir they are given
// and never touch the output directory themselves.
type Builder interface {
	Name() string
	CreateArtifacts(tempDir string) error
}

// BuildError reports a failed artifact build. The staging directory has
// already been released by the time a BuildError propagates.
type BuildError struct {
	Builder string
	Err     error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("builder %s failed: %v", e.Builder, e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }

// GetArtifacts runs a builder inside a fresh temporary directory, renames
// every produced file to embed the current platform tag, moves the results
// into distDir (created if absent), and returns the final paths. The
// temporary directory is removed on every exit path.
func GetArtifacts(b Builder, distDir string) ([]string, error) {
	tempDir, err := os.MkdirTemp("", "pyforge-build-")
	if err != nil {
		return nil, fmt.Errorf("creating staging directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	if err := b.CreateArtifacts(tempDir); err != nil {
		return nil, &BuildError{Builder: b.Name(), Err: err}
	}

	entries, err := os.ReadDir(tempDir)
	if err != nil {
		return nil, &BuildError{Builder: b.Name(), Err: fmt.Errorf("reading staging directory: %w", err)}
	}

	if err := os.MkdirAll(distDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", distDir, err)
	}

	var final []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		src := filepath.Join(tempDir, entry.Name())
		dst := filepath.Join(distDir, taggedName(entry.Name()))
		if err := moveFile(src, dst); err != nil {
			return nil, &BuildError{Builder: b.Name(), Err: err}
		}
		final = append(final, dst)
	}

	return final, nil
}

// taggedName inserts the platform tag before the extension:
// "build.txt" → "build-Linux.txt". Multi-part extensions like .tar.gz are
// kept intact.
func taggedName(name string) string {
	ext := ""
	stem := name
	if strings.HasSuffix(name, ".tar.gz") {
		ext = ".tar.gz"
		stem = strings.TrimSuffix(name, ext)
	} else if e := filepath.Ext(name); e != "" {
		ext = e
		stem = strings.TrimSuffix(name, e)
	}
	return stem + "-" + PlatformTag() + ext
}

// moveFile renames src to dst, falling back to copy+remove when the rename
// crosses filesystems (temp dirs often live on a different mount).
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copying %s to %s: %w", src, dst, err)
	}
	return os.Remove(src)
}
