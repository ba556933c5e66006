package builder

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// StaticFiles is the manifest-declared builder: every entry of Files is
// written verbatim into the staging directory. Plugins use it to ship small
// generated artifacts (schemas, version stamps) alongside the project build.
type StaticFiles struct {
	BuilderName string
	Files       map[string]string // filename → literal content
}

func (s StaticFiles) Name() string { return s.BuilderName }

func (s StaticFiles) CreateArtifacts(tempDir string) error {
	// Write in sorted order so failures are reproducible.
	names := make([]string, 0, len(s.Files))
	for name := range s.Files {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if filepath.Base(name) != name {
			return fmt.Errorf("artifact name %q must not contain path separators", name)
		}
		path := filepath.Join(tempDir, name)
		if err := os.WriteFile(path, []byte(s.Files[name]), 0o644); err != nil {
			return fmt.Errorf("writing artifact %s: %w", name, err)
		}
	}
	return nil
}
