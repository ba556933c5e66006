package builder

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// SourceArchive is the built-in builder: it packs the project's import
// package into <name>-<version>.tar.gz.
type SourceArchive struct {
	ProjectName string
	Version     string
	PackageDir  string // absolute path of the package to archive
}

func (SourceArchive) Name() string { return "source-archive" }

func (s SourceArchive) CreateArtifacts(tempDir string) error {
	if _, err := os.Stat(s.PackageDir); err != nil {
		return fmt.Errorf("package directory %s: %w", s.PackageDir, err)
	}

	outPath := filepath.Join(tempDir, fmt.Sprintf("%s-%s.tar.gz", s.ProjectName, s.Version))
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating archive %s: %w", outPath, err)
	}
	defer out.Close()

	gz := gzip.NewWriter(out)
	defer gz.Close()
	tw := tar.NewWriter(gz)
	defer tw.Close()

	base := filepath.Base(s.PackageDir)
	return filepath.WalkDir(s.PackageDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || strings.HasSuffix(path, ".pyc") {
			return nil
		}

		rel, err := filepath.Rel(s.PackageDir, path)
		if err != nil {
			return err
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		hdr, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return err
		}
		hdr.Name = filepath.ToSlash(filepath.Join(base, rel))

		if err := tw.WriteHeader(hdr); err != nil {
			return fmt.Errorf("writing archive header for %s: %w", rel, err)
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		if _, err := io.Copy(tw, f); err != nil {
			return fmt.Errorf("archiving %s: %w", rel, err)
		}
		return nil
	})
}
