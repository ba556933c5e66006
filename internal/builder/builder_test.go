package builder

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// recordingBuilder remembers its staging directory so tests can verify it
// was released.
type recordingBuilder struct {
	tempDir string
	files   map[string]string
	fail    error
}

func (b *recordingBuilder) Name() string { return "recording" }

func (b *recordingBuilder) CreateArtifacts(tempDir string) error {
	b.tempDir = tempDir
	if b.fail != nil {
		return b.fail
	}
	for name, content := range b.files {
		if err := os.WriteFile(filepath.Join(tempDir, name), []byte(content), 0o644); err != nil {
			return err
		}
	}
	return nil
}

func TestGetArtifacts_PlatformTagging(t *testing.T) {
	dist := filepath.Join(t.TempDir(), "dist")
	b := &recordingBuilder{files: map[string]string{"build.txt": "payload"}}

	paths, err := GetArtifacts(b, dist)
	if err != nil {
		t.Fatalf("GetArtifacts() error = %v", err)
	}

	want := filepath.Join(dist, "build-"+PlatformTag()+".txt")
	if len(paths) != 1 || paths[0] != want {
		t.Errorf("paths = %v, want [%s]", paths, want)
	}

	data, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("artifact missing: %v", err)
	}
	if string(data) != "payload" {
		t.Errorf("artifact content = %q", data)
	}

	if _, err := os.Stat(b.tempDir); !os.IsNotExist(err) {
		t.Errorf("staging directory %s not released", b.tempDir)
	}
}

func TestGetArtifacts_FailureReleasesTempDir(t *testing.T) {
	dist := filepath.Join(t.TempDir(), "dist")
	b := &recordingBuilder{fail: fmt.Errorf("boom")}

	_, err := GetArtifacts(b, dist)
	var buildErr *BuildError
	if !errors.As(err, &buildErr) {
		t.Fatalf("error = %v, want BuildError", err)
	}
	if buildErr.Builder != "recording" {
		t.Errorf("BuildError.Builder = %q", buildErr.Builder)
	}

	if _, err := os.Stat(b.tempDir); !os.IsNotExist(err) {
		t.Errorf("staging directory %s not released after failure", b.tempDir)
	}
}

func TestGetArtifacts_CreatesOutputDir(t *testing.T) {
	dist := filepath.Join(t.TempDir(), "nested", "dist")
	b := &recordingBuilder{files: map[string]string{"a.txt": "a"}}

	if _, err := GetArtifacts(b, dist); err != nil {
		t.Fatalf("GetArtifacts() error = %v", err)
	}
	if _, err := os.Stat(dist); err != nil {
		t.Errorf("output directory not created: %v", err)
	}
}

func TestTaggedName(t *testing.T) {
	tag := PlatformTag()
	tests := []struct {
		in   string
		want string
	}{
		{"build.txt", "build-" + tag + ".txt"},
		{"demo-0.1.0.tar.gz", "demo-0.1.0-" + tag + ".tar.gz"},
		{"noext", "noext-" + tag},
	}
	for _, tt := range tests {
		if got := taggedName(tt.in); got != tt.want {
			t.Errorf("taggedName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPlatformTag(t *testing.T) {
	tag := PlatformTag()
	switch tag {
	case "Linux", "Darwin", "Windows":
	default:
		t.Errorf("PlatformTag() = %q, want Linux, Darwin, or Windows", tag)
	}
}

func TestStaticFiles(t *testing.T) {
	dir := t.TempDir()
	b := StaticFiles{BuilderName: "docs", Files: map[string]string{
		"manual.txt": "content",
	}}

	if err := b.CreateArtifacts(dir); err != nil {
		t.Fatalf("CreateArtifacts() error = %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "manual.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "content" {
		t.Errorf("content = %q", data)
	}
}

func TestStaticFiles_RejectsPathTraversal(t *testing.T) {
	b := StaticFiles{BuilderName: "bad", Files: map[string]string{
		"../escape.txt": "x",
	}}
	if err := b.CreateArtifacts(t.TempDir()); err == nil {
		t.Error("expected error for artifact name with path separators")
	}
}

func TestSourceArchive(t *testing.T) {
	root := t.TempDir()
	pkg := filepath.Join(root, "demo_tool")
	if err := os.MkdirAll(pkg, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(pkg, "__init__.py"), []byte("VERSION = '0.1.0'\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	dist := filepath.Join(root, "dist")
	b := SourceArchive{ProjectName: "demo-tool", Version: "0.1.0", PackageDir: pkg}

	paths, err := GetArtifacts(b, dist)
	if err != nil {
		t.Fatalf("GetArtifacts() error = %v", err)
	}
	if len(paths) != 1 {
		t.Fatalf("paths = %v", paths)
	}
	name := filepath.Base(paths[0])
	if !strings.HasPrefix(name, "demo-tool-0.1.0-") || !strings.HasSuffix(name, ".tar.gz") {
		t.Errorf("archive name = %q", name)
	}
}

func TestSourceArchive_MissingPackage(t *testing.T) {
	b := SourceArchive{ProjectName: "x", Version: "0.1.0", PackageDir: filepath.Join(t.TempDir(), "absent")}
	_, err := GetArtifacts(b, t.TempDir())
	var buildErr *BuildError
	if !errors.As(err, &buildErr) {
		t.Fatalf("error = %v, want BuildError", err)
	}
}
