package conf

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func tomlFile(desired map[string]any) File {
	return File{
		Kind:    "settings",
		RelPath: "settings.toml",
		Codec:   TOMLCodec{},
		Check:   CheckSuperset,
		Desired: func() (any, error) { return desired, nil },
	}
}

func markdownFile(lines []string) File {
	return File{
		Kind:    "notes",
		RelPath: "NOTES.md",
		Codec:   TextCodec{Extension: ".md"},
		Check:   CheckNonEmpty,
		Desired: func() (any, error) { return lines, nil },
	}
}

func TestReconcile_CreatesMissingFile(t *testing.T) {
	root := t.TempDir()
	f := tomlFile(map[string]any{"key": "value"})

	action, err := Reconcile(root, f)
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}
	if action != ActionCreated {
		t.Errorf("action = %v, want created", action)
	}

	correct, err := IsCorrect(root, f)
	if err != nil {
		t.Fatalf("IsCorrect() error = %v", err)
	}
	if !correct {
		t.Error("file should be correct after creation")
	}
}

func TestReconcile_Idempotent(t *testing.T) {
	root := t.TempDir()
	f := tomlFile(map[string]any{
		"project": map[string]any{"name": "demo", "version": "0.1.0"},
	})

	if _, err := Reconcile(root, f); err != nil {
		t.Fatalf("first Reconcile() error = %v", err)
	}
	first, err := os.ReadFile(f.Path(root))
	if err != nil {
		t.Fatal(err)
	}

	action, err := Reconcile(root, f)
	if err != nil {
		t.Fatalf("second Reconcile() error = %v", err)
	}
	if action != ActionNone {
		t.Errorf("second reconcile action = %v, want unchanged", action)
	}

	second, err := os.ReadFile(f.Path(root))
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != string(second) {
		t.Errorf("file changed on second reconcile:\nfirst:\n%s\nsecond:\n%s", first, second)
	}
}

func TestReconcile_AdditiveMerge(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "settings.toml")
	if err := os.WriteFile(path, []byte("other = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	f := tomlFile(map[string]any{"key": "value"})
	action, err := Reconcile(root, f)
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}
	if action != ActionMerged {
		t.Errorf("action = %v, want merged", action)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	payload, err := TOMLCodec{}.Load(data)
	if err != nil {
		t.Fatal(err)
	}
	m := payload.(map[string]any)
	if m["other"] != int64(1) {
		t.Errorf("existing key lost: other = %v", m["other"])
	}
	if m["key"] != "value" {
		t.Errorf("missing key not added: key = %v", m["key"])
	}
}

func TestReconcile_MergePreservesExistingValues(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "settings.toml")
	if err := os.WriteFile(path, []byte("[project]\nname = \"custom\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	f := tomlFile(map[string]any{
		"project": map[string]any{"name": "generated", "version": "0.1.0"},
	})
	if _, err := Reconcile(root, f); err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}

	data, _ := os.ReadFile(path)
	payload, err := TOMLCodec{}.Load(data)
	if err != nil {
		t.Fatal(err)
	}
	proj := payload.(map[string]any)["project"].(map[string]any)
	if proj["name"] != "custom" {
		t.Errorf("user value overwritten: name = %v", proj["name"])
	}
	if proj["version"] != "0.1.0" {
		t.Errorf("missing nested key not added: version = %v", proj["version"])
	}
}

func TestReconcile_MalformedFile(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "settings.toml")
	if err := os.WriteFile(path, []byte("= not toml ="), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Reconcile(root, tomlFile(map[string]any{"key": "value"}))
	var malformed *MalformedConfigError
	if !errors.As(err, &malformed) {
		t.Fatalf("Reconcile() error = %v, want MalformedConfigError", err)
	}
	if malformed.Path != path {
		t.Errorf("error path = %s, want %s", malformed.Path, path)
	}
}

func TestMarkdown_WeakCorrectness(t *testing.T) {
	root := t.TempDir()
	f := markdownFile([]string{"# Generated", "", "Template text."})

	// A user-customized file counts as correct even though it differs
	// from the template.
	if err := os.WriteFile(f.Path(root), []byte("my own notes\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	correct, err := IsCorrect(root, f)
	if err != nil {
		t.Fatalf("IsCorrect() error = %v", err)
	}
	if !correct {
		t.Error("non-empty customized file should be correct")
	}

	action, err := Reconcile(root, f)
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}
	if action != ActionNone {
		t.Errorf("action = %v, want unchanged", action)
	}

	data, _ := os.ReadFile(f.Path(root))
	if string(data) != "my own notes\n" {
		t.Errorf("user content overwritten: %q", data)
	}
}

func TestMarkdown_BlankFileRegenerated(t *testing.T) {
	root := t.TempDir()
	f := markdownFile([]string{"# Generated"})

	if err := os.WriteFile(f.Path(root), []byte("   \n\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	action, err := Reconcile(root, f)
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}
	if action != ActionCreated {
		t.Errorf("action = %v, want created", action)
	}

	data, _ := os.ReadFile(f.Path(root))
	if string(data) != "# Generated\n" {
		t.Errorf("got %q", data)
	}
}

func TestReconcile_MarkerFile(t *testing.T) {
	root := t.TempDir()
	f := File{
		Kind:    "py-typed",
		RelPath: filepath.Join("demo", "py.typed"),
		Codec:   MarkerCodec{Name: "py.typed"},
		Check:   CheckExists,
		Package: "demo",
		Desired: func() (any, error) { return map[string]any{}, nil },
	}

	if _, err := Reconcile(root, f); err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}

	info, err := os.Stat(f.Path(root))
	if err != nil {
		t.Fatalf("marker not created: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("marker size = %d, want 0", info.Size())
	}

	// Package-rooted artifacts also get the __init__.py marker.
	if _, err := os.Stat(filepath.Join(root, "demo", "__init__.py")); err != nil {
		t.Errorf("__init__.py not ensured: %v", err)
	}

	action, err := Reconcile(root, f)
	if err != nil {
		t.Fatalf("second Reconcile() error = %v", err)
	}
	if action != ActionNone {
		t.Errorf("second reconcile action = %v, want unchanged", action)
	}
}

func TestReconcile_CreatesParentDirectories(t *testing.T) {
	root := t.TempDir()
	f := File{
		Kind:    "ci-workflow",
		RelPath: filepath.Join(".github", "workflows", "ci.yaml"),
		Codec:   YAMLCodec{},
		Check:   CheckParses,
		Desired: func() (any, error) { return map[string]any{"name": "CI"}, nil },
	}

	if _, err := Reconcile(root, f); err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}
	if _, err := os.Stat(f.Path(root)); err != nil {
		t.Errorf("nested artifact not created: %v", err)
	}
}

func TestMergeMissing(t *testing.T) {
	existing := map[string]any{
		"keep":   "mine",
		"nested": map[string]any{"a": 1},
	}
	desired := map[string]any{
		"keep":   "theirs",
		"nested": map[string]any{"a": 2, "b": 3},
		"new":    true,
	}

	if !mergeMissing(existing, desired) {
		t.Fatal("expected a change")
	}
	if existing["keep"] != "mine" {
		t.Errorf("scalar overwritten: %v", existing["keep"])
	}
	nested := existing["nested"].(map[string]any)
	if nested["a"] != 1 {
		t.Errorf("nested value overwritten: %v", nested["a"])
	}
	if nested["b"] != 3 {
		t.Errorf("nested key not added: %v", nested["b"])
	}
	if existing["new"] != true {
		t.Errorf("top-level key not added: %v", existing["new"])
	}

	if mergeMissing(existing, desired) {
		t.Error("second merge should change nothing")
	}
}
