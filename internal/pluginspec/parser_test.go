package pluginspec

import (
	"testing"
)

const sampleManifest = `name: sphinx-pyforge
version: 1.2.0
requires: ">=0.1.0"
dependencies:
  - docs-common
config_files:
  - kind: docs-config
    path: docs/conf.py
    format: text
    lines:
      - "project = 'demo'"
builders:
  - name: docs-archive
    files:
      manual.txt: "placeholder"
`

func TestParseBytes(t *testing.T) {
	m, err := ParseBytes([]byte(sampleManifest), "pyforge-plugin.yaml")
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}

	if m.Name != "sphinx-pyforge" {
		t.Errorf("Name = %q", m.Name)
	}
	if m.Requires != ">=0.1.0" {
		t.Errorf("Requires = %q", m.Requires)
	}
	if len(m.Dependencies) != 1 || m.Dependencies[0] != "docs-common" {
		t.Errorf("Dependencies = %v", m.Dependencies)
	}
	if len(m.ConfigFiles) != 1 || m.ConfigFiles[0].Kind != "docs-config" {
		t.Fatalf("ConfigFiles = %+v", m.ConfigFiles)
	}
	if len(m.Builders) != 1 || m.Builders[0].Files["manual.txt"] != "placeholder" {
		t.Errorf("Builders = %+v", m.Builders)
	}
}

func TestParseBytes_MissingName(t *testing.T) {
	if _, err := ParseBytes([]byte("version: 1.0.0\n"), "x.yaml"); err == nil {
		t.Error("expected error for missing name")
	}
}

func TestParseBytes_InvalidYAML(t *testing.T) {
	if _, err := ParseBytes([]byte("{not yaml"), "x.yaml"); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestCompatible(t *testing.T) {
	tests := []struct {
		requires string
		version  string
		want     bool
	}{
		{"", "0.1.0", true},
		{">=0.1.0", "0.2.0", true},
		{">=0.5.0", "0.2.0", false},
		{">=0.1.0, <1.0.0", "0.9.9", true},
		{">=0.1.0", "dev", true}, // unparseable running version: accept
	}
	for _, tt := range tests {
		m := &Manifest{Name: "p", Requires: tt.requires}
		got, err := Compatible(m, tt.version)
		if err != nil {
			t.Errorf("Compatible(%q, %q) error = %v", tt.requires, tt.version, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Compatible(%q, %q) = %v, want %v", tt.requires, tt.version, got, tt.want)
		}
	}
}

func TestCompatible_BadConstraint(t *testing.T) {
	m := &Manifest{Name: "p", Requires: "not a constraint"}
	if _, err := Compatible(m, "0.1.0"); err == nil {
		t.Error("expected error for invalid constraint")
	}
}
