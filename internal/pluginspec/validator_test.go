package pluginspec

import (
	"strings"
	"testing"
)

func TestValidate_ValidManifest(t *testing.T) {
	result, err := Validate([]byte(sampleManifest))
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid, got issues: %+v", result.Issues)
	}
}

func TestValidate_UnknownFormat(t *testing.T) {
	manifest := `name: broken
version: 1.0.0
config_files:
  - kind: x
    path: x.cfg
    format: ini
`
	result, err := Validate([]byte(manifest))
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if result.Valid {
		t.Fatal("expected schema violation for unknown format")
	}

	found := false
	for _, issue := range result.Issues {
		if strings.Contains(issue.Path, "config_files") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an issue under /config_files, got %+v", result.Issues)
	}
}

func TestValidate_MissingRequiredFields(t *testing.T) {
	result, err := Validate([]byte("config_files: []\n"))
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if result.Valid {
		t.Error("expected schema violation for missing name/version")
	}
}

func TestValidate_RejectsUnknownTopLevelKeys(t *testing.T) {
	result, err := Validate([]byte("name: p\nversion: 1.0.0\nextra: true\n"))
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if result.Valid {
		t.Error("expected schema violation for unknown key")
	}
}
