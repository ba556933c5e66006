package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pyforge-labs/pyforge/internal/branding"
)

const credentialsFile = "credentials"

// Token resolves the repository access token: the PYFORGE_TOKEN environment
// variable first, then the ~/.pyforge/credentials file. Absence of both is
// a fatal configuration error; there is no retry and no interactive prompt.
func Token() (string, error) {
	if tok := os.Getenv(branding.EnvVar("TOKEN")); strings.TrimSpace(tok) != "" {
		return strings.TrimSpace(tok), nil
	}

	path := filepath.Join(Dir(), credentialsFile)
	data, err := os.ReadFile(path)
	if err == nil {
		if tok := strings.TrimSpace(string(data)); tok != "" {
			return tok, nil
		}
	}

	return "", fmt.Errorf("no access token: set %s or create %s", branding.EnvVar("TOKEN"), path)
}
