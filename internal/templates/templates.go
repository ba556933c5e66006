package templates

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"net/http"
	"strings"
	"text/template"
	"time"

	"github.com/pyforge-labs/pyforge/internal/branding"
	"github.com/pyforge-labs/pyforge/internal/config"
)

//go:embed files/*.tmpl
var embeddedFS embed.FS

var httpClient = &http.Client{Timeout: 10 * time.Second}

// Render executes the named template with data and returns the result as a
// line sequence suitable for a text artifact. Template names are the file
// stems under files/, e.g. "readme.md".
func Render(name string, data any) ([]string, error) {
	raw, err := source(name)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(name).Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}

	s := strings.TrimSuffix(buf.String(), "\n")
	return strings.Split(s, "\n"), nil
}

// source returns the raw template text, preferring a remote copy when a
// template base URL is configured. A configured remote requires an access
// token; fetch failures after that fall back silently to the embedded copy,
// which is the source of truth offline.
func source(name string) ([]byte, error) {
	if base := branding.TemplateBaseURL(); base != "" {
		token, err := config.Token()
		if err != nil {
			return nil, err
		}
		if raw, fetchErr := fetch(base, name, token); fetchErr == nil {
			return raw, nil
		}
	}

	raw, err := embeddedFS.ReadFile("files/" + name + ".tmpl")
	if err != nil {
		return nil, fmt.Errorf("template %q not found: %w", name, err)
	}
	return raw, nil
}

func fetch(base, name, token string) ([]byte, error) {
	url := strings.TrimSuffix(base, "/") + "/" + name + ".tmpl"
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: status %d", url, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
