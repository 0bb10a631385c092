// Package header renders, recognizes and normalizes the platform-setup code
// cell that notebooks carry at index 2. When run on Colab the cell installs
// the repository's examples package; elsewhere it is a no-op.
package header

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// Index is the position the header cell must occupy.
const Index = 2

// DefaultTemplate is the canonical header text before repository substitution.
const DefaultTemplate = `import os, sys
os.environ['NUMBA_THREADING_LAYER'] = 'omp'  # PySDM and PyMPDATA are incompatible with TBB threads
if 'google.colab' in sys.modules:
    !pip --quiet install open-atmos-jupyter-utils
    from open_atmos_jupyter_utils import pip_install_on_colab
    pip_install_on_colab('{{.Repo}}-examples{{.Version}}')`

// DefaultMarkers must all be present for a cell to count as a header.
var DefaultMarkers = []string{
	"install open-atmos-jupyter-utils",
	"google.colab",
	"pip_install_on_colab",
}

// Params are the values substituted into the header template.
type Params struct {
	Repo    string
	Version string
}

// Render executes tmpl with the repository name and version suffix.
// A bare version is pinned with "=="; one that already starts with a
// comparison operator is used as given.
func Render(tmpl, repo, version string) (string, error) {
	t, err := Parse(tmpl)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, Params{Repo: repo, Version: versionSuffix(version)}); err != nil {
		return "", fmt.Errorf("rendering header template: %w", err)
	}
	return buf.String(), nil
}

// Parse compiles a header template, failing on unknown fields at render time.
func Parse(tmpl string) (*template.Template, error) {
	t, err := template.New("header").Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return nil, fmt.Errorf("parsing header template: %w", err)
	}
	return t, nil
}

func versionSuffix(version string) string {
	version = strings.TrimSpace(version)
	if version == "" {
		return ""
	}
	if strings.ContainsAny(version[:1], "=<>!~") {
		return version
	}
	return "==" + version
}

// IsHeader reports whether source contains every marker. An empty marker
// list never matches.
func IsHeader(source string, markers []string) bool {
	if len(markers) == 0 {
		return false
	}
	for _, m := range markers {
		if !strings.Contains(source, m) {
			return false
		}
	}
	return true
}
