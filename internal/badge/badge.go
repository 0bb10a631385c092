package badge

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/open-atmos/nbhooks/internal/fileutil"
)

const (
	previewSVG = "https://img.shields.io/static/v1?label=render%20on&logo=github&color=87ce3e&message=GitHub"
	binderSVG  = "https://mybinder.org/badge_logo.svg"
	colabSVG   = "https://colab.research.google.com/assets/colab-badge.svg"
)

// Repo identifies the hosting repository the badge links point at.
type Repo struct {
	Owner  string
	Name   string
	Branch string
}

// Triple holds the three badge lines expected in a notebook's first cell.
type Triple struct {
	Preview string
	Binder  string
	Colab   string
}

// Compute derives the badge lines for the notebook at relPath.
func Compute(repo Repo, relPath string) Triple {
	rel := ToSlash(relPath)
	return Triple{
		Preview: fmt.Sprintf("[![preview notebook](%s)](https://github.com/%s/%s/blob/%s/%s)",
			previewSVG, repo.Owner, repo.Name, repo.Branch, rel),
		Binder: fmt.Sprintf("[![launch on mybinder.org](%s)](https://mybinder.org/v2/gh/%s/%s.git/%s?urlpath=lab/tree/%s)",
			binderSVG, repo.Owner, repo.Name, repo.Branch, rel),
		Colab: fmt.Sprintf("[![launch on Colab](%s)](https://colab.research.google.com/github/%s/%s/blob/%s/%s)",
			colabSVG, repo.Owner, repo.Name, repo.Branch, rel),
	}
}

// Lines returns the badges in the order they must appear.
func (t Triple) Lines() []string {
	return []string{t.Preview, t.Binder, t.Colab}
}

// Markdown returns the first-cell source that satisfies the badge check.
func (t Triple) Markdown() string {
	return strings.Join(t.Lines(), "\n")
}

// Labels names each badge line for error messages.
var Labels = []string{"GitHub preview", "MyBinder", "Colab"}

// RelativePath returns path relative to root using forward slashes, so the
// result is usable in URLs regardless of the host's separator. Symlinks are
// resolved on both sides, so a working directory reached through a link
// still yields a path inside the repository.
func RelativePath(root, path string) (string, error) {
	absRoot, err := fileutil.Resolve(root)
	if err != nil {
		return "", err
	}
	absPath, err := fileutil.Resolve(toSlashNative(path))
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(absRoot, absPath)
	if err != nil {
		return "", fmt.Errorf("%s is not under %s: %w", path, root, err)
	}
	return ToSlash(rel), nil
}

// ToSlash converts both host and Windows separators to forward slashes.
func ToSlash(p string) string {
	return strings.ReplaceAll(filepath.ToSlash(p), `\`, "/")
}

// toSlashNative rewrites backslashes into the host separator.
func toSlashNative(p string) string {
	return filepath.FromSlash(strings.ReplaceAll(p, `\`, "/"))
}
