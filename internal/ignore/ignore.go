package ignore

import (
	"os"
	"path/filepath"

	"github.com/open-atmos/nbhooks/internal/fileutil"
	gitignore "github.com/sabhiram/go-gitignore"
)

// File is the name of the ignore file looked up at the repository root.
const File = ".nbhooksignore"

// Matcher checks files against .nbhooksignore patterns.
type Matcher struct {
	root string
	gi   *gitignore.GitIgnore
}

// Load loads .nbhooksignore from the given directory.
// Returns a Matcher that matches nothing if no .nbhooksignore exists.
func Load(dir string) (*Matcher, error) {
	dir = resolve(dir)
	path := filepath.Join(dir, File)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Matcher{root: dir}, nil
	}

	gi, err := gitignore.CompileIgnoreFile(path)
	if err != nil {
		return nil, err
	}
	return &Matcher{root: dir, gi: gi}, nil
}

// New builds a Matcher from in-memory patterns.
func New(root string, patterns ...string) *Matcher {
	return &Matcher{root: resolve(root), gi: gitignore.CompileIgnoreLines(patterns...)}
}

// Ignored reports whether path matches. Absolute paths are made relative to
// the matcher's root first, with symlinks resolved on both sides.
func (m *Matcher) Ignored(path string) bool {
	if m.gi == nil {
		return false
	}
	if filepath.IsAbs(path) && m.root != "" {
		if rel, err := filepath.Rel(m.root, resolve(path)); err == nil {
			path = rel
		}
	}
	return m.gi.MatchesPath(filepath.ToSlash(path))
}

// Filter returns the files that are not ignored, in their original order.
func (m *Matcher) Filter(files []string) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		if !m.Ignored(f) {
			out = append(out, f)
		}
	}
	return out
}

func resolve(p string) string {
	if p == "" {
		return p
	}
	if real, err := fileutil.Resolve(p); err == nil {
		return real
	}
	return p
}
