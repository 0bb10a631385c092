package git

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// gitEnvPrefixes lists git environment variable prefixes that must be stripped
// from child processes. pre-commit and plain git hooks export GIT_DIR and
// GIT_INDEX_FILE relative to the repo; if these leak into a git call made
// from another directory it resolves the wrong repository.
var gitEnvPrefixes = []string{
	"GIT_DIR=",
	"GIT_WORK_TREE=",
	"GIT_INDEX_FILE=",
	"GIT_OBJECT_DIRECTORY=",
	"GIT_ALTERNATE_OBJECT_DIRECTORIES=",
	"GIT_COMMON_DIR=",
}

// Run executes a git command in the given directory.
func Run(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(cleanGitEnv(os.Environ()), "GIT_TERMINAL_PROMPT=0")
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git %s: %s: %w", strings.Join(args, " "), strings.TrimSpace(string(out)), err)
	}
	return strings.TrimSpace(string(out)), nil
}

// cleanGitEnv returns a copy of environ with hook-inherited git variables removed.
func cleanGitEnv(environ []string) []string {
	result := make([]string, 0, len(environ))
	for _, e := range environ {
		keep := true
		for _, prefix := range gitEnvPrefixes {
			if strings.HasPrefix(e, prefix) {
				keep = false
				break
			}
		}
		if keep {
			result = append(result, e)
		}
	}
	return result
}

// TopLevel returns the absolute root of the working tree containing dir.
func TopLevel(dir string) (string, error) {
	out, err := Run(dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	return filepath.FromSlash(out), nil
}

// FindRoot walks up from dir until it finds a directory containing .git.
// Used when the git binary is unavailable.
func FindRoot(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(abs, ".git")); err == nil {
			return abs, nil
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return "", fmt.Errorf("not a git repository: %s", dir)
		}
		abs = parent
	}
}

// LsFiles returns the tracked files under root, as absolute paths, whose
// names end in one of exts. An empty exts keeps every file. Paths that are
// tracked but missing from the working tree (or are not regular files, like
// submodules) are skipped.
func LsFiles(root string, exts ...string) ([]string, error) {
	out, err := Run(root, "ls-files", "-z")
	if err != nil {
		return nil, err
	}
	var files []string
	for _, name := range strings.Split(out, "\x00") {
		if name == "" || !HasExt(name, exts) {
			continue
		}
		path := filepath.Join(root, filepath.FromSlash(name))
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		files = append(files, path)
	}
	return files, nil
}

// StagedFiles returns files added, copied or modified in the index, as
// absolute paths.
func StagedFiles(root string, exts ...string) ([]string, error) {
	out, err := Run(root, "diff", "--cached", "--name-only", "--diff-filter=ACM", "-z")
	if err != nil {
		return nil, err
	}
	var files []string
	for _, name := range strings.Split(out, "\x00") {
		if name == "" || !HasExt(name, exts) {
			continue
		}
		files = append(files, filepath.Join(root, filepath.FromSlash(name)))
	}
	return files, nil
}

// HasExt reports whether name ends in one of exts. An empty exts matches
// every name.
func HasExt(name string, exts []string) bool {
	if len(exts) == 0 {
		return true
	}
	for _, ext := range exts {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
