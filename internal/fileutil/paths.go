package fileutil

import (
	"os"
	"path/filepath"
)

// StateDir returns the .nbhooks directory path for a repository.
func StateDir(repoDir string) string {
	return filepath.Join(repoDir, ".nbhooks")
}

// StatePath builds a path to a file within .nbhooks.
func StatePath(repoDir, name string) string {
	return filepath.Join(StateDir(repoDir), name)
}

// EnsureDir creates dir and any missing parents.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

// WriteFileAtomic writes data to a temporary sibling file, fsyncs it and
// renames it over path, so readers never observe a half-written file.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// Resolve returns the absolute form of p with symlinks evaluated. When p
// does not exist, its nearest existing ancestor is resolved and the rest is
// joined back on.
func Resolve(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	dir, tail := abs, ""
	for {
		if real, err := filepath.EvalSymlinks(dir); err == nil {
			return filepath.Join(real, tail), nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return abs, nil
		}
		tail = filepath.Join(filepath.Base(dir), tail)
		dir = parent
	}
}
