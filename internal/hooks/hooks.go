package hooks

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/open-atmos/nbhooks/internal/markers"
)

const shebang = "#!/bin/sh"

// Name is the git hook nbhooks installs into.
const Name = "pre-commit"

func preCommitBlock() string {
	return markers.Wrap(`nbhooks check-badges --staged || exit 1
nbhooks check-notebooks --staged || exit 1`)
}

// Path returns the location of the pre-commit hook in repoDir.
func Path(repoDir string) string {
	return filepath.Join(repoDir, ".git", "hooks", Name)
}

// Install installs or updates the nbhooks block in the repo's pre-commit hook.
// Content outside the block is left as is.
func Install(repoDir string) error {
	path := Path(repoDir)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating hooks dir: %w", err)
	}

	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading %s hook: %w", Name, err)
	}

	content, err := markers.Insert(string(existing), preCommitBlock(), shebang)
	if err != nil {
		return fmt.Errorf("%s hook: %w", Name, err)
	}

	if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
		return fmt.Errorf("writing %s hook: %w", Name, err)
	}
	return nil
}

// Remove removes the nbhooks block from the pre-commit hook.
func Remove(repoDir string) error {
	path := Path(repoDir)

	existing, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading %s hook: %w", Name, err)
	}

	result, found, err := markers.Remove(string(existing))
	if err != nil {
		return fmt.Errorf("%s hook: %w", Name, err)
	}
	if !found {
		return nil
	}
	if result == "" {
		result = shebang + "\n"
	}

	if err := os.WriteFile(path, []byte(result), 0o755); err != nil {
		return fmt.Errorf("writing %s hook: %w", Name, err)
	}
	return nil
}

// Installed reports whether the pre-commit hook carries the nbhooks block.
func Installed(repoDir string) bool {
	data, err := os.ReadFile(Path(repoDir))
	if err != nil {
		return false
	}
	_, found, _ := markers.Remove(string(data))
	return found
}
