package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/open-atmos/nbhooks/internal/fileutil"
)

const issuesFile = "issues.json"

// IssueCache is the on-disk snapshot of a repository's issue states.
type IssueCache struct {
	Repo      string         `json:"repo"`
	FetchedAt time.Time      `json:"fetched_at"`
	Issues    map[int]string `json:"issues"`
}

// IssuesPath returns the issue cache location for a repository.
func IssuesPath(repoDir string) string {
	return fileutil.StatePath(repoDir, issuesFile)
}

// ReadIssues reads the issue cache at path. Returns nil if no cache exists.
func ReadIssues(path string) (*IssueCache, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var c IssueCache
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing issue cache: %w", err)
	}
	return &c, nil
}

// WriteIssues replaces the issue cache at path.
func WriteIssues(path string, c *IssueCache) error {
	out, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling issue cache: %w", err)
	}
	if err := fileutil.EnsureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("creating state dir: %w", err)
	}
	if err := fileutil.WriteFileAtomic(path, append(out, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing issue cache: %w", err)
	}
	return nil
}

// Clear removes the state directory of a repository.
func Clear(repoDir string) error {
	err := os.RemoveAll(fileutil.StateDir(repoDir))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
