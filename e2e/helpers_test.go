package e2e_test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/open-atmos/nbhooks/internal/badge"
	"github.com/open-atmos/nbhooks/internal/header"
)

// tempRepo creates a fresh git repo in a temp directory and returns its path.
// The directory is cleaned up after the test.
func tempRepo() string {
	dir, err := os.MkdirTemp("", "nbhooks-test-*")
	Expect(err).NotTo(HaveOccurred())
	DeferCleanup(func() { os.RemoveAll(dir) })
	dir, err = filepath.EvalSymlinks(dir)
	Expect(err).NotTo(HaveOccurred())

	git(dir, "init")
	git(dir, "config", "user.email", "test@test.com")
	git(dir, "config", "user.name", "Test")
	return dir
}

// testEnv is the environment for child processes, without variables that
// would point nbhooks at another repository.
func testEnv() []string {
	var env []string
	for _, e := range os.Environ() {
		if strings.HasPrefix(e, "PRE_COMMIT_REPOROOT=") || strings.HasPrefix(e, "GIT_DIR=") {
			continue
		}
		env = append(env, e)
	}
	return append(env, "GIT_TERMINAL_PROMPT=0")
}

// gitMay runs a git command that may fail and returns stdout+err.
func gitMay(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = testEnv()
	out, err := cmd.CombinedOutput()
	return strings.TrimSpace(string(out)), err
}

// git runs a git command in the given directory and returns stdout.
func git(dir string, args ...string) string {
	out, err := gitMay(dir, args...)
	ExpectWithOffset(1, err).NotTo(HaveOccurred(), "git %s failed: %s", strings.Join(args, " "), out)
	return out
}

// nbhooks runs the binary in the given directory and returns its output.
func nbhooks(dir string, args ...string) (string, error) {
	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = dir
	cmd.Env = testEnv()
	out, err := cmd.CombinedOutput()
	return strings.TrimSpace(string(out)), err
}

// nbhooksOK runs the binary and expects success.
func nbhooksOK(dir string, args ...string) string {
	out, err := nbhooks(dir, args...)
	ExpectWithOffset(1, err).NotTo(HaveOccurred(), "nbhooks %s failed: %s", strings.Join(args, " "), out)
	return out
}

// nbhooksFail runs the binary and expects a non-zero exit.
func nbhooksFail(dir string, args ...string) string {
	out, err := nbhooks(dir, args...)
	ExpectWithOffset(1, err).To(HaveOccurred(), "nbhooks %s should fail: %s", strings.Join(args, " "), out)
	return out
}

// writeFile creates a file with the given content, creating parent dirs as needed.
func writeFile(dir, name, content string) {
	p := filepath.Join(dir, name)
	err := os.MkdirAll(filepath.Dir(p), 0o755)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	err = os.WriteFile(p, []byte(content), 0o644)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
}

// readFile reads a file and returns its content.
func readFile(dir, name string) string {
	data, err := os.ReadFile(filepath.Join(dir, name))
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	return string(data)
}

// fileExists checks if a file exists in the given directory.
func fileExists(dir, name string) bool {
	_, err := os.Stat(filepath.Join(dir, name))
	return err == nil
}

// writeConfig writes .nbhooks.yaml to the given directory.
func writeConfig(dir, content string) {
	writeFile(dir, ".nbhooks.yaml", content)
}

func cellJSON(cellType, source string, extra map[string]any) string {
	cell := map[string]any{"cell_type": cellType, "metadata": map[string]any{}, "source": source}
	for k, v := range extra {
		cell[k] = v
	}
	out, err := json.Marshal(cell)
	ExpectWithOffset(2, err).NotTo(HaveOccurred())
	return string(out)
}

func mdCell(source string) string { return cellJSON("markdown", source, nil) }

func codeCell(source string) string {
	return cellJSON("code", source, map[string]any{"execution_count": 1, "outputs": []any{}})
}

func notebookJSON(cells ...string) string {
	return `{"cells": [` + strings.Join(cells, ",") + `], "metadata": {}, "nbformat": 4, "nbformat_minor": 5}`
}

// repoName is the name nbhooks derives for a temp repo.
func repoName(dir string) string {
	return filepath.Base(dir)
}

// badgeCell returns the first cell nbhooks expects for rel.
func badgeCell(dir, rel string) string {
	t := badge.Compute(badge.Repo{Owner: "open-atmos", Name: repoName(dir), Branch: "main"}, rel)
	return mdCell(t.Markdown())
}

// headerText returns the canonical setup cell for the temp repo.
func headerText(dir string) string {
	h, err := header.Render(header.DefaultTemplate, repoName(dir), "")
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	return h
}

// writeValidNotebook writes a notebook that passes every layout check.
func writeValidNotebook(dir, rel string) {
	writeFile(dir, rel, notebookJSON(
		badgeCell(dir, rel),
		mdCell("# Demo"),
		codeCell(headerText(dir)),
		codeCell("x = 1"),
	))
}

// cellSources parses a notebook file and returns each cell's joined source.
func cellSources(dir, rel string) []string {
	var nb struct {
		Cells []struct {
			Source any `json:"source"`
		} `json:"cells"`
	}
	ExpectWithOffset(1, json.Unmarshal([]byte(readFile(dir, rel)), &nb)).To(Succeed())
	var out []string
	for _, c := range nb.Cells {
		switch s := c.Source.(type) {
		case string:
			out = append(out, s)
		case []any:
			var b strings.Builder
			for _, line := range s {
				b.WriteString(line.(string))
			}
			out = append(out, b.String())
		}
	}
	return out
}
