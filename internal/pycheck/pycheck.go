package pycheck

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Rule forbids a piece of text in Python sources.
type Rule struct {
	Pattern string
	Message string
}

// Finding is a rule hit in one file.
type Finding struct {
	File   string
	Rule   Rule
	Reason string
}

func (f Finding) Error() string { return f.Reason }

// Checker applies rules to .py files, skipping files whose base name is in
// Skip.
type Checker struct {
	Rules []Rule
	Skip  []string
}

// Skipped reports whether path is exempt from the rules.
func (c *Checker) Skipped(path string) bool {
	return slices.Contains(c.Skip, filepath.Base(path))
}

// CheckFile returns one finding per rule whose pattern appears in path.
func (c *Checker) CheckFile(path string) ([]Finding, error) {
	if c.Skipped(path) {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return c.Check(path, string(data)), nil
}

// Check applies the rules to source text.
func (c *Checker) Check(path, source string) []Finding {
	var out []Finding
	for _, r := range c.Rules {
		if r.Pattern == "" || !strings.Contains(source, r.Pattern) {
			continue
		}
		reason := fmt.Sprintf("forbidden import %q", r.Pattern)
		if r.Message != "" {
			reason += ". " + r.Message
		}
		out = append(out, Finding{File: path, Rule: r, Reason: reason})
	}
	return out
}
