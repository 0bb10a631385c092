package pyproject

import (
	"fmt"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

type buildSystem struct {
	Requires *[]string `toml:"requires"`
}

type document struct {
	BuildSystem *buildSystem `toml:"build-system"`
}

// Requires returns build-system.requires from a pyproject.toml file.
func Requires(path string) ([]string, error) {
	var doc document
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if doc.BuildSystem == nil || doc.BuildSystem.Requires == nil {
		return nil, fmt.Errorf("%s: no build-system.requires", path)
	}
	return *doc.BuildSystem.Requires, nil
}

// Mismatch describes how two requirement lists differ.
type Mismatch struct {
	A, B   string
	OnlyA  []string
	OnlyB  []string
	Reason string
}

func (m *Mismatch) Error() string { return m.Reason }

// Compare reports whether a and b list the same build requirements in the
// same order. It returns nil when they match.
func Compare(a, b string, reqA, reqB []string) *Mismatch {
	if slices.Equal(reqA, reqB) {
		return nil
	}
	m := &Mismatch{A: a, B: b, OnlyA: missing(reqA, reqB), OnlyB: missing(reqB, reqA)}
	if len(m.OnlyA) == 0 && len(m.OnlyB) == 0 {
		m.Reason = fmt.Sprintf("build-system.requires of %s and %s list the same packages in a different order", a, b)
		return m
	}
	var parts []string
	if len(m.OnlyA) > 0 {
		parts = append(parts, fmt.Sprintf("only in %s: %s", a, strings.Join(m.OnlyA, ", ")))
	}
	if len(m.OnlyB) > 0 {
		parts = append(parts, fmt.Sprintf("only in %s: %s", b, strings.Join(m.OnlyB, ", ")))
	}
	m.Reason = fmt.Sprintf("build-system.requires differ (%s)", strings.Join(parts, "; "))
	return m
}

// CompareFiles loads both files and compares their build requirements.
func CompareFiles(a, b string) (*Mismatch, error) {
	reqA, err := Requires(a)
	if err != nil {
		return nil, err
	}
	reqB, err := Requires(b)
	if err != nil {
		return nil, err
	}
	return Compare(a, b, reqA, reqB), nil
}

func missing(from, in []string) []string {
	var out []string
	for _, r := range from {
		if !slices.Contains(in, r) {
			out = append(out, r)
		}
	}
	return out
}
