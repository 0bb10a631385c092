// Package check holds the notebook validators. Each validator inspects one
// notebook and returns every problem it finds; Run collects them all instead
// of stopping at the first.
package check

import (
	"fmt"
	"os"

	"github.com/open-atmos/nbhooks/internal/badge"
	"github.com/open-atmos/nbhooks/internal/notebook"
	"go.uber.org/zap"
)

// Env carries the repository-wide inputs validators compare against.
type Env struct {
	Root           string
	Repo           badge.Repo
	Header         string
	StderrAllow    []string
	MaxSize        int64
	ForbiddenCalls []string
}

// Target is one notebook under inspection.
type Target struct {
	Path     string
	Size     int64
	Notebook *notebook.Notebook
}

// Func inspects a target. Violations need only Kind and Reason; Run fills
// in the file and check name.
type Func func(t *Target, env *Env) []Violation

// Check is a named validator.
type Check struct {
	Name string
	Func Func
}

// Run applies checks to t and returns all violations.
func Run(t *Target, env *Env, checks []Check) []Violation {
	var out []Violation
	for _, c := range checks {
		for _, v := range c.Func(t, env) {
			v.File = t.Path
			v.Check = c.Name
			out = append(out, v)
		}
	}
	return out
}

// Load reads the notebook at path and records its size.
func Load(path string) (*Target, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	nb, err := notebook.Read(path)
	if err != nil {
		return nil, err
	}
	return &Target{Path: path, Size: info.Size(), Notebook: nb}, nil
}

// Checker runs a fixed list of checks over files.
type Checker struct {
	Env    *Env
	Checks []Check
	Log    *zap.Logger
}

// CheckFile loads path and runs every check on it. I/O and parse errors are
// returned as errors, not violations.
func (c *Checker) CheckFile(path string) ([]Violation, error) {
	log := c.Log
	if log == nil {
		log = zap.NewNop()
	}
	t, err := Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading notebook: %w", err)
	}
	vs := Run(t, c.Env, c.Checks)
	log.Debug("checked notebook",
		zap.String("path", path),
		zap.Int("cells", len(t.Notebook.Cells)),
		zap.Int("violations", len(vs)))
	return vs, nil
}

func structural(format string, args ...any) Violation {
	return Violation{Kind: StructuralViolation, Reason: fmt.Sprintf(format, args...)}
}

func mismatch(format string, args ...any) Violation {
	return Violation{Kind: ContentMismatch, Reason: fmt.Sprintf(format, args...)}
}

func policy(format string, args ...any) Violation {
	return Violation{Kind: OutputPolicyViolation, Reason: fmt.Sprintf(format, args...)}
}
