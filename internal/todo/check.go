package todo

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Finding is a TODO or FIXME that fails the annotation policy.
type Finding struct {
	File   string
	Line   int
	Reason string
}

func (f Finding) Error() string { return f.Reason }

// Check applies the annotation policy to one file's annotations. An empty
// issue map means the tracker could not be consulted, so only the "#N"
// syntax is enforced.
func Check(file string, anns []Annotation, issues map[int]State) []Finding {
	var out []Finding
	for _, a := range anns {
		line := strings.TrimSpace(a.Text)
		var reason string
		switch {
		case a.Issue == 0:
			reason = fmt.Sprintf("TODO/FIXME not annotated with issue id (%s)", line)
		case len(issues) == 0:
			continue
		default:
			st, ok := issues[a.Issue]
			switch {
			case !ok:
				reason = fmt.Sprintf("TODO/FIXME annotated with non-existent id (%s)", line)
			case st != Open:
				reason = fmt.Sprintf("TODO/FIXME remains for a non-open issue (%s)", line)
			default:
				continue
			}
		}
		out = append(out, Finding{File: file, Line: a.Line, Reason: reason})
	}
	return out
}

// Checker applies the policy file by file against a fixed issue snapshot.
type Checker struct {
	Issues map[int]State
	Log    *zap.Logger
}

// CheckFile scans path and returns its findings.
func (c *Checker) CheckFile(path string) ([]Finding, error) {
	anns, err := ScanFile(path)
	if err != nil {
		return nil, err
	}
	if c.Log != nil && len(anns) > 0 {
		c.Log.Debug("scanned annotations", zap.String("path", path), zap.Int("count", len(anns)))
	}
	return Check(path, anns, c.Issues), nil
}
