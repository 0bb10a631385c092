package check

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/open-atmos/nbhooks/internal/notebook"
)

// DefaultStderrAllow lists stderr prefixes that are benign joblib diagnostics.
var DefaultStderrAllow = []string{"[Parallel(n_jobs="}

// DefaultForbiddenCalls are plotting calls that should go through show_plot.
var DefaultForbiddenCalls = []string{"pyplot.show(", "plt.show("}

// DefaultMaxSize is the notebook size limit in bytes.
const DefaultMaxSize = 2 * humanize.MByte

// NoStderrOutput fails for every stderr stream output not covered by the allow-list.
func NoStderrOutput(t *Target, env *Env) []Violation {
	var out []Violation
	for i, c := range t.Notebook.Cells {
		if c.Type != notebook.Code {
			continue
		}
		for _, o := range c.Outputs {
			if o.Name != "stderr" || hasAnyPrefix(o.Text, env.StderrAllow) {
				continue
			}
			out = append(out, policy("cell %d has stderr output: %s", i, firstLine(o.Text)))
		}
	}
	return out
}

// ExecutionCountPresent fails for non-empty code cells that lack the
// execution_count key, which some editors drop and GitHub's renderer needs.
func ExecutionCountPresent(t *Target, _ *Env) []Violation {
	var out []Violation
	for i, c := range t.Notebook.Cells {
		if c.Type != notebook.Code || c.IsEmpty() || c.HasExecutionCount() {
			continue
		}
		out = append(out, policy("cell %d is missing the execution_count attribute"+
			" (could be due to a bug in PyCharm, see https://youtrack.jetbrains.com/issue/PY-66491 )", i))
	}
	return out
}

// FileSize fails when the file is at or above the configured limit.
func FileSize(t *Target, env *Env) []Violation {
	if env.MaxSize <= 0 || t.Size < env.MaxSize {
		return nil
	}
	return []Violation{policy("file size %s exceeds the limit of %s",
		humanize.Bytes(uint64(t.Size)), humanize.Bytes(uint64(env.MaxSize)))}
}

// NoDirectShow fails for code cells that call a plotting library's show
// directly instead of the shared show_plot helper.
func NoDirectShow(t *Target, env *Env) []Violation {
	var out []Violation
	for i, c := range t.Notebook.Cells {
		if c.Type != notebook.Code {
			continue
		}
		for _, line := range strings.Split(c.Text(), "\n") {
			code := stripComment(line)
			for _, call := range env.ForbiddenCalls {
				if strings.Contains(code, call) {
					out = append(out, policy("cell %d calls %s directly; use show_plot() from open_atmos_jupyter_utils", i, call))
				}
			}
		}
	}
	return out
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// stripComment drops a trailing Python comment from line. A # inside a
// single-line string literal does not start a comment.
func stripComment(line string) string {
	var quote byte
	for i := 0; i < len(line); i++ {
		switch ch := line[i]; {
		case quote != 0 && ch == '\\':
			i++
		case quote != 0 && ch == quote:
			quote = 0
		case quote != 0:
		case ch == '"' || ch == '\'':
			quote = ch
		case ch == '#':
			return line[:i]
		}
	}
	return line
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
