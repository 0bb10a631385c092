// Package report prints check results in the fixed line formats pre-commit
// users see: one "[ERROR] <path>: <message>" line per problem, and a
// Black-style summary when files were rewritten.
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Reporter writes results to Out. Styling is applied only when Out is a
// terminal that supports it.
type Reporter struct {
	Out io.Writer

	errorTag lipgloss.Style
	bold     lipgloss.Style
	failed   bool
}

// New returns a Reporter writing to w.
func New(w io.Writer) *Reporter {
	r := lipgloss.NewRenderer(w)
	return &Reporter{
		Out:      w,
		errorTag: r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		bold:     r.NewStyle().Bold(true),
	}
}

// Error prints one problem for path and marks the run failed.
func (r *Reporter) Error(path string, err error) {
	r.failed = true
	fmt.Fprintf(r.Out, "%s %s: %s\n", r.errorTag.Render("[ERROR]"), path, err)
}

// Failed reports whether any problem was printed.
func (r *Reporter) Failed() bool { return r.failed }

// Summary prints the reformatted files followed by totals. Nothing is
// printed when no file was reformatted.
func (r *Reporter) Summary(reformatted, unchanged []string) {
	for _, f := range reformatted {
		fmt.Fprintf(r.Out, "\n%s\n", r.bold.Render("reformatted "+f))
	}
	if len(reformatted) == 0 {
		return
	}
	fmt.Fprintf(r.Out, "\n%s\n", r.bold.Render("All done! ✨ 🍰 ✨"))
	fmt.Fprintf(r.Out, "%s reformatted, %s left unchanged.\n",
		plural(len(reformatted), "file"), plural(len(unchanged), "file"))
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
