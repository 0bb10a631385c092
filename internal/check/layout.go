package check

import (
	"strings"

	"github.com/open-atmos/nbhooks/internal/badge"
	"github.com/open-atmos/nbhooks/internal/header"
	"github.com/open-atmos/nbhooks/internal/notebook"
)

// MinimumCellCount fails when the notebook has fewer than three cells.
func MinimumCellCount(t *Target, _ *Env) []Violation {
	if n := len(t.Notebook.Cells); n < header.MinCells {
		return []Violation{structural("notebook should have at least %d cells, found %d", header.MinCells, n)}
	}
	return nil
}

// FirstCellBadges compares cell 0 line by line with the computed badges.
func FirstCellBadges(t *Target, env *Env) []Violation {
	c := t.Notebook.Cell(0)
	if c == nil {
		return nil
	}
	if c.Type != notebook.Markdown {
		return []Violation{structural("first cell is not a markdown cell")}
	}
	lines := strings.Split(c.Text(), "\n")
	if len(lines) != 3 {
		return []Violation{mismatch("first cell does not contain exactly 3 lines (badges), found %d", len(lines))}
	}

	rel, err := badge.RelativePath(env.Root, t.Path)
	if err != nil {
		return []Violation{mismatch("cannot compute badges: %s", err)}
	}
	want := badge.Compute(env.Repo, rel).Lines()

	var out []Violation
	for i, line := range lines {
		if line != want[i] {
			out = append(out, mismatch("%s badge does not match %s badge %s",
				ordinals[i], badge.Labels[i], want[i]))
		}
	}
	return out
}

var ordinals = []string{"first", "second", "third"}

// SecondCellMarkdown fails when cell 1 is not markdown.
func SecondCellMarkdown(t *Target, _ *Env) []Violation {
	c := t.Notebook.Cell(1)
	if c == nil || c.Type == notebook.Markdown {
		return nil
	}
	return []Violation{structural("second cell is not a markdown cell")}
}

// ThirdCellHeader fails when cell 2 is not the canonical header code cell.
func ThirdCellHeader(t *Target, env *Env) []Violation {
	c := t.Notebook.Cell(header.Index)
	if c == nil {
		return nil
	}
	if c.Type != notebook.Code {
		return []Violation{structural("third cell is not a code cell")}
	}
	if c.Text() != env.Header {
		return []Violation{mismatch("third cell does not contain the expected Colab header")}
	}
	return nil
}
