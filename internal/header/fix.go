package header

import (
	"github.com/open-atmos/nbhooks/internal/notebook"
)

// MinCells is the smallest notebook the fixer will touch. Shorter notebooks
// are left for the cell-count check to report.
const MinCells = 3

// Fixer moves, corrects or inserts the header cell.
type Fixer struct {
	Canonical string
	Markers   []string
}

// Find returns the index of the header cell, or -1. A header already at
// Index takes precedence; otherwise the first recognized code cell is used.
func (f Fixer) Find(nb *notebook.Notebook) int {
	if c := nb.Cell(Index); c != nil && f.isHeader(c) {
		return Index
	}
	for i, c := range nb.Cells {
		if f.isHeader(c) {
			return i
		}
	}
	return -1
}

// isHeader also accepts the canonical text itself, so a template that lacks
// one of the markers still converges.
func (f Fixer) isHeader(c *notebook.Cell) bool {
	if c.Type != notebook.Code {
		return false
	}
	return c.Text() == f.Canonical || IsHeader(c.Text(), f.Markers)
}

// Normalize brings the header cell to its canonical text and position and
// reports whether the notebook changed. Running it again on its own output
// changes nothing.
func (f Fixer) Normalize(nb *notebook.Notebook) bool {
	if len(nb.Cells) < MinCells {
		return false
	}

	h := f.Find(nb)
	if h < 0 {
		nb.Insert(Index, nb.NewCodeCell(f.Canonical))
		return true
	}

	modified := false
	if nb.Cells[h].Text() != f.Canonical {
		nb.Cells[h].Source = notebook.Source(f.Canonical)
		modified = true
	}
	if h != Index {
		nb.Move(h, Index)
		modified = true
	}
	return modified
}

// FixFile normalizes the notebook at path and writes it back only when it
// changed.
func (f Fixer) FixFile(path string) (bool, error) {
	nb, err := notebook.Read(path)
	if err != nil {
		return false, err
	}
	if !f.Normalize(nb) {
		return false, nil
	}
	if err := notebook.Write(path, nb); err != nil {
		return false, err
	}
	return true, nil
}
