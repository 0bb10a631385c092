package notebook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/open-atmos/nbhooks/internal/fileutil"
)

// CellType is the value of a cell's cell_type key.
type CellType string

const (
	Markdown CellType = "markdown"
	Code     CellType = "code"
	Raw      CellType = "raw"
)

// Notebook is an nbformat v4 document. Only the cell sequence is modelled;
// every other top-level key is carried through unchanged.
type Notebook struct {
	Cells  []*Cell
	fields map[string]json.RawMessage
}

// Cell is a single notebook cell. Keys other than cell_type, source and
// outputs (id, metadata, execution_count, attachments) are kept verbatim.
type Cell struct {
	Type    CellType
	Source  Source
	Outputs []Output
	fields  map[string]json.RawMessage
}

// Output is a code cell output. Stream outputs carry Name and Text.
type Output struct {
	Type string
	Name string
	Text string
	raw  json.RawMessage
}

// Parse decodes a notebook from JSON.
func Parse(data []byte) (*Notebook, error) {
	var nb Notebook
	if err := json.Unmarshal(data, &nb); err != nil {
		return nil, fmt.Errorf("parsing notebook: %w", err)
	}
	return &nb, nil
}

// Read loads a notebook from disk.
func Read(path string) (*Notebook, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	nb, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return nb, nil
}

// Write serializes the notebook the way nbformat does and replaces path atomically.
func Write(path string, nb *Notebook) error {
	data, err := nb.Marshal()
	if err != nil {
		return err
	}
	perm := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	if err := fileutil.WriteFileAtomic(path, data, perm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Marshal returns the nbformat-style encoding: one-space indent, sorted keys,
// no HTML or non-ASCII escaping and a trailing newline.
func (nb *Notebook) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", " ")
	if err := enc.Encode(nb); err != nil {
		return nil, fmt.Errorf("encoding notebook: %w", err)
	}
	return buf.Bytes(), nil
}

func (nb *Notebook) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	var cells []*Cell
	if raw, ok := fields["cells"]; ok {
		if err := json.Unmarshal(raw, &cells); err != nil {
			return fmt.Errorf("cells: %w", err)
		}
	}
	delete(fields, "cells")
	nb.Cells = cells
	nb.fields = fields
	return nil
}

func (nb Notebook) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(nb.fields)+1)
	for k, v := range nb.fields {
		out[k] = v
	}
	cells := nb.Cells
	if cells == nil {
		cells = []*Cell{}
	}
	out["cells"] = cells
	return marshal(out)
}

// Minor returns nbformat_minor, or 0 when absent.
func (nb *Notebook) Minor() int {
	var minor int
	if raw, ok := nb.fields["nbformat_minor"]; ok {
		_ = json.Unmarshal(raw, &minor)
	}
	return minor
}

// Cell returns the cell at i, or nil when out of range.
func (nb *Notebook) Cell(i int) *Cell {
	if i < 0 || i >= len(nb.Cells) {
		return nil
	}
	return nb.Cells[i]
}

// Insert places c at index i, appending when i is past the end.
func (nb *Notebook) Insert(i int, c *Cell) {
	i = min(i, len(nb.Cells))
	nb.Cells = slices.Insert(nb.Cells, i, c)
}

// Remove deletes and returns the cell at i.
func (nb *Notebook) Remove(i int) *Cell {
	c := nb.Cells[i]
	nb.Cells = slices.Delete(nb.Cells, i, i+1)
	return c
}

// Move takes the cell at from out of the sequence and reinserts it at to.
func (nb *Notebook) Move(from, to int) {
	nb.Insert(to, nb.Remove(from))
}

// NewCodeCell builds an unexecuted code cell. Notebooks at nbformat 4.5 or
// later require cell ids, so one is generated for them.
func (nb *Notebook) NewCodeCell(source string) *Cell {
	c := &Cell{
		Type:    Code,
		Source:  Source(source),
		Outputs: []Output{},
		fields: map[string]json.RawMessage{
			"execution_count": json.RawMessage("null"),
			"metadata":        json.RawMessage("{}"),
		},
	}
	if nb.Minor() >= 5 {
		id := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
		c.fields["id"] = json.RawMessage(`"` + id + `"`)
	}
	return c
}

func (c *Cell) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if raw, ok := fields["cell_type"]; ok {
		if err := json.Unmarshal(raw, &c.Type); err != nil {
			return fmt.Errorf("cell_type: %w", err)
		}
	}
	if raw, ok := fields["source"]; ok {
		if err := json.Unmarshal(raw, &c.Source); err != nil {
			return fmt.Errorf("source: %w", err)
		}
	}
	if raw, ok := fields["outputs"]; ok {
		if err := json.Unmarshal(raw, &c.Outputs); err != nil {
			return fmt.Errorf("outputs: %w", err)
		}
	}
	delete(fields, "cell_type")
	delete(fields, "source")
	delete(fields, "outputs")
	c.fields = fields
	return nil
}

func (c Cell) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(c.fields)+3)
	for k, v := range c.fields {
		out[k] = v
	}
	out["cell_type"] = c.Type
	out["source"] = c.Source
	if c.Outputs != nil {
		out["outputs"] = c.Outputs
	}
	return marshal(out)
}

// HasExecutionCount reports whether the execution_count key is present,
// whether or not its value is null.
func (c *Cell) HasExecutionCount() bool {
	_, ok := c.fields["execution_count"]
	return ok
}

// Text returns the cell source as a single string.
func (c *Cell) Text() string {
	return string(c.Source)
}

// IsEmpty reports whether the source is blank.
func (c *Cell) IsEmpty() bool {
	return strings.TrimSpace(string(c.Source)) == ""
}

func (o *Output) UnmarshalJSON(data []byte) error {
	var head struct {
		Type string `json:"output_type"`
		Name string `json:"name"`
		Text Source `json:"text"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}
	o.Type = head.Type
	o.Name = head.Name
	o.Text = string(head.Text)
	o.raw = append(json.RawMessage(nil), data...)
	return nil
}

func (o Output) MarshalJSON() ([]byte, error) {
	if o.raw != nil {
		return o.raw, nil
	}
	return marshal(map[string]any{
		"output_type": o.Type,
		"name":        o.Name,
		"text":        Source(o.Text),
	})
}

// marshal encodes without HTML escaping so that re-encoding nested values
// keeps characters like < and & as written.
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
