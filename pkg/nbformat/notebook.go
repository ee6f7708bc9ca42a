// Copyright (c) 2026 Mariusz Górski. All rights reserved.
// SPDX-License-Identifier: MIT

// Package nbformat builds and serializes Jupyter notebooks in the nbformat
// v4.5 on-disk layout. Only the subset needed by the suite renderer is
// modelled: markdown cells, code cells, and the notebook shell around them.
package nbformat

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Cell kinds.
const (
	CellMarkdown = "markdown"
	CellCode     = "code"
)

// Cell is one notebook cell. Cells are append-only: once added to a
// Notebook they are never removed or reordered.
type Cell struct {
	ID     string
	Type   string
	Source string
}

// Notebook is an ordered sequence of cells plus the fixed notebook-level
// metadata required by the format.
type Notebook struct {
	Cells []*Cell
}

// New returns an empty notebook.
func New() *Notebook {
	return &Notebook{}
}

// AddMarkdownCell appends a markdown cell with the given source.
func (n *Notebook) AddMarkdownCell(source string) {
	n.Cells = append(n.Cells, &Cell{ID: newCellID(), Type: CellMarkdown, Source: source})
}

// AddCodeCell appends a code cell with the given source.
func (n *Notebook) AddCodeCell(source string) {
	n.Cells = append(n.Cells, &Cell{ID: newCellID(), Type: CellCode, Source: source})
}

// newCellID returns a fresh nbformat 4.5 cell id.
func newCellID() string {
	return uuid.NewString()
}

// jsonCell is the on-disk cell layout. Code cells carry execution state
// fields that markdown cells must not have, hence the omitempty-driven split.
type jsonCell struct {
	ID             string          `json:"id"`
	CellType       string          `json:"cell_type"`
	Metadata       map[string]any  `json:"metadata"`
	ExecutionCount json.RawMessage `json:"execution_count,omitempty"`
	Outputs        json.RawMessage `json:"outputs,omitempty"`
	Source         []string        `json:"source"`
}

type jsonNotebook struct {
	Cells         []jsonCell     `json:"cells"`
	Metadata      map[string]any `json:"metadata"`
	NBFormat      int            `json:"nbformat"`
	NBFormatMinor int            `json:"nbformat_minor"`
}

// splitSource converts cell source text into the line list used on disk.
// Every line keeps its trailing newline except the last.
func splitSource(source string) []string {
	if source == "" {
		return []string{}
	}
	lines := strings.SplitAfter(source, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// notebookMetadata is the fixed python3 kernelspec the generated notebooks
// declare. The generated cells are Python regardless of the host platform.
func notebookMetadata() map[string]any {
	return map[string]any{
		"kernelspec": map[string]any{
			"display_name": "Python 3",
			"language":     "python",
			"name":         "python3",
		},
		"language_info": map[string]any{
			"name":    "python",
			"version": "3",
		},
	}
}

// MarshalJSON serializes the notebook in nbformat v4.5 layout.
func (n *Notebook) MarshalJSON() ([]byte, error) {
	out := jsonNotebook{
		Cells:         make([]jsonCell, 0, len(n.Cells)),
		Metadata:      notebookMetadata(),
		NBFormat:      4,
		NBFormatMinor: 5,
	}
	for _, c := range n.Cells {
		jc := jsonCell{
			ID:       c.ID,
			CellType: c.Type,
			Metadata: map[string]any{},
			Source:   splitSource(c.Source),
		}
		if c.Type == CellCode {
			// Fresh code cells have never run.
			jc.ExecutionCount = json.RawMessage("null")
			jc.Outputs = json.RawMessage("[]")
		}
		out.Cells = append(out.Cells, jc)
	}
	return json.Marshal(out)
}

// Write serializes the notebook to w with stable two-space indentation.
func (n *Notebook) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(n)
}

// WriteFile serializes the notebook and writes it to path. The notebook is
// marshalled in full before the file is touched, so a marshalling failure
// leaves no partial output behind.
func WriteFile(n *Notebook, path string) error {
	var buf strings.Builder
	if err := n.Write(&buf); err != nil {
		return fmt.Errorf("serializing notebook: %w", err)
	}
	return os.WriteFile(path, []byte(buf.String()), 0o644)
}
