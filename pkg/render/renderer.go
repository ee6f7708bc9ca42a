// Copyright (c) 2026 Mariusz Górski. All rights reserved.
// SPDX-License-Identifier: MIT

// Package render turns an expectation suite into an editable Jupyter
// notebook: explanatory markdown cells interleaved with executable cells
// that re-create each expectation. Text generation is delegated to a
// template chain; this package owns the grouping, argument serialization,
// batch-kwargs resolution, and document assembly.
package render

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mgorsk1/great-expectations/pkg/nbformat"
	"github.com/mgorsk1/great-expectations/pkg/suite"
)

// HeaderCell configures a custom greeting cell at the top of the generated
// notebook. FileName names the template; TemplateKwargs are merged into the
// template data alongside suite_name.
type HeaderCell struct {
	FileName       string
	TemplateKwargs map[string]any
}

// Config holds the renderer construction parameters. The zero value renders
// with built-in templates, the default header, and no logging.
type Config struct {
	// CustomTemplatesDir optionally points at a directory whose files
	// shadow the built-in templates, name by name.
	CustomTemplatesDir string

	// Header optionally replaces the default HEADER.md greeting cell.
	Header *HeaderCell

	// Logger receives debug output; nil means no logging.
	Logger *zap.Logger
}

// Renderer assembles suite-edit notebooks. A Renderer is safe for repeated
// use; every Render call builds its own notebook and shares no state with
// other calls.
type Renderer struct {
	templates *TemplateSet
	header    *HeaderCell
	log       *zap.Logger
}

// New constructs a Renderer. A configured custom template directory that
// does not exist fails here, before any render attempt, with a
// *TemplateSourceNotFoundError.
func New(cfg Config) (*Renderer, error) {
	ts, err := NewTemplateSet(cfg.CustomTemplatesDir)
	if err != nil {
		return nil, err
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Renderer{templates: ts, header: cfg.Header, log: log}, nil
}

// Templates exposes the resolved template chain, for diagnostics.
func (r *Renderer) Templates() *TemplateSet {
	return r.templates
}

// Render builds a notebook from the suite. batchKwargs optionally overrides
// the descriptor recorded in the suite's citations. The returned notebook is
// complete; on error no notebook is returned.
func (r *Renderer) Render(s *suite.Suite, batchKwargs *suite.Dict) (*nbformat.Notebook, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	r.log.Debug("rendering suite-edit notebook",
		zap.String("suite", s.Name),
		zap.Int("expectations", len(s.Expectations)))

	nb := nbformat.New()
	resolved := ResolveBatchKwargs(s, batchKwargs)

	if err := r.addHeader(nb, s.Name, resolved); err != nil {
		return nil, err
	}
	if err := r.addMarkdownCell(nb, "AUTHORING_INTRO.md", nil); err != nil {
		return nil, err
	}
	if err := r.addExpectationCells(nb, s.Expectations); err != nil {
		return nil, err
	}
	if err := r.addFooter(nb); err != nil {
		return nil, err
	}

	r.log.Debug("notebook assembled", zap.Int("cells", len(nb.Cells)))
	return nb, nil
}

// RenderToDisk renders the suite and writes the notebook to path. The
// notebook is fully built before anything is written, so a render failure
// never leaves a partial file behind.
func (r *Renderer) RenderToDisk(s *suite.Suite, path string, batchKwargs *suite.Dict) error {
	nb, err := r.Render(s, batchKwargs)
	if err != nil {
		return err
	}
	r.log.Debug("writing notebook", zap.String("path", path))
	return nbformat.WriteFile(nb, path)
}

// addHeader emits the greeting markdown cell and the setup code cell. When
// no batch descriptor was resolved the setup cell renders an empty one and
// leaves correctness to the user running the notebook.
func (r *Renderer) addHeader(nb *nbformat.Notebook, suiteName string, batchKwargs *suite.Dict) error {
	if r.header != nil {
		data := map[string]any{"suite_name": suiteName}
		for k, v := range r.header.TemplateKwargs {
			data[k] = v
		}
		if err := r.addMarkdownCell(nb, r.header.FileName, data); err != nil {
			return err
		}
	} else {
		if err := r.addMarkdownCell(nb, "HEADER.md", map[string]any{"suite_name": suiteName}); err != nil {
			return err
		}
	}

	if batchKwargs == nil {
		batchKwargs = suite.NewDict()
	}
	return r.addCodeCell(nb, "header.py", true, map[string]any{
		"suite_name":   suiteName,
		"batch_kwargs": PyLiteral(batchKwargs),
	})
}

// addExpectationCells emits the table-scope section followed by the
// per-column sections.
func (r *Renderer) addExpectationCells(nb *nbformat.Notebook, expectations []*suite.Expectation) error {
	grouped := GroupByColumn(expectations)
	r.log.Debug("grouped expectations",
		zap.Int("table", len(grouped.Table)),
		zap.Int("columns", len(grouped.Columns)))

	if err := r.addMarkdownCell(nb, "TABLE_EXPECTATIONS_HEADER.md", nil); err != nil {
		return err
	}
	if err := r.addTableExpectations(nb, grouped.Table); err != nil {
		return err
	}
	if err := r.addMarkdownCell(nb, "COLUMN_EXPECTATIONS_HEADER.md", nil); err != nil {
		return err
	}
	return r.addColumnExpectations(nb, grouped.Columns)
}

func (r *Renderer) addTableExpectations(nb *nbformat.Notebook, table []*suite.Expectation) error {
	if len(table) == 0 {
		return r.addMarkdownCell(nb, "TABLE_EXPECTATIONS_NOT_FOUND.md", nil)
	}
	for _, exp := range table {
		err := r.addCodeCell(nb, "table_expectation.py", true, map[string]any{
			"expectation_type": exp.Type,
			"kwargs_string":    BuildKwargsString(exp.Kwargs),
			"meta_args":        BuildMetaArgs(exp.Meta),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) addColumnExpectations(nb *nbformat.Notebook, columns []*ColumnBucket) error {
	if len(columns) == 0 {
		return r.addMarkdownCell(nb, "COLUMN_EXPECTATIONS_NOT_FOUND.md", nil)
	}
	for _, bucket := range columns {
		if err := r.addMarkdownCell(nb, "COLUMN_EXPECTATIONS.md", map[string]any{"column": bucket.Column}); err != nil {
			return err
		}
		for _, exp := range bucket.Expectations {
			err := r.addCodeCell(nb, "column_expectation.py", true, map[string]any{
				"expectation_type": exp.Type,
				"kwargs_string":    BuildKwargsString(exp.Kwargs),
				"meta_args":        BuildMetaArgs(exp.Meta),
			})
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// addFooter emits the save-and-review cells. The footer code cell is used
// as authored; only header and per-expectation cells go through LintCode.
func (r *Renderer) addFooter(nb *nbformat.Notebook) error {
	if err := r.addMarkdownCell(nb, "FOOTER.md", nil); err != nil {
		return err
	}
	return r.addCodeCell(nb, "footer.py", false, nil)
}

func (r *Renderer) addMarkdownCell(nb *nbformat.Notebook, name string, data map[string]any) error {
	text, err := r.templates.Render(name, data)
	if err != nil {
		return fmt.Errorf("markdown cell %s: %w", name, err)
	}
	nb.AddMarkdownCell(text)
	return nil
}

func (r *Renderer) addCodeCell(nb *nbformat.Notebook, name string, lint bool, data map[string]any) error {
	code, err := r.templates.Render(name, data)
	if err != nil {
		return fmt.Errorf("code cell %s: %w", name, err)
	}
	if lint {
		code = LintCode(code)
	}
	nb.AddCodeCell(code)
	return nil
}
