// Copyright (c) 2026 Mariusz Górski. All rights reserved.
// SPDX-License-Identifier: MIT

package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgorsk1/great-expectations/pkg/nbformat"
	"github.com/mgorsk1/great-expectations/pkg/suite"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New(Config{})
	require.NoError(t, err)
	return r
}

func cellTypes(nb *nbformat.Notebook) []string {
	types := make([]string, 0, len(nb.Cells))
	for _, c := range nb.Cells {
		types = append(types, c.Type)
	}
	return types
}

func TestRender_EmptySuiteCellSequence(t *testing.T) {
	r := newTestRenderer(t)
	nb, err := r.Render(&suite.Suite{Name: "mysuite"}, nil)
	require.NoError(t, err)

	require.Len(t, nb.Cells, 9)
	assert.Equal(t, []string{
		"markdown", "code", // header greeting + setup
		"markdown",             // authoring intro
		"markdown", "markdown", // table section header + none found
		"markdown", "markdown", // column section header + none found
		"markdown", "code", // footer
	}, cellTypes(nb))

	assert.Contains(t, nb.Cells[0].Source, "`mysuite`")
	assert.Contains(t, nb.Cells[1].Source, "batch_kwargs = {}")
	assert.Contains(t, nb.Cells[4].Source, "No table level expectations")
	assert.Contains(t, nb.Cells[6].Source, "No column level expectations")
}

func TestRender_TableAndColumnCells(t *testing.T) {
	s := &suite.Suite{
		Name: "mysuite",
		Expectations: []*suite.Expectation{
			{Type: "expect_table_row_count_to_be_between", Kwargs: suite.DictOf("min_value", 1)},
			{Type: "expect_column_values_to_not_be_null", Kwargs: suite.DictOf("column", "x")},
			{Type: "expect_column_values_to_be_unique", Kwargs: suite.DictOf("column", "x")},
		},
	}

	nb, err := newTestRenderer(t).Render(s, nil)
	require.NoError(t, err)

	// header md, header code, intro, table header, 1 table cell,
	// column header, column x header, 2 column cells, footer md, footer code.
	require.Len(t, nb.Cells, 11)
	assert.Equal(t, "expect_table_row_count_to_be_between(min_value=1)",
		strings.TrimPrefix(nb.Cells[4].Source, "batch."))
	assert.Contains(t, nb.Cells[6].Source, "`x`")
	assert.Equal(t, "batch.expect_column_values_to_not_be_null('x')", nb.Cells[7].Source)
	assert.Equal(t, "batch.expect_column_values_to_be_unique('x')", nb.Cells[8].Source)
}

func TestRender_MetaFragmentOnExpectationCells(t *testing.T) {
	s := &suite.Suite{
		Name: "mysuite",
		Expectations: []*suite.Expectation{
			{
				Type:   "expect_column_values_to_not_be_null",
				Kwargs: suite.DictOf("column", "x"),
				Meta: suite.DictOf(
					"BasicSuiteBuilderProfiler", suite.DictOf("created", "then"),
					"notes", "ok",
				),
			},
		},
	}

	nb, err := newTestRenderer(t).Render(s, nil)
	require.NoError(t, err)

	var cell string
	for _, c := range nb.Cells {
		if c.Type == "code" && strings.Contains(c.Source, "expect_column_values_to_not_be_null") {
			cell = c.Source
		}
	}
	assert.Equal(t, "batch.expect_column_values_to_not_be_null('x', meta={'notes': 'ok'})", cell)
}

func TestRender_BatchKwargsFromCitations(t *testing.T) {
	s := &suite.Suite{
		Name: "mysuite",
		Meta: suite.DictOf("citations", []any{
			suite.DictOf("batch_kwargs", suite.DictOf("path", "data/users.csv")),
		}),
	}

	nb, err := newTestRenderer(t).Render(s, nil)
	require.NoError(t, err)
	assert.Contains(t, nb.Cells[1].Source, "batch_kwargs = {'path': '../../data/users.csv'}")
}

func TestRender_InvalidSuite(t *testing.T) {
	r := newTestRenderer(t)

	_, err := r.Render(nil, nil)
	assert.ErrorIs(t, err, suite.ErrInvalidSuite)

	_, err = r.Render(&suite.Suite{}, nil)
	assert.ErrorIs(t, err, suite.ErrInvalidSuite)
}

func TestRender_CustomHeaderCell(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "GREETING.md"),
		[]byte("# Hello {{.team}}, editing {{.suite_name}}\n"), 0o644))

	r, err := New(Config{
		CustomTemplatesDir: dir,
		Header: &HeaderCell{
			FileName:       "GREETING.md",
			TemplateKwargs: map[string]any{"team": "data-eng"},
		},
	})
	require.NoError(t, err)

	nb, err := r.Render(&suite.Suite{Name: "mysuite"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "# Hello data-eng, editing mysuite\n", nb.Cells[0].Source)
}

func TestRender_CustomHeaderTemplateMissing(t *testing.T) {
	r, err := New(Config{Header: &HeaderCell{FileName: "MISSING.md"}})
	require.NoError(t, err)

	_, err = r.Render(&suite.Suite{Name: "mysuite"}, nil)
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestNew_MissingTemplateDirFailsBeforeRender(t *testing.T) {
	_, err := New(Config{CustomTemplatesDir: filepath.Join(t.TempDir(), "gone")})
	var notFound *TemplateSourceNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestRenderToDisk_WritesNotebook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edit_mysuite.ipynb")
	err := newTestRenderer(t).RenderToDisk(&suite.Suite{Name: "mysuite"}, path, nil)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"nbformat": 4`)
}

func TestRenderToDisk_NoFileOnRenderFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edit_bad.ipynb")
	err := newTestRenderer(t).RenderToDisk(&suite.Suite{}, path, nil)
	require.Error(t, err)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "failed render must not leave a file behind")
}

func TestRender_HeaderCodeCellIsLinted(t *testing.T) {
	nb, err := newTestRenderer(t).Render(&suite.Suite{Name: "mysuite"}, nil)
	require.NoError(t, err)
	assert.False(t, strings.HasSuffix(nb.Cells[1].Source, "\n"))
}
