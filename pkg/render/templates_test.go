// Copyright (c) 2026 Mariusz Górski. All rights reserved.
// SPDX-License-Identifier: MIT

package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTemplateSet_MissingCustomDir(t *testing.T) {
	_, err := NewTemplateSet(filepath.Join(t.TempDir(), "does-not-exist"))

	var notFound *TemplateSourceNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Contains(t, notFound.Error(), "does-not-exist")
}

func TestTemplateSet_BuiltinCoversAllLogicalNames(t *testing.T) {
	ts, err := NewTemplateSet("")
	require.NoError(t, err)

	infos := ts.List()
	require.Len(t, infos, len(templateNames))
	for _, info := range infos {
		assert.Equal(t, "default", info.Source, info.Name)
		assert.Greater(t, info.Bytes, 0, info.Name)
	}
}

func TestTemplateSet_CustomShadowsDefault(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "HEADER.md"),
		[]byte("# Custom greeting for {{.suite_name}}\n"), 0o644))

	ts, err := NewTemplateSet(dir)
	require.NoError(t, err)

	out, err := ts.Render("HEADER.md", map[string]any{"suite_name": "mysuite"})
	require.NoError(t, err)
	assert.Equal(t, "# Custom greeting for mysuite\n", out)

	// Names absent from the custom dir still resolve to the defaults.
	out, err = ts.Render("TABLE_EXPECTATIONS_HEADER.md", nil)
	require.NoError(t, err)
	assert.Contains(t, out, "Table Expectation(s)")

	for _, info := range ts.List() {
		if info.Name == "HEADER.md" {
			assert.Equal(t, "custom", info.Source)
		} else {
			assert.Equal(t, "default", info.Source, info.Name)
		}
	}
}

func TestTemplateSet_UnknownName(t *testing.T) {
	ts, err := NewTemplateSet("")
	require.NoError(t, err)

	_, err = ts.Render("NO_SUCH_TEMPLATE.md", nil)
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestTemplateSet_DefaultHeaderSubstitution(t *testing.T) {
	ts, err := NewTemplateSet("")
	require.NoError(t, err)

	out, err := ts.Render("header.py", map[string]any{
		"suite_name":   "mysuite",
		"batch_kwargs": "{'path': '../../data/x.csv'}",
	})
	require.NoError(t, err)
	assert.Contains(t, out, `expectation_suite_name = "mysuite"`)
	assert.Contains(t, out, "batch_kwargs = {'path': '../../data/x.csv'}")
}

func TestLintCode_StripsTrailingBlankLines(t *testing.T) {
	in := "line_one()\n\nline_two()  \n\n\n"
	assert.Equal(t, "line_one()\n\nline_two()", LintCode(in))
}
