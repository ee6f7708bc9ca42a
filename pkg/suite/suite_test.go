// Copyright (c) 2026 Mariusz Górski. All rights reserved.
// SPDX-License-Identifier: MIT

package suite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSuiteJSON = `{
  "expectation_suite_name": "warning",
  "expectations": [
    {
      "expectation_type": "expect_table_row_count_to_be_between",
      "kwargs": {"min_value": 10, "max_value": 100}
    },
    {
      "expectation_type": "expect_column_values_to_not_be_null",
      "kwargs": {"column": "user_id"},
      "meta": {"notes": "added by hand"}
    }
  ],
  "meta": {
    "great_expectations.__version__": "0.10.4",
    "citations": [
      {"citation_date": "2020-01-01T00:00:00Z", "comment": "initial profile"},
      {
        "citation_date": "2020-02-01T00:00:00Z",
        "batch_kwargs": {"path": "data/users.csv", "datasource": "files"}
      }
    ]
  }
}`

func TestParse_SuiteFields(t *testing.T) {
	s, err := Parse([]byte(sampleSuiteJSON))
	require.NoError(t, err)

	assert.Equal(t, "warning", s.Name)
	require.Len(t, s.Expectations, 2)
	assert.Equal(t, "expect_table_row_count_to_be_between", s.Expectations[0].Type)
	assert.Equal(t, []string{"min_value", "max_value"}, s.Expectations[0].Kwargs.Keys())
	assert.Equal(t, "user_id", s.Expectations[1].Column())
}

func TestSuite_Citations(t *testing.T) {
	s, err := Parse([]byte(sampleSuiteJSON))
	require.NoError(t, err)

	citations := s.Citations()
	require.Len(t, citations, 2)
	assert.Equal(t, "initial profile", citations[0].Comment)
	assert.Nil(t, citations[0].BatchKwargs)

	cited := s.CitationsWithBatchKwargs()
	require.Len(t, cited, 1)
	path, _ := cited[0].BatchKwargs.Get("path")
	assert.Equal(t, "data/users.csv", path)
}

func TestSuite_CitationsAbsentMeta(t *testing.T) {
	s := &Suite{Name: "bare"}
	assert.Nil(t, s.Citations())
	assert.Nil(t, s.CitationsWithBatchKwargs())
}

func TestSuite_Validate(t *testing.T) {
	var nilSuite *Suite
	assert.ErrorIs(t, nilSuite.Validate(), ErrInvalidSuite)

	assert.ErrorIs(t, (&Suite{}).Validate(), ErrInvalidSuite)

	missingType := &Suite{Name: "s", Expectations: []*Expectation{{Kwargs: NewDict()}}}
	assert.ErrorIs(t, missingType.Validate(), ErrInvalidSuite)

	ok := &Suite{Name: "s", Expectations: []*Expectation{{Type: "expect_things", Kwargs: NewDict()}}}
	assert.NoError(t, ok.Validate())
}

func TestLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warning.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleSuiteJSON), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warning", s.Name)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestExpectation_ColumnNonString(t *testing.T) {
	exp := &Expectation{Type: "t", Kwargs: DictOf("column", 7)}
	assert.Equal(t, "", exp.Column())
}
