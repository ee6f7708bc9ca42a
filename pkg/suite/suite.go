// Copyright (c) 2026 Mariusz Górski. All rights reserved.
// SPDX-License-Identifier: MIT

// Package suite holds the expectation-suite data model: a named, ordered
// collection of expectations plus the provenance (citations) of the data
// sources that produced it. Suites are read-only inputs to the renderer.
package suite

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidSuite reports a suite that cannot be rendered.
var ErrInvalidSuite = errors.New("invalid expectation suite")

// Expectation is a single data-validation rule. Kwargs order follows the
// source document and is preserved verbatim when the rule is rendered back
// into an executable call.
type Expectation struct {
	Type   string `yaml:"expectation_type"`
	Kwargs *Dict  `yaml:"kwargs"`
	Meta   *Dict  `yaml:"meta"`
}

// Column returns the column kwarg as a string, or "" when the expectation is
// table-scoped or the value is not a string.
func (e *Expectation) Column() string {
	v, ok := e.Kwargs.Get("column")
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Suite is a named, ordered collection of expectations. Meta carries
// free-form suite metadata; the "citations" entry records the batch
// descriptors used when the suite was created or profiled.
type Suite struct {
	Name         string         `yaml:"expectation_suite_name"`
	Expectations []*Expectation `yaml:"expectations"`
	Meta         *Dict          `yaml:"meta"`
}

// Citation is one provenance entry: when the suite was touched and, when
// known, the batch descriptor that was loaded at the time.
type Citation struct {
	Date        string
	Comment     string
	BatchKwargs *Dict
}

// Validate reports whether the suite is well-formed enough to render.
func (s *Suite) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: suite is nil", ErrInvalidSuite)
	}
	if s.Name == "" {
		return fmt.Errorf("%w: expectation_suite_name is required", ErrInvalidSuite)
	}
	for i, exp := range s.Expectations {
		if exp == nil || exp.Type == "" {
			return fmt.Errorf("%w: expectation %d has no expectation_type", ErrInvalidSuite, i)
		}
	}
	return nil
}

// Citations returns the provenance entries from suite meta, in document
// order. Entries that are not mappings are skipped.
func (s *Suite) Citations() []Citation {
	if s == nil {
		return nil
	}
	raw, ok := s.Meta.Get("citations")
	if !ok {
		return nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil
	}
	var citations []Citation
	for _, item := range items {
		entry, ok := item.(*Dict)
		if !ok {
			continue
		}
		var c Citation
		if v, ok := entry.Get("citation_date"); ok {
			c.Date, _ = v.(string)
		}
		if v, ok := entry.Get("comment"); ok {
			c.Comment, _ = v.(string)
		}
		if v, ok := entry.Get("batch_kwargs"); ok {
			c.BatchKwargs, _ = v.(*Dict)
		}
		citations = append(citations, c)
	}
	return citations
}

// CitationsWithBatchKwargs returns only the citations that carry a batch
// descriptor, preserving order.
func (s *Suite) CitationsWithBatchKwargs() []Citation {
	var out []Citation
	for _, c := range s.Citations() {
		if c.BatchKwargs != nil {
			out = append(out, c)
		}
	}
	return out
}

// Parse decodes a suite from JSON or YAML bytes. Expectation suites are
// stored as JSON; YAML 1.2 is a superset, so a single decoder covers both
// while keeping kwargs in document order.
func Parse(data []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing expectation suite: %w", err)
	}
	return &s, nil
}

// Load reads and parses a suite file.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading expectation suite %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
