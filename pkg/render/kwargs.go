// Copyright (c) 2026 Mariusz Górski. All rights reserved.
// SPDX-License-Identifier: MIT

package render

import (
	"strings"

	"github.com/mgorsk1/great-expectations/pkg/suite"
)

// profilerMarkerKey tags expectations generated by the automated suite
// profiler. It is bookkeeping, not user content, and is stripped before meta
// is surfaced in a notebook cell.
const profilerMarkerKey = "BasicSuiteBuilderProfiler"

// BuildKwargsString formats expectation kwargs as the argument list of an
// executable expectation call. The column kwarg becomes a bare positional
// literal hoisted to the front; other string values render as name='value';
// everything else renders as name=<literal>. Relative order of the remaining
// kwargs follows the suite file exactly.
func BuildKwargsString(kwargs *suite.Dict) string {
	if kwargs.Len() == 0 {
		return ""
	}
	var parts []string
	if col, ok := kwargs.Get("column"); ok {
		parts = append(parts, PyLiteral(col))
	}
	for _, k := range kwargs.Keys() {
		if k == "column" {
			continue
		}
		v, _ := kwargs.Get(k)
		parts = append(parts, k+"="+PyLiteral(v))
	}
	return strings.Join(parts, ", ")
}

// BuildMetaArgs formats expectation meta as a trailing ", meta={...}"
// fragment. Nil or empty meta yields "". The profiler marker is removed from
// a copy, never from the caller's mapping; if nothing else remains the
// fragment is omitted entirely.
func BuildMetaArgs(meta *suite.Dict) string {
	if meta.Len() == 0 {
		return ""
	}
	cleaned := meta.Without(profilerMarkerKey)
	if cleaned.Len() == 0 {
		return ""
	}
	return ", meta=" + PyLiteral(cleaned)
}
