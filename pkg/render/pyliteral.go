// Copyright (c) 2026 Mariusz Górski. All rights reserved.
// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/mgorsk1/great-expectations/pkg/suite"
)

// PyLiteral renders a decoded suite value as Python literal source text, the
// form the generated notebook cells embed directly into expectation calls.
// Ordered mappings render in insertion order; a plain Go map (which should
// not normally appear in decoded suites) renders with sorted keys so output
// stays deterministic.
func PyLiteral(v any) string {
	switch val := v.(type) {
	case nil:
		return "None"
	case bool:
		if val {
			return "True"
		}
		return "False"
	case string:
		return pyString(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'g', -1, 32)
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, PyLiteral(item))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *suite.Dict:
		parts := make([]string, 0, val.Len())
		for _, k := range val.Keys() {
			item, _ := val.Get(k)
			parts = append(parts, pyString(k)+": "+PyLiteral(item))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, pyString(k)+": "+PyLiteral(val[k]))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return fmt.Sprintf("%v", val)
	}
}

// pyString renders a single-quoted Python string literal.
func pyString(s string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}
