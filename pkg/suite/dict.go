// Copyright (c) 2026 Mariusz Górski. All rights reserved.
// SPDX-License-Identifier: MIT

package suite

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Dict is a string-keyed mapping that preserves insertion order. Expectation
// kwargs and meta blocks are rendered back into source-looking argument lists,
// so the order keys appear in the suite file is meaningful and must survive
// decoding.
type Dict struct {
	keys   []string
	values map[string]any
}

// NewDict returns an empty ordered mapping.
func NewDict() *Dict {
	return &Dict{values: make(map[string]any)}
}

// DictOf builds a Dict from alternating key/value arguments. It panics on an
// odd argument count or a non-string key; intended for literals in tests and
// template data, not for decoding untrusted input.
func DictOf(pairs ...any) *Dict {
	if len(pairs)%2 != 0 {
		panic("suite.DictOf: odd number of arguments")
	}
	d := NewDict()
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			panic(fmt.Sprintf("suite.DictOf: key %d is %T, not string", i/2, pairs[i]))
		}
		d.Set(key, pairs[i+1])
	}
	return d
}

// Set inserts or replaces a value. New keys append to the iteration order;
// existing keys keep their original position.
func (d *Dict) Set(key string, value any) {
	if d.values == nil {
		d.values = make(map[string]any)
	}
	if _, exists := d.values[key]; !exists {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

// Get returns the value for key and whether it is present.
func (d *Dict) Get(key string) (any, bool) {
	if d == nil || d.values == nil {
		return nil, false
	}
	v, ok := d.values[key]
	return v, ok
}

// Has reports whether key is present.
func (d *Dict) Has(key string) bool {
	_, ok := d.Get(key)
	return ok
}

// Keys returns the keys in insertion order. The returned slice is shared;
// callers must not modify it.
func (d *Dict) Keys() []string {
	if d == nil {
		return nil
	}
	return d.keys
}

// Len returns the number of entries. Safe on a nil receiver.
func (d *Dict) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

// Copy returns a shallow copy with its own key order and value map.
func (d *Dict) Copy() *Dict {
	out := NewDict()
	if d == nil {
		return out
	}
	for _, k := range d.keys {
		out.Set(k, d.values[k])
	}
	return out
}

// Without returns a copy with the given key removed. The receiver is never
// modified.
func (d *Dict) Without(key string) *Dict {
	out := NewDict()
	if d == nil {
		return out
	}
	for _, k := range d.keys {
		if k == key {
			continue
		}
		out.Set(k, d.values[k])
	}
	return out
}

// String renders the mapping in Go map-ish form, for logs and test failures.
func (d *Dict) String() string {
	if d == nil {
		return "dict{}"
	}
	s := "dict{"
	for i, k := range d.keys {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%s: %v", k, d.values[k])
	}
	return s + "}"
}

// UnmarshalYAML decodes a YAML (or JSON) mapping node, preserving key order.
// Nested mappings decode to *Dict, sequences to []any, scalars to their
// native Go types.
func (d *Dict) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("expected a mapping, got YAML node kind %v", value.Kind)
	}
	decoded, err := decodeMapping(value)
	if err != nil {
		return err
	}
	*d = *decoded
	return nil
}

func decodeMapping(node *yaml.Node) (*Dict, error) {
	d := NewDict()
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valNode := node.Content[i+1]
		val, err := decodeNode(valNode)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", keyNode.Value, err)
		}
		d.Set(keyNode.Value, val)
	}
	return d, nil
}

func decodeNode(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.MappingNode:
		return decodeMapping(node)
	case yaml.SequenceNode:
		out := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			v, err := decodeNode(item)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.AliasNode:
		return decodeNode(node.Alias)
	default:
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	}
}
