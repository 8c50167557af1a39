// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package dataclass

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Record is one instance of a Blueprint. Its field set is fixed to the
// blueprint's declared fields. A Record is not safe for concurrent writes.
type Record struct {
	blueprint *Blueprint
	values    map[string]any
}

// Blueprint returns the blueprint the record was created from.
func (r *Record) Blueprint() *Blueprint {
	return r.blueprint
}

// TypeName returns the blueprint's name.
func (r *Record) TypeName() string {
	return r.blueprint.name
}

// Get returns the current value of a declared field.
func (r *Record) Get(name string) (any, error) {
	if !r.blueprint.Has(name) {
		return nil, newInvalidAttributeError(r.blueprint.name, name)
	}
	return r.values[name], nil
}

// Set assigns a declared field.
func (r *Record) Set(name string, value any) error {
	if !r.blueprint.Has(name) {
		return newInvalidAttributeError(r.blueprint.name, name)
	}
	r.values[name] = value
	return nil
}

// Equal reports whether both records declare the same fields in the same
// order and hold equal values for each of them.
//
// Blueprint identity is not compared: records of two blueprints created
// separately with the same field list are equal when their values are.
// Use Identical to also require the same blueprint.
//
// Records are compared with Equal wherever they appear, including inside
// slices, arrays, maps and pointers. A record is always equal to itself.
// A record that contains itself, directly or through other values, must
// not be compared with a different record.
func (r *Record) Equal(other *Record) bool {
	if r == other {
		return true
	}
	if r == nil || other == nil {
		return false
	}
	if r.blueprint == nil || other.blueprint == nil {
		return r.blueprint == other.blueprint
	}
	if !slices.Equal(r.blueprint.fields, other.blueprint.fields) {
		return false
	}
	for _, f := range r.blueprint.fields {
		if !valuesEqual(r.values[f], other.values[f]) {
			return false
		}
	}
	return true
}

// Identical reports whether both records come from the same blueprint and are Equal.
func (r *Record) Identical(other *Record) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.blueprint == other.blueprint && r.Equal(other)
}

var recordType = reflect.TypeOf(Record{})

// valuesEqual is reflect.DeepEqual, except that records met at any depth
// are compared with Equal.
func valuesEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return deepEqual(reflect.ValueOf(a), reflect.ValueOf(b))
}

func deepEqual(a, b reflect.Value) bool {
	if a.Type() != b.Type() {
		return false
	}

	switch a.Kind() {
	case reflect.Interface:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() == b.IsNil()
		}
		return deepEqual(a.Elem(), b.Elem())
	case reflect.Pointer:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() == b.IsNil()
		}
		if a.Type().Elem() == recordType {
			return recordOf(a).Equal(recordOf(b))
		}
		if a.Pointer() == b.Pointer() {
			return true
		}
		return deepEqual(a.Elem(), b.Elem())
	case reflect.Struct:
		if a.Type() == recordType {
			return recordValue(a).Equal(recordValue(b))
		}
	case reflect.Slice:
		if a.IsNil() != b.IsNil() || a.Len() != b.Len() {
			return false
		}
		return elementsEqual(a, b)
	case reflect.Array:
		return elementsEqual(a, b)
	case reflect.Map:
		if a.IsNil() != b.IsNil() || a.Len() != b.Len() {
			return false
		}
		iter := a.MapRange()
		for iter.Next() {
			bv := b.MapIndex(iter.Key())
			if !bv.IsValid() || !deepEqual(iter.Value(), bv) {
				return false
			}
		}
		return true
	}

	if !a.CanInterface() || !b.CanInterface() {
		return false
	}
	return reflect.DeepEqual(a.Interface(), b.Interface())
}

func elementsEqual(a, b reflect.Value) bool {
	for i := 0; i < a.Len(); i++ {
		if !deepEqual(a.Index(i), b.Index(i)) {
			return false
		}
	}
	return true
}

func recordOf(v reflect.Value) *Record {
	if !v.CanInterface() {
		return nil
	}
	r, _ := v.Interface().(*Record)
	return r
}

// recordValue returns a pointer to a copy of a Record held by value.
func recordValue(v reflect.Value) *Record {
	if !v.CanInterface() {
		return nil
	}
	r, _ := v.Interface().(Record)
	return &r
}

// String returns the display form: <TypeName f1: v1; f2: v2>.
func (r *Record) String() string {
	return "<" + r.blueprint.name + " " + r.join(": ", "; ") + ">"
}

// Repr returns the reconstruction form: TypeName(f1=v1, f2=v2).
func (r *Record) Repr() string {
	return r.blueprint.name + "(" + r.join("=", ", ") + ")"
}

// GoString makes %#v print the reconstruction form.
func (r *Record) GoString() string {
	return r.Repr()
}

func (r *Record) join(assign, sep string) string {
	parts := make([]string, len(r.blueprint.fields))
	for i, f := range r.blueprint.fields {
		parts[i] = f + assign + Repr(r.values[f])
	}
	return strings.Join(parts, sep)
}

// ToMap returns a new map holding every declared field and its value.
func (r *Record) ToMap() map[string]any {
	m := make(map[string]any, len(r.values))
	for k, v := range r.values {
		m[k] = v
	}
	return m
}

// MarshalJSON encodes the record as a JSON object in declared field order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.uniqueFields() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(r.values[f])
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the record as a YAML mapping in declared field order.
func (r *Record) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range r.uniqueFields() {
		var val yaml.Node
		if err := val.Encode(r.values[f]); err != nil {
			return nil, fmt.Errorf("field %s: %w", f, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f},
			&val,
		)
	}
	return node, nil
}

// uniqueFields returns the declared fields with repeated names dropped.
func (r *Record) uniqueFields() []string {
	seen := make(map[string]struct{}, len(r.blueprint.fields))
	out := make([]string, 0, len(r.blueprint.fields))
	for _, f := range r.blueprint.fields {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}
