// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package dataclass generates named record types with a fixed set of attributes.
//
// A Blueprint is created once from a type name and an ordered list of field
// names, then instantiated any number of times:
//
//	person := dataclass.Parse("PersonData", "name age")
//	joe, err := person.Instantiate(dataclass.Values{"name": "joe", "age": 10})
//	fmt.Println(joe)         // <PersonData name: 'joe'; age: 10>
//	fmt.Printf("%#v\n", joe) // PersonData(name='joe', age=10)
//
// Records only accept the declared fields. Reading, writing or initializing any
// other name fails with an *InvalidAttributeError.
package dataclass

import (
	"slices"
	"strings"
)

// Values maps field names to initial values.
type Values map[string]any

// Blueprint describes one generated record type: its display name and its
// declared fields in order. It is immutable once created.
type Blueprint struct {
	name     string
	fields   []string
	declared map[string]struct{}
}

// New creates a blueprint from an explicit list of field names.
// Names are kept as given; duplicates are not removed.
func New(name string, fields []string) *Blueprint {
	fields = slices.Clone(fields)
	declared := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		declared[f] = struct{}{}
	}
	return &Blueprint{name: name, fields: fields, declared: declared}
}

// Parse creates a blueprint from a whitespace-separated list of field names.
func Parse(name, fields string) *Blueprint {
	return New(name, strings.Fields(fields))
}

// Name returns the type name used when rendering records.
func (b *Blueprint) Name() string {
	return b.name
}

// Fields returns the declared field names in order.
func (b *Blueprint) Fields() []string {
	return slices.Clone(b.fields)
}

// Has reports whether name is a declared field.
func (b *Blueprint) Has(name string) bool {
	_, ok := b.declared[name]
	return ok
}

// Instantiate creates a record. Fields missing from v are set to nil.
// Keys of v that are not declared fields are rejected, all at once.
func (b *Blueprint) Instantiate(v Values) (*Record, error) {
	var invalid []string
	for k := range v {
		if !b.Has(k) {
			invalid = append(invalid, k)
		}
	}
	if len(invalid) > 0 {
		return nil, newInvalidAttributeError(b.name, invalid...)
	}

	values := make(map[string]any, len(b.declared))
	for _, f := range b.fields {
		values[f] = v[f]
	}
	return &Record{blueprint: b, values: values}, nil
}

// MustInstantiate is like Instantiate but panics on error.
func (b *Blueprint) MustInstantiate(v Values) *Record {
	r, err := b.Instantiate(v)
	if err != nil {
		panic(err)
	}
	return r
}

func (b *Blueprint) String() string {
	return b.name + "(" + strings.Join(b.fields, ", ") + ")"
}
