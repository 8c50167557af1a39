// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package jschema converts between JSON Schema object definitions and blueprints.
package jschema

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/eanhuddleston/dataclass"
	"github.com/google/jsonschema-go/jsonschema"
)

// ErrNotObject indicates a schema that does not describe an object.
var ErrNotObject = errors.New("schema is not an object schema")

// Format is the encoding of a schema file.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// FormatFromPath returns the format implied by a file extension.
// Anything that is not .yaml or .yml is treated as JSON.
func FormatFromPath(path string) Format {
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return YAML
	}
	return JSON
}

// Blueprint builds a blueprint from an object schema. Fields follow order,
// the property order found in the source file; properties missing from order
// are appended sorted by name. An empty name falls back to the schema title.
func Blueprint(name string, s *jsonschema.Schema, order []string) (*dataclass.Blueprint, error) {
	if s == nil || !isObject(s) {
		return nil, ErrNotObject
	}
	if name == "" {
		name = s.Title
	}
	if name == "" {
		return nil, fmt.Errorf("schema has no title and no name was given")
	}
	return dataclass.New(name, propertyNames(s, order)), nil
}

func isObject(s *jsonschema.Schema) bool {
	if s.Type == "object" || slices.Contains(s.Types, "object") {
		return true
	}
	return s.Type == "" && len(s.Types) == 0 && len(s.Properties) > 0
}

func propertyNames(s *jsonschema.Schema, order []string) []string {
	names := make([]string, 0, len(s.Properties))
	for _, key := range order {
		if _, ok := s.Properties[key]; ok && !slices.Contains(names, key) {
			names = append(names, key)
		}
	}
	var rest []string
	for key := range s.Properties {
		if !slices.Contains(names, key) {
			rest = append(rest, key)
		}
	}
	slices.Sort(rest)
	return append(names, rest...)
}

// FromBlueprint describes a blueprint as an object schema. Fields are untyped,
// so every property accepts any value; undeclared properties are rejected.
func FromBlueprint(bp *dataclass.Blueprint) *jsonschema.Schema {
	props := make(map[string]*jsonschema.Schema)
	for _, f := range bp.Fields() {
		props[f] = &jsonschema.Schema{}
	}
	return &jsonschema.Schema{
		Title:                bp.Name(),
		Type:                 "object",
		Properties:           props,
		AdditionalProperties: &jsonschema.Schema{Not: &jsonschema.Schema{}},
	}
}
