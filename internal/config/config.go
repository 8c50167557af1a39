// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles dataclass definitions files.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the definitions file format.
const CurrentConfigVersion = 1

var (
	// ErrUnsupportedVersion indicates a definitions file of an unknown version.
	ErrUnsupportedVersion = errors.New("unsupported config version")

	// ErrInvalidType indicates a malformed type definition.
	ErrInvalidType = errors.New("invalid type definition")

	// ErrUnknownType indicates a record that references an undefined type.
	ErrUnknownType = errors.New("unknown type")
)

// Config represents a dataclass.yaml definitions file.
type Config struct {
	Version int         `yaml:"version"`
	Types   []TypeDef   `yaml:"types"`
	Records []RecordDef `yaml:"records,omitempty"`
}

// TypeDef declares one record type. Exactly one of Fields or Schema is set.
type TypeDef struct {
	Name   string    `yaml:"name"`
	Fields FieldList `yaml:"fields,omitempty"`
	Schema string    `yaml:"schema,omitempty"` // path to a JSON Schema, relative to the file
}

// RecordDef is a record to instantiate from a declared type.
type RecordDef struct {
	Type   string         `yaml:"type"`
	Values map[string]any `yaml:"values,omitempty"`
}

// FieldList is a list of field names. In YAML it is written either as a
// sequence or as one whitespace-separated string.
type FieldList []string

// UnmarshalYAML accepts a scalar or a sequence of scalars.
func (l *FieldList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*l = strings.Fields(value.Value)
		return nil
	case yaml.SequenceNode:
		var names []string
		if err := value.Decode(&names); err != nil {
			return err
		}
		*l = names
		return nil
	default:
		return fmt.Errorf("line %d: fields must be a string or a list", value.Line)
	}
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return ErrUnsupportedVersion
	}

	seen := make(map[string]bool, len(c.Types))
	for i, t := range c.Types {
		switch {
		case t.Name == "":
			return fmt.Errorf("%w: types[%d] has no name", ErrInvalidType, i)
		case seen[t.Name]:
			return fmt.Errorf("%w: %s is defined more than once", ErrInvalidType, t.Name)
		case len(t.Fields) > 0 && t.Schema != "":
			return fmt.Errorf("%w: %s sets both fields and schema", ErrInvalidType, t.Name)
		case len(t.Fields) == 0 && t.Schema == "":
			return fmt.Errorf("%w: %s needs fields or schema", ErrInvalidType, t.Name)
		}
		seen[t.Name] = true
	}

	for i, r := range c.Records {
		if !seen[r.Type] {
			return fmt.Errorf("%w: records[%d] references %q", ErrUnknownType, i, r.Type)
		}
	}
	return nil
}
