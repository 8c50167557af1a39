// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package catalog builds the blueprints declared in a definitions file.
package catalog

import (
	"fmt"
	"io/fs"

	"github.com/eanhuddleston/dataclass"
	"github.com/eanhuddleston/dataclass/internal/config"
	"github.com/eanhuddleston/dataclass/internal/jschema"
)

// Catalog holds the blueprints of one definitions file, by name and in
// declaration order.
type Catalog struct {
	blueprints map[string]*dataclass.Blueprint
	names      []string
	records    []config.RecordDef
}

// Build creates a blueprint for every type in cfg. Schema paths are read
// from fsys.
func Build(cfg *config.Config, fsys fs.FS) (*Catalog, error) {
	c := &Catalog{
		blueprints: make(map[string]*dataclass.Blueprint, len(cfg.Types)),
		records:    cfg.Records,
	}
	loader := jschema.NewLoader(fsys)

	for _, t := range cfg.Types {
		bp, err := blueprintFor(t, loader)
		if err != nil {
			return nil, fmt.Errorf("type %s: %w", t.Name, err)
		}
		c.blueprints[t.Name] = bp
		c.names = append(c.names, t.Name)
	}
	return c, nil
}

func blueprintFor(t config.TypeDef, loader *jschema.Loader) (*dataclass.Blueprint, error) {
	if t.Schema == "" {
		return dataclass.New(t.Name, t.Fields), nil
	}
	schema, order, err := loader.LoadFile(t.Schema)
	if err != nil {
		return nil, err
	}
	return jschema.Blueprint(t.Name, schema, order)
}

// Lookup retrieves a blueprint by name.
func (c *Catalog) Lookup(name string) (*dataclass.Blueprint, error) {
	bp, ok := c.blueprints[name]
	if !ok {
		return nil, fmt.Errorf("unknown type: %s", name)
	}
	return bp, nil
}

// Names returns the type names in declaration order.
func (c *Catalog) Names() []string {
	return append([]string(nil), c.names...)
}

// Records instantiates every record of the definitions file.
func (c *Catalog) Records() ([]*dataclass.Record, error) {
	records := make([]*dataclass.Record, 0, len(c.records))
	for i, def := range c.records {
		bp, err := c.Lookup(def.Type)
		if err != nil {
			return nil, fmt.Errorf("records[%d]: %w", i, err)
		}
		r, err := bp.Instantiate(def.Values)
		if err != nil {
			return nil, fmt.Errorf("records[%d] (%s): %w", i, def.Type, err)
		}
		records = append(records, r)
	}
	return records, nil
}
