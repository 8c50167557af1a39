// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package cmdctx provides definitions file loading for CLI commands.
package cmdctx

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/eanhuddleston/dataclass/internal/catalog"
	"github.com/eanhuddleston/dataclass/internal/config"
)

var (
	// ErrNotFound indicates the definitions file does not exist.
	ErrNotFound = errors.New("definitions file not found")

	// ErrInvalidConfig indicates the definitions file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid definitions file")

	// ErrInvalidSchema indicates a type whose JSON Schema could not be used.
	ErrInvalidSchema = errors.New("invalid type schema")
)

// DefaultFile is the definitions file used when --file is not given.
const DefaultFile = "dataclass.yaml"

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the loaded definitions file and its blueprints.
type Context struct {
	// Path is the definitions file the context was loaded from.
	Path string

	Config  *config.Config
	Catalog *catalog.Catalog
}

// Load reads the definitions file at path and returns a new context.Context
// with the resulting Context stored in it. Schema paths inside the file are
// resolved relative to the file's directory.
func Load(ctx context.Context, path string) (context.Context, error) {
	if _, statErr := os.Stat(path); errors.Is(statErr, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	cat, err := catalog.Build(cfg, os.DirFS(filepath.Dir(path)))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}

	return context.WithValue(ctx, contextKey{}, &Context{
		Path:    path,
		Config:  cfg,
		Catalog: cat,
	}), nil
}

// From extracts the Context from ctx. Returns nil if none is stored.
func From(ctx context.Context) *Context {
	if ctx == nil {
		return nil
	}
	c, _ := ctx.Value(contextKey{}).(*Context)
	return c
}
