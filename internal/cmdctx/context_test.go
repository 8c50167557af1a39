// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package cmdctx

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		path      string // empty means a file inside t.TempDir()
		wantErr   error
		wantTypes []string // only checked if wantErr is nil
	}{
		{
			name:    "not found",
			path:    "",
			wantErr: ErrNotFound,
		},
		{
			name:    "invalid config",
			path:    "testdata/invalid-config/dataclass.yaml",
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "schema not found",
			path:    "testdata/bad-schema/dataclass.yaml",
			wantErr: ErrInvalidSchema,
		},
		{
			name:      "valid",
			path:      "testdata/valid/dataclass.yaml",
			wantTypes: []string{"PersonData", "Order"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tt.path
			if path == "" {
				path = filepath.Join(t.TempDir(), DefaultFile)
			}

			ctx, err := Load(context.Background(), path)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			dcCtx := From(ctx)
			require.NotNil(t, dcCtx)
			assert.Equal(t, path, dcCtx.Path)
			assert.Equal(t, tt.wantTypes, dcCtx.Catalog.Names())
		})
	}
}

func TestLoad_SchemaRelativeToFile(t *testing.T) {
	ctx, err := Load(context.Background(), "testdata/valid/dataclass.yaml")
	require.NoError(t, err)

	order, err := From(ctx).Catalog.Lookup("Order")
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "total"}, order.Fields())
}

func TestFrom_NoContextStored(t *testing.T) {
	assert.Nil(t, From(context.Background()))
}
