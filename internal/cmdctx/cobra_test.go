// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package cmdctx

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCmd(file string) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Flags().String(FileFlag, file, "")
	cmd.SetContext(context.Background())
	return cmd
}

func TestFromCommand(t *testing.T) {
	cmd := newTestCmd("testdata/valid/dataclass.yaml")

	// Before PreRunLoad
	assert.Nil(t, FromCommand(cmd))

	// After PreRunLoad
	require.NoError(t, PreRunLoad(cmd, nil))
	dcCtx := FromCommand(cmd)
	require.NotNil(t, dcCtx)
	assert.Equal(t, []string{"PersonData", "Order"}, dcCtx.Catalog.Names())
}

func TestRequireFromCommand(t *testing.T) {
	tests := []struct {
		name      string
		file      string
		loadFirst bool
		wantErr   bool
	}{
		{
			name:      "not loaded",
			loadFirst: false,
			wantErr:   true,
		},
		{
			name:      "loaded",
			file:      "testdata/valid/dataclass.yaml",
			loadFirst: true,
			wantErr:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newTestCmd(tt.file)
			if tt.loadFirst {
				require.NoError(t, PreRunLoad(cmd, nil))
			}

			ctx, err := RequireFromCommand(cmd)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, ctx)
				return
			}
			require.NoError(t, err)
			assert.Len(t, ctx.Config.Records, 1)
		})
	}
}

func TestPreRunLoad_MissingFile(t *testing.T) {
	cmd := newTestCmd("testdata/nope/dataclass.yaml")
	err := PreRunLoad(cmd, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}
