// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package cmdctx

import (
	"errors"

	"github.com/spf13/cobra"
)

// FileFlag is the persistent flag naming the definitions file.
const FileFlag = "file"

// FromCommand extracts the Context from a cobra.Command's context.
// Returns nil if no Context is stored.
func FromCommand(cmd *cobra.Command) *Context {
	return From(cmd.Context())
}

// RequireFromCommand extracts the Context from a cobra.Command's context,
// returning an error if not found.
func RequireFromCommand(cmd *cobra.Command) (*Context, error) {
	ctx := FromCommand(cmd)
	if ctx == nil {
		return nil, errors.New("definitions not loaded")
	}
	return ctx, nil
}

// PreRunLoad returns a PersistentPreRunE function that loads the definitions
// file named by --file and stores it in the command's context.
func PreRunLoad(cmd *cobra.Command, _ []string) error {
	path, err := cmd.Flags().GetString(FileFlag)
	if err != nil || path == "" {
		path = DefaultFile
	}
	ctx, err := Load(cmd.Context(), path)
	if err != nil {
		return err
	}
	cmd.SetContext(ctx)
	return nil
}
