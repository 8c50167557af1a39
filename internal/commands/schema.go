// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/eanhuddleston/dataclass/internal/cmdctx"
	"github.com/eanhuddleston/dataclass/internal/jschema"
	"github.com/spf13/cobra"
)

func newSchemaCmd() *cobra.Command {
	var typeName string

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print a declared type as JSON Schema",
		Long: `Print a declared type as a JSON Schema object.

Fields are untyped, so each property accepts any value. Properties the
type does not declare are rejected.`,
		Example: `  # Print the schema of PersonData
  dataclass schema --type PersonData`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: cmdctx.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cmdctx.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runSchema(cmd.OutOrStdout(), ctx, typeName)
		},
	}

	cmd.Flags().StringVarP(&typeName, "type", "t", "", "Type to describe")

	return cmd
}

func runSchema(out io.Writer, ctx *cmdctx.Context, typeName string) error {
	if typeName == "" {
		return errors.New("--type is required")
	}
	bp, err := ctx.Catalog.Lookup(typeName)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(jschema.FromBlueprint(bp))
}
