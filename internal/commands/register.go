// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/eanhuddleston/dataclass/internal/cmdctx"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dataclass",
		Short: "Define fixed-shape record types and render their records",
		Long: `Define fixed-shape record types in a YAML definitions file and render their records.

Types list their fields either inline or through a JSON Schema file.
Records only accept the fields declared by their type.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringP(cmdctx.FileFlag, "f", cmdctx.DefaultFile, "Definitions file")

	rootCmd.AddCommand(
		newTypesCmd(),
		newRenderCmd(),
		newNewCmd(),
		newSchemaCmd(),
		newVersionCmd(),
	)

	return rootCmd
}
