// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/eanhuddleston/dataclass"
	"github.com/eanhuddleston/dataclass/internal/cmdctx"
	"github.com/spf13/cobra"
)

type renderOptions struct {
	format   string
	typeName string
}

func newRenderCmd() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Instantiate and print the records of the definitions file",
		Long: fmt.Sprintf(`Instantiate every record listed in the definitions file and print it.

Available formats: %s`, strings.Join(formats, ", ")),
		Example: `  # Print records in display form
  dataclass render

  # Print PersonData records as constructor calls
  dataclass render --type PersonData --format repr

  # Print records as JSON
  dataclass render --format json`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: cmdctx.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cmdctx.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runRender(cmd.OutOrStdout(), ctx, opts)
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", formatDisplay, fmt.Sprintf("Output format (%s)", strings.Join(formats, ", ")))
	cmd.Flags().StringVarP(&opts.typeName, "type", "t", "", "Only print records of this type")

	return cmd
}

func runRender(out io.Writer, ctx *cmdctx.Context, opts *renderOptions) error {
	if err := validateFormat(opts.format); err != nil {
		return err
	}
	if opts.typeName != "" {
		if _, err := ctx.Catalog.Lookup(opts.typeName); err != nil {
			return err
		}
	}

	records, err := ctx.Catalog.Records()
	if err != nil {
		return err
	}

	var selected []*dataclass.Record
	for _, r := range records {
		if opts.typeName == "" || r.TypeName() == opts.typeName {
			selected = append(selected, r)
		}
	}

	return writeRecords(out, opts.format, selected)
}
