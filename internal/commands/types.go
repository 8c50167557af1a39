// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/eanhuddleston/dataclass/internal/cmdctx"
	"github.com/spf13/cobra"
)

func newTypesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "types",
		Short: "List the types declared in the definitions file",
		Example: `  # List types
  dataclass types

  # List types of another file
  dataclass types -f models/dataclass.yaml`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: cmdctx.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cmdctx.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runTypes(cmd.OutOrStdout(), ctx)
		},
	}
	return cmd
}

func runTypes(out io.Writer, ctx *cmdctx.Context) error {
	names := ctx.Catalog.Names()
	if len(names) == 0 {
		_, _ = fmt.Fprintln(out, "No types defined.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tFIELDS")
	for _, name := range names {
		bp, err := ctx.Catalog.Lookup(name)
		if err != nil {
			return err
		}
		fields := "-"
		if f := bp.Fields(); len(f) > 0 {
			fields = strings.Join(f, ", ")
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\n", name, fields)
	}
	return w.Flush()
}
