// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/eanhuddleston/dataclass"
	"github.com/eanhuddleston/dataclass/internal/cmdctx"
	"github.com/eanhuddleston/dataclass/internal/prompts"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// stdinIsTerminal reports whether prompts can be shown.
var stdinIsTerminal = func() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

type newOptions struct {
	typeName    string
	set         []string
	format      string
	interactive bool
}

func newNewCmd() *cobra.Command {
	opts := &newOptions{}

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Instantiate a single record of a declared type",
		Long: `Instantiate a single record of a declared type and print it.

Values are given as name=value pairs and parsed as YAML, so 10 is a number,
joe is a string and null leaves the field unset. Fields that are not given
are None. Names that the type does not declare are rejected.

Without --set, and with a terminal on stdin, the type and the field
values are prompted for.`,
		Example: `  # Create a record from flags
  dataclass new --type PersonData --set name=joe --set age=10

  # Prompt for the type and its field values
  dataclass new

  # Prompt for the remaining fields after setting some
  dataclass new -t PersonData -s name=joe -i`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: cmdctx.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cmdctx.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runNew(cmd.OutOrStdout(), ctx, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.typeName, "type", "t", "", "Type to instantiate")
	cmd.Flags().StringArrayVarP(&opts.set, "set", "s", nil, "Field value as name=value (repeatable)")
	cmd.Flags().StringVar(&opts.format, "format", formatDisplay, fmt.Sprintf("Output format (%s)", strings.Join(formats, ", ")))
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "Prompt for missing input")

	return cmd
}

func runNew(out io.Writer, ctx *cmdctx.Context, opts *newOptions) error {
	if err := validateFormat(opts.format); err != nil {
		return err
	}

	interactive := shouldPrompt(opts)

	typeName := opts.typeName
	if typeName == "" {
		if !interactive {
			return errors.New("--type is required")
		}
		if err := prompts.RunTypeSelect(&typeName, ctx.Catalog.Names()); err != nil {
			return err
		}
	}

	bp, err := ctx.Catalog.Lookup(typeName)
	if err != nil {
		return err
	}

	values, err := parseAssignments(opts.set)
	if err != nil {
		return err
	}

	// Reject undeclared names before prompting for the rest.
	if _, err := bp.Instantiate(values); err != nil {
		return err
	}

	if interactive {
		if err := prompts.RunValuesForm(bp, values); err != nil {
			return err
		}
	}

	record, err := bp.Instantiate(values)
	if err != nil {
		return err
	}

	if interactive && opts.format == formatDisplay {
		prompts.PrintResult(out, []prompts.ResultField{
			{Label: "Type", Value: bp.Name()},
			{Label: "Record", Value: record.String()},
		}, "Record created")
		return nil
	}
	return writeRecords(out, opts.format, []*dataclass.Record{record})
}

// shouldPrompt reports whether missing input is prompted for: always with
// --interactive, otherwise only when no --set was given and stdin is a terminal.
func shouldPrompt(opts *newOptions) bool {
	if opts.interactive {
		return true
	}
	return len(opts.set) == 0 && stdinIsTerminal()
}

// parseAssignments turns name=value pairs into initial values.
func parseAssignments(pairs []string) (dataclass.Values, error) {
	values := make(dataclass.Values, len(pairs))
	for _, pair := range pairs {
		name, raw, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid assignment %q, expected name=value", pair)
		}
		v, err := prompts.ParseValue(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		values[name] = v
	}
	return values, nil
}
