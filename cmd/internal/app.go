// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"

	"github.com/eanhuddleston/dataclass/internal/cmdctx"
	"github.com/eanhuddleston/dataclass/internal/commands"
)

// FileEnv names the environment variable that overrides the default
// definitions file.
const FileEnv = "DATACLASS_FILE"

// Run is the main application logic, extracted for testability.
// It accepts OS dependencies as parameters (context, args, env lookup).
func Run(ctx context.Context, args []string, getenv func(string) string) error {
	rootCmd := commands.NewRootCmd()
	if file := getenv(FileEnv); file != "" {
		if err := rootCmd.PersistentFlags().Set(cmdctx.FileFlag, file); err != nil {
			return err
		}
	}
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}
