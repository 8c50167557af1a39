// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package internal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func env(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestRun_FileFromEnv(t *testing.T) {
	err := Run(context.Background(), []string{"types"}, env(map[string]string{FileEnv: "testdata/missing.yaml"}))
	assert.ErrorContains(t, err, "testdata/missing.yaml")
}

func TestRun_FlagOverridesEnv(t *testing.T) {
	err := Run(context.Background(), []string{"types", "-f", "testdata/other.yaml"}, env(map[string]string{FileEnv: "testdata/missing.yaml"}))
	assert.ErrorContains(t, err, "testdata/other.yaml")
}

func TestRun_UnknownCommand(t *testing.T) {
	err := Run(context.Background(), []string{"bogus"}, env(nil))
	assert.Error(t, err)
}
