// SPDX-License-Identifier: MIT

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, name := range []string{"reach", "prepare", "distribute", "run"} {
		assert.True(t, names[name], "expected subcommand %q not found", name)
	}
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "spatialjustice", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestReachCommand_Flags(t *testing.T) {
	for _, name := range []string{"edges", "groups", "targets", "overall", "walk", "weight", "workers", "vertices"} {
		require.NotNil(t, reachCmd.Flags().Lookup(name), "reach command should have --%s flag", name)
	}
	assert.Nil(t, reachCmd.Flags().Lookup("population"))
}

func TestRunCommand_Flags(t *testing.T) {
	for _, name := range []string{"edges", "units", "population", "summaries", "output"} {
		require.NotNil(t, runCmd.Flags().Lookup(name), "run command should have --%s flag", name)
	}
}
