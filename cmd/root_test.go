package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	cmds := rootCmd.Commands()

	names := make(map[string]bool)
	for _, c := range cmds {
		names[c.Name()] = true
	}

	expected := []string{"kpi", "series", "simulate", "export", "serve"}
	for _, name := range expected {
		assert.True(t, names[name], "expected subcommand %q not found", name)
	}
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "finboard", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestKPICommand_Flags(t *testing.T) {
	for _, flagName := range []string{"file", "sample", "from", "to", "json"} {
		flag := kpiCmd.Flags().Lookup(flagName)
		assert.NotNil(t, flag, "kpi should have --%s flag", flagName)
	}
}

func TestSeriesCommand_Flags(t *testing.T) {
	flag := seriesCmd.Flags().Lookup("field")
	require.NotNil(t, flag, "series command should have --field flag")
	assert.Equal(t, "revenue", flag.DefValue)
}

func TestSimulateCommand_Flags(t *testing.T) {
	for _, flagName := range []string{
		"scenario", "scenario-dir",
		"revenue-growth", "cogs-multiplier", "opex-multiplier",
		"capex-pct", "delta-wc-pct", "interest-rate", "tax-rate", "financing-delta",
	} {
		flag := simulateCmd.Flags().Lookup(flagName)
		assert.NotNil(t, flag, "simulate should have --%s flag", flagName)
	}

	assert.Equal(t, "1", simulateCmd.Flags().Lookup("cogs-multiplier").DefValue)
	assert.Equal(t, "1", simulateCmd.Flags().Lookup("opex-multiplier").DefValue)
}

func TestExportCommand_Flags(t *testing.T) {
	flag := exportCmd.Flags().Lookup("format")
	require.NotNil(t, flag, "export command should have --format flag")
	assert.Equal(t, "json", flag.DefValue)
}

func TestServeCommand_Flags(t *testing.T) {
	flag := serveCmd.Flags().Lookup("port")
	require.NotNil(t, flag, "serve command should have --port flag")
	assert.Equal(t, "0", flag.DefValue)
}
