package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmdFlags(t *testing.T) {
	cmd := newRootCmd()

	region := cmd.Flags().Lookup("region")
	require.NotNil(t, region)
	assert.Equal(t, "us-east-1", region.DefValue)

	report := cmd.Flags().Lookup("report")
	require.NotNil(t, report)
	assert.Equal(t, "table", report.DefValue)

	for _, name := range []string{"profile", "role-arn", "external-id", "output"} {
		flag := cmd.Flags().Lookup(name)
		require.NotNil(t, flag, "missing flag %s", name)
		assert.Equal(t, "", flag.DefValue)
	}
}

func TestRootCmdMetadata(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "pwpolicy", cmd.Use)
	assert.True(t, cmd.SilenceUsage)
	assert.Equal(t, Version, cmd.Version)
}
