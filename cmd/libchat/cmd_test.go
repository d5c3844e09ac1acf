package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedCmd_MissingDSNReturnsError(t *testing.T) {
	t.Setenv("LIBCHAT_STORE_POSTGRES_DSN", "")
	cfgFile = ""

	err := seedCmd.RunE(seedCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to database")
}

func TestSeedCmd_MissingConfigFileReturnsError(t *testing.T) {
	cfgFile = t.TempDir() + "/missing.yaml"
	t.Cleanup(func() { cfgFile = "" })

	err := seedCmd.RunE(seedCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error configuring libchat")
}
