package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigRequiresDBPath(t *testing.T) {
	t.Parallel()

	_, err := NewConfig(Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DBPath")
}

func TestNewConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{DBPath: "/tmp/x.db"})
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestNewConfigKeepsExplicitSettings(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{DBPath: "/tmp/x.db", LogFormat: "json", LogLevel: "debug"})
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
}
