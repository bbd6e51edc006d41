package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/tickets")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, int32(10), cfg.DBMaxConns)
	assert.Equal(t, 30*time.Second, cfg.DBMaxIdleTime)
	assert.Equal(t, 2*time.Second, cfg.DBConnTimeout)
	assert.Equal(t, 2*time.Second, cfg.DBAcquireWait)
	assert.Equal(t, "", cfg.DashboardSecret)
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	_, err := Load(nil)
	assert.ErrorIs(t, err, ErrMissingDatabaseURL)
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/tickets")
	t.Setenv("PORT", "9000")
	t.Setenv("DASHBOARD_SECRET", "s3cret")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("port", "8080", "")
	fs.String("log-level", "info", "")
	require.NoError(t, fs.Parse([]string{"--log-level=debug"}))

	cfg, err := Load(fs)
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "s3cret", cfg.DashboardSecret)
}
