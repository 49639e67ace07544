package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "development", c.Environment)
	assert.Equal(t, 8080, c.Server.Port)
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, 2*time.Minute, c.Cache.TTL)
	assert.Equal(t, 60*time.Second, c.Simulator.RefreshInterval)
	assert.Equal(t, 30*time.Second, c.Simulator.BroadcastInterval)
	assert.Equal(t, 16, c.Simulator.SubscriberBuffer)
	assert.Equal(t, 2*time.Second, c.Simulator.SendTimeout)
	assert.True(t, c.Metrics.Enabled)
	assert.Equal(t, "/metrics", c.Metrics.Path)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
environment: production
server:
  port: 9090
log:
  level: warn
cache:
  ttl: 45s
simulator:
  refresh_interval: 90s
`)

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "production", c.Environment)
	assert.Equal(t, 9090, c.Server.Port)
	assert.Equal(t, "warn", c.Log.Level)
	assert.Equal(t, 45*time.Second, c.Cache.TTL)
	assert.Equal(t, 90*time.Second, c.Simulator.RefreshInterval)
	// Keys absent from the file keep their defaults.
	assert.Equal(t, 30*time.Second, c.Simulator.BroadcastInterval)
	assert.Equal(t, 10*time.Second, c.Server.ReadTimeout)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, "server: [not a mapping")
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadWithEnvOverrides(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9090\n")

	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CACHE_TTL", "90s")
	t.Setenv("REFRESH_INTERVAL", "5s")
	t.Setenv("BROADCAST_INTERVAL", "3s")

	c, err := LoadWithEnv(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, c.Server.Port)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, 90*time.Second, c.Cache.TTL)
	assert.Equal(t, 5*time.Second, c.Simulator.RefreshInterval)
	assert.Equal(t, 3*time.Second, c.Simulator.BroadcastInterval)
}

func TestLoadWithEnvIgnoresUnparsableValues(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9090\n")

	t.Setenv("SERVER_PORT", "not-a-number")
	t.Setenv("CACHE_TTL", "soon")

	c, err := LoadWithEnv(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, c.Server.Port)
	assert.Equal(t, 2*time.Minute, c.Cache.TTL)
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port zero", func(c *Config) { c.Server.Port = 0 }},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }},
		{"non-positive ttl", func(c *Config) { c.Cache.TTL = 0 }},
		{"non-positive refresh", func(c *Config) { c.Simulator.RefreshInterval = -time.Second }},
		{"non-positive broadcast", func(c *Config) { c.Simulator.BroadcastInterval = 0 }},
		{"non-positive buffer", func(c *Config) { c.Simulator.SubscriberBuffer = 0 }},
		{"non-positive send timeout", func(c *Config) { c.Simulator.SendTimeout = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Default()
			require.NoError(t, err)
			tt.mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}
