package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) (string, bool) { return "", false }

func envOf(vars map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lineviz.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := LoadWithEnv("", noEnv)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = LoadWithEnv(filepath.Join(t.TempDir(), "missing.yaml"), noEnv)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
log_level: debug
capacity: 8
animation:
  queue_ticks: 0
mcp:
  transport: sse
  port: 9090
`)
	cfg, err := LoadWithEnv(path, noEnv)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 8, cfg.Capacity)
	assert.Equal(t, 5, cfg.Animation.StackTicks, "unset keys keep defaults")
	assert.Equal(t, 0, cfg.Animation.QueueTicks)
	assert.Equal(t, "sse", cfg.MCP.Transport)
	assert.Equal(t, 9090, cfg.MCP.Port)
	assert.Equal(t, 8080, cfg.HTTP.Port)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "capacity: 8\nhttp:\n  port: 7000\n")
	cfg, err := LoadWithEnv(path, envOf(map[string]string{
		"LINEVIZ_CAPACITY":              "3",
		"LINEVIZ_ANIMATION_STACK_TICKS": "2",
		"LINEVIZ_LOG_LEVEL":             "warn",
	}))
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Capacity)
	assert.Equal(t, 2, cfg.Animation.StackTicks)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 7000, cfg.HTTP.Port)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
	}{
		{name: "bad yaml", content: "capacity: [1"},
		{name: "unknown key", content: "capacty: 3"},
		{name: "zero capacity", content: "capacity: 0"},
		{name: "negative ticks", content: "animation:\n  stack_ticks: -1"},
		{name: "bad transport", content: "mcp:\n  transport: grpc"},
		{name: "bad port", content: "http:\n  port: 70000"},
		{name: "env not a number", env: map[string]string{"LINEVIZ_CAPACITY": "many"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := ""
			if tt.content != "" {
				path = writeFile(t, tt.content)
			}
			_, err := LoadWithEnv(path, envOf(tt.env))
			assert.Error(t, err)
		})
	}
}
