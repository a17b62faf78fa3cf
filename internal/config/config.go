// Package config loads lineviz settings from a YAML file and LINEVIZ_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "LINEVIZ_"

// Config is the resolved application configuration.
type Config struct {
	LogLevel  string    `yaml:"log_level" mapstructure:"log_level"`
	Capacity  int       `yaml:"capacity" mapstructure:"capacity"`
	Animation Animation `yaml:"animation" mapstructure:"animation"`
	HTTP      HTTP      `yaml:"http" mapstructure:"http"`
	MCP       MCP       `yaml:"mcp" mapstructure:"mcp"`
}

// Animation holds the busy-phase lengths, in ticks.
type Animation struct {
	StackTicks int `yaml:"stack_ticks" mapstructure:"stack_ticks"`
	QueueTicks int `yaml:"queue_ticks" mapstructure:"queue_ticks"`
}

// HTTP configures the serve command.
type HTTP struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// MCP configures the mcp command.
type MCP struct {
	Transport string `yaml:"transport" mapstructure:"transport"`
	Port      int    `yaml:"port" mapstructure:"port"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel: "info",
		Capacity: 5,
		Animation: Animation{
			StackTicks: 5,
			QueueTicks: 10,
		},
		HTTP: HTTP{Port: 8080},
		MCP: MCP{
			Transport: "stdio",
			Port:      8080,
		},
	}
}

// envKeys maps environment suffixes to their path in the config tree.
var envKeys = map[string][]string{
	"LOG_LEVEL":             {"log_level"},
	"CAPACITY":              {"capacity"},
	"ANIMATION_STACK_TICKS": {"animation", "stack_ticks"},
	"ANIMATION_QUEUE_TICKS": {"animation", "queue_ticks"},
	"HTTP_PORT":             {"http", "port"},
	"MCP_TRANSPORT":         {"mcp", "transport"},
	"MCP_PORT":              {"mcp", "port"},
}

// Load reads path (optional; "" or a missing file means defaults) and
// applies environment overrides from the process environment.
func Load(path string) (Config, error) {
	return LoadWithEnv(path, os.LookupEnv)
}

// LoadWithEnv is Load with an explicit environment lookup.
func LoadWithEnv(path string, lookup func(string) (string, bool)) (Config, error) {
	raw := map[string]any{}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &raw); err != nil {
				return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
			if raw == nil {
				raw = map[string]any{}
			}
		}
	}

	for suffix, keys := range envKeys {
		if v, ok := lookup(EnvPrefix + suffix); ok {
			setPath(raw, keys, v)
		}
	}

	cfg := Default()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return Config{}, fmt.Errorf("failed to build config decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the components cannot run with.
func (c Config) Validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("invalid config: capacity must be positive, got %d", c.Capacity)
	}
	if c.Animation.StackTicks < 0 || c.Animation.QueueTicks < 0 {
		return fmt.Errorf("invalid config: animation ticks must not be negative")
	}
	if c.MCP.Transport != "stdio" && c.MCP.Transport != "sse" {
		return fmt.Errorf("invalid config: mcp.transport must be stdio or sse, got %q", c.MCP.Transport)
	}
	for name, port := range map[string]int{"http.port": c.HTTP.Port, "mcp.port": c.MCP.Port} {
		if port <= 0 || port > 65535 {
			return fmt.Errorf("invalid config: %s out of range: %d", name, port)
		}
	}
	return nil
}

func setPath(m map[string]any, keys []string, v any) {
	for _, k := range keys[:len(keys)-1] {
		child, ok := m[k].(map[string]any)
		if !ok {
			child = map[string]any{}
			m[k] = child
		}
		m = child
	}
	m[keys[len(keys)-1]] = v
}
