// Package config loads runtime settings in layers: built-in defaults, an
// optional YAML file, then environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// PathEnvVar overrides the config file location.
const PathEnvVar = "WANTTOBE_CONFIG"

// DefaultPaths are searched in order when PathEnvVar is unset.
var DefaultPaths = []string{
	"config.yaml",
	"config.yml",
}

// Config holds every runtime setting.
type Config struct {
	Server ServerConfig `koanf:"server"`
	Data   DataConfig   `koanf:"data"`
	Engine EngineConfig `koanf:"engine"`
	Log    LogConfig    `koanf:"log"`
}

// ServerConfig selects the MCP transport.
type ServerConfig struct {
	// Transport is stdio or http.
	Transport       string        `koanf:"transport"`
	Addr            string        `koanf:"addr"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// DataConfig names the content source. Empty means the built-in dataset.
type DataConfig struct {
	Source string `koanf:"source"`
}

// EngineConfig tunes query behavior.
type EngineConfig struct {
	// ReferenceYear pins "now" for living persons. Zero reads the clock.
	ReferenceYear  int `koanf:"reference_year"`
	RecommendLimit int `koanf:"recommend_limit"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Transport:       "stdio",
			Addr:            ":8081",
			ShutdownTimeout: 10 * time.Second,
		},
		Engine: EngineConfig{
			RecommendLimit: 3,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load builds the configuration. Precedence: env > file > defaults.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("WANTTOBE_", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	if p := os.Getenv(PathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range DefaultPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

var envMappings = map[string]string{
	"wanttobe_transport":        "server.transport",
	"wanttobe_addr":             "server.addr",
	"wanttobe_shutdown_timeout": "server.shutdown_timeout",
	"wanttobe_data_source":      "data.source",
	"wanttobe_reference_year":   "engine.reference_year",
	"wanttobe_recommend_limit":  "engine.recommend_limit",
	"wanttobe_log_level":        "log.level",
	"wanttobe_log_format":       "log.format",
}

// envTransformFunc maps WANTTOBE_* variables to config keys. Unknown
// variables map to "" and are skipped.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}

// Validate rejects settings the server cannot run with.
func (c *Config) Validate() error {
	switch c.Server.Transport {
	case "stdio", "http":
	default:
		return fmt.Errorf("unknown transport %q (use stdio or http)", c.Server.Transport)
	}
	if c.Server.Transport == "http" && c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required for the http transport")
	}
	if c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("server.shutdown_timeout must not be negative")
	}
	if c.Engine.ReferenceYear < 0 {
		return fmt.Errorf("engine.reference_year must not be negative")
	}
	if c.Engine.RecommendLimit < 0 {
		return fmt.Errorf("engine.recommend_limit must not be negative")
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("unknown log format %q (use json or console)", c.Log.Format)
	}
	return nil
}
