package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/kelseyhightower/envconfig"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Gateway   GatewayConfig
	Logging   LogConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8090"`
	Host string `envconfig:"HOST" default:"0.0.0.0"`
}

// GatewayConfig holds the filesystem access scope. Roots and Extensions are
// the two trust-boundary collections; both are normalized once at load time
// by the scope package.
type GatewayConfig struct {
	ConfigFile     string   `envconfig:"GATEWAY_CONFIG" default:"config.json"`
	Roots          []string `envconfig:"GATEWAY_ROOTS"`
	Extensions     []string `envconfig:"GATEWAY_EXTENSIONS"`
	IgnorePatterns []string `envconfig:"GATEWAY_IGNORE"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8090",
			Host: "0.0.0.0",
		},
		Gateway: GatewayConfig{
			ConfigFile: "config.json",
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
		},
	}
}

// FileConfig mirrors the on-disk allow-list file.
type FileConfig struct {
	AllowedDirs       []string `json:"allowed_dirs" yaml:"allowed_dirs" toml:"allowed_dirs"`
	AllowedExtensions []string `json:"allowed_extensions" yaml:"allowed_extensions" toml:"allowed_extensions"`
	IgnorePatterns    []string `json:"ignore_patterns,omitempty" yaml:"ignore_patterns" toml:"ignore_patterns"`
}

// LoadFile reads the allow-list file, decoding by extension: .yaml/.yml,
// .toml, anything else as JSON.
func LoadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var fc FileConfig
	switch strings.ToLower(ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	case ".toml":
		err = toml.Unmarshal(data, &fc)
	default:
		err = sonic.Unmarshal(data, &fc)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return &fc, nil
}

// ApplyFile fills in gateway fields not already set by flags or environment;
// explicit settings always win over the file.
func (c *Config) ApplyFile(fc *FileConfig) {
	if fc == nil {
		return
	}
	if len(c.Gateway.Roots) == 0 {
		c.Gateway.Roots = fc.AllowedDirs
	}
	if len(c.Gateway.Extensions) == 0 {
		c.Gateway.Extensions = fc.AllowedExtensions
	}
	if len(c.Gateway.IgnorePatterns) == 0 {
		c.Gateway.IgnorePatterns = fc.IgnorePatterns
	}
}

func ext(path string) string {
	if i := strings.LastIndex(path, "."); i >= 0 {
		return path[i:]
	}
	return ""
}
