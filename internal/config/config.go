package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Host           string        `yaml:"host"`
	Port           string        `yaml:"port"`
	APITimeout     time.Duration `yaml:"timeout"`
	DatabasePath   string        `yaml:"database_path"`
	MetricsEnabled bool          `yaml:"metrics_enabled"`
	Log            LogConfig     `yaml:"log"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

var validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// LoadConfig builds the configuration from environment defaults and then
// applies the YAML file at path, if any.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Host:           getEnv("FOLIO_HOST", "0.0.0.0"),
		Port:           getEnv("FOLIO_PORT", getEnv("PORT", "5000")),
		APITimeout:     15 * time.Second,
		DatabasePath:   getEnv("FOLIO_DATABASE_PATH", getEnv("DATABASE_PATH", "portfolio.db")),
		MetricsEnabled: getEnvBool("FOLIO_METRICS_ENABLED", true),
		Log: LogConfig{
			Level:      strings.ToLower(getEnv("FOLIO_LOG_LEVEL", "info")),
			File:       getEnv("FOLIO_LOG_FILE", ""),
			MaxSizeMB:  20,
			MaxBackups: 10,
			MaxAgeDays: 30,
		},
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// Validate checks values that would otherwise fail late at listen or open time.
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 0 || port > 65535 {
		return fmt.Errorf("invalid port %q", c.Port)
	}
	if strings.TrimSpace(c.DatabasePath) == "" {
		return fmt.Errorf("database_path is required")
	}
	if c.APITimeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.APITimeout)
	}
	if !validLogLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
