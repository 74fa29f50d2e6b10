// Package config loads application configuration for the API server.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	pkgconfig "sendtocal/pkg/config"
)

// ServerConfig represents the API server configuration.
type ServerConfig struct {
	Server struct {
		Addr            string   `yaml:"addr"`
		CORSOrigins     []string `yaml:"cors_origins"`
		MaxBodyBytes    int64    `yaml:"max_body_bytes"`
		ExtractRate     float64  `yaml:"extract_rate"`
		ExtractBurst    int      `yaml:"extract_burst"`
		ShutdownTimeout string   `yaml:"shutdown_timeout"`
	} `yaml:"server"`
}

// Defaults applied when a field is absent from the YAML file or when no
// file is supplied at all.
const (
	defaultAddr            = ":8080"
	defaultMaxBodyBytes    = 8 << 20 // data URLs for images dominate request size
	defaultExtractRate     = 0.5
	defaultExtractBurst    = 3
	defaultShutdownTimeout = 10 * time.Second
)

// LoadServerConfig loads the server configuration from a YAML file.
// An empty path skips file loading and returns environment/default values.
// The path parameter is expected to come from a trusted source (command-line
// argument or hardcoded default).
func LoadServerConfig(path string) (*ServerConfig, error) {
	var config ServerConfig

	if path != "" {
		// #nosec G304 -- path is provided by trusted source (CLI arg or config), not user input
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	applyDefaults(&config)

	if err := validateServerConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// applyDefaults fills unset fields, letting environment variables override
// the built-in defaults but not an explicit YAML value.
func applyDefaults(config *ServerConfig) {
	if config.Server.Addr == "" {
		config.Server.Addr = pkgconfig.GetEnvString("SERVER_ADDR", defaultAddr)
	}
	if len(config.Server.CORSOrigins) == 0 {
		config.Server.CORSOrigins = pkgconfig.GetEnvStringList("CORS_ORIGINS", nil)
	}
	if config.Server.MaxBodyBytes == 0 {
		config.Server.MaxBodyBytes = int64(pkgconfig.GetEnvInt("MAX_BODY_BYTES", defaultMaxBodyBytes))
	}
	if config.Server.ExtractRate == 0 {
		config.Server.ExtractRate = defaultExtractRate
	}
	if config.Server.ExtractBurst == 0 {
		config.Server.ExtractBurst = defaultExtractBurst
	}
}

// validateServerConfig validates the loaded configuration.
func validateServerConfig(config *ServerConfig) error {
	if config.Server.Addr == "" {
		return fmt.Errorf("server addr is required")
	}
	if config.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("max_body_bytes must be positive")
	}
	if config.Server.ExtractRate <= 0 {
		return fmt.Errorf("extract_rate must be positive")
	}
	if config.Server.ExtractBurst <= 0 {
		return fmt.Errorf("extract_burst must be positive")
	}
	if _, err := config.shutdownTimeout(); err != nil {
		return err
	}
	return nil
}

func (c *ServerConfig) shutdownTimeout() (time.Duration, error) {
	if c.Server.ShutdownTimeout == "" {
		return defaultShutdownTimeout, nil
	}
	d, err := time.ParseDuration(c.Server.ShutdownTimeout)
	if err != nil {
		return 0, fmt.Errorf("shutdown_timeout must be a duration: %w", err)
	}
	if err := pkgconfig.ValidatePositiveDuration(d); err != nil {
		return 0, fmt.Errorf("invalid shutdown_timeout: %w", err)
	}
	return d, nil
}

// ShutdownTimeout returns the graceful shutdown timeout.
// Validation already guaranteed the value parses.
func (c *ServerConfig) ShutdownTimeout() time.Duration {
	d, _ := c.shutdownTimeout()
	return d
}
