package extractor

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/anthropics/anthropic-sdk-go"

	"sendtocal/pkg/config"
)

const (
	minMaxTokens = 256
	maxMaxTokens = 8192
)

// Config holds the tuning parameters shared by all extractor providers.
// Values are loaded from environment variables with fallback to defaults.
type Config struct {
	// Model is the provider-specific model identifier.
	Model string

	// MaxTokens is the maximum number of tokens for the API response.
	// Valid range: 256-8192.
	MaxTokens int

	// Timeout is the maximum duration for a single extraction API call.
	// This is the only timeout this layer imposes; there is no retry.
	Timeout time.Duration
}

// Validate checks the configuration and returns an error if invalid.
func (c Config) Validate() error {
	if c.Model == "" {
		return fmt.Errorf("model cannot be empty")
	}
	if err := validateMaxTokens(c.MaxTokens); err != nil {
		return err
	}
	if err := config.ValidatePositiveDuration(c.Timeout); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	return nil
}

// validateMaxTokens checks that the token budget is within the valid range.
func validateMaxTokens(n int) error {
	if n < minMaxTokens {
		return fmt.Errorf("max tokens %d is below minimum %d", n, minMaxTokens)
	}
	if n > maxMaxTokens {
		return fmt.Errorf("max tokens %d exceeds maximum %d", n, maxMaxTokens)
	}
	return nil
}

// LoadClaudeConfig loads the Claude extractor configuration from
// environment variables, falling back to defaults on invalid values
// with a warning log.
//
// Environment variables:
//   - EXTRACTOR_MODEL: model identifier (default: current Claude Sonnet)
//   - EXTRACTOR_MAX_TOKENS: response token budget (default: 1024, range 256-8192)
//   - EXTRACTOR_TIMEOUT: per-call timeout (default: 60s)
func LoadClaudeConfig() Config {
	return loadConfig(string(anthropic.ModelClaudeSonnet4_5_20250929))
}

// LoadOpenAIConfig loads the OpenAI extractor configuration from the same
// environment variables as LoadClaudeConfig with a vision-capable default
// model.
func LoadOpenAIConfig() Config {
	return loadConfig("gpt-4o-mini")
}

func loadConfig(defaultModel string) Config {
	cfg := Config{
		Model:     config.GetEnvString("EXTRACTOR_MODEL", defaultModel),
		MaxTokens: config.GetEnvInt("EXTRACTOR_MAX_TOKENS", 1024),
		Timeout:   config.GetEnvDuration("EXTRACTOR_TIMEOUT", 60*time.Second),
	}
	if err := validateMaxTokens(cfg.MaxTokens); err != nil {
		slog.Warn("EXTRACTOR_MAX_TOKENS out of valid range, using default",
			slog.Int("value", cfg.MaxTokens),
			slog.Int("default", 1024),
			slog.String("error", err.Error()))
		cfg.MaxTokens = 1024
	}
	if err := config.ValidatePositiveDuration(cfg.Timeout); err != nil {
		slog.Warn("EXTRACTOR_TIMEOUT must be positive, using default",
			slog.Duration("value", cfg.Timeout),
			slog.Duration("default", 60*time.Second))
		cfg.Timeout = 60 * time.Second
	}
	return cfg
}
