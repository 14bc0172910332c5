// Package config provides configuration management for the webhook
// verifier service. It loads everything from environment variables with
// sensible defaults and validates the result before the server starts.
//
// Environment Variables:
//
// Application Settings:
//   - PORT: Server port (default: 8080)
//   - LOG_LEVEL: Logging level (default: info)
//   - SIGNATURE_TOLERANCE: Replay window in seconds (default: 300)
//
// Provider Secrets:
//   - <PROVIDER>_WEBHOOK_SECRET: the shared secret or public key for a
//     provider, e.g. STRIPE_WEBHOOK_SECRET, GITHUB_WEBHOOK_SECRET
//   - <PROVIDER>_WEBHOOK_SECRET_FALLBACKS: comma-separated alternate
//     secrets tried in order during rotation
//
// Example usage:
//
//	cfg := config.Load()
//	if err := cfg.Validate(); err != nil {
//		log.Fatalf("Invalid configuration: %v", err)
//	}
package config

import (
	"os"
	"strconv"
	"strings"

	"webhook-verifier/internal/common/errors"
	"webhook-verifier/internal/crypto"
	"webhook-verifier/internal/providers"
)

// Config holds all configuration values for the webhook verifier
type Config struct {
	Port      string // Server port number
	LogLevel  string // Logging level (debug, info, warn, error)
	Tolerance int64  // Replay window in seconds for timestamped schemes

	secrets   map[providers.Provider]string
	fallbacks map[providers.Provider][]string
}

// Load creates a Config with values from environment variables. It does
// not validate; call Validate on the result.
func Load() *Config {
	cfg := &Config{
		Port:      getEnv("PORT", "8080"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		Tolerance: crypto.DefaultToleranceSeconds,
		secrets:   make(map[providers.Provider]string),
		fallbacks: make(map[providers.Provider][]string),
	}

	if raw := os.Getenv("SIGNATURE_TOLERANCE"); raw != "" {
		if tolerance, err := strconv.ParseInt(raw, 10, 64); err == nil && tolerance > 0 {
			cfg.Tolerance = tolerance
		}
	}

	for _, provider := range providers.All() {
		prefix := strings.ToUpper(string(provider))

		if secret := os.Getenv(prefix + "_WEBHOOK_SECRET"); secret != "" {
			cfg.secrets[provider] = secret
		}

		if raw := os.Getenv(prefix + "_WEBHOOK_SECRET_FALLBACKS"); raw != "" {
			var alternates []string
			for _, alternate := range strings.Split(raw, ",") {
				if alternate = strings.TrimSpace(alternate); alternate != "" {
					alternates = append(alternates, alternate)
				}
			}
			cfg.fallbacks[provider] = alternates
		}
	}

	return cfg
}

// Secret returns the configured secret for a provider
func (c *Config) Secret(provider providers.Provider) (string, bool) {
	secret, ok := c.secrets[provider]
	return secret, ok
}

// AdditionalSecrets returns the rotation fallbacks for a provider
func (c *Config) AdditionalSecrets(provider providers.Provider) []string {
	return c.fallbacks[provider]
}

// ConfiguredProviders returns the providers with a secret set, in the
// stable provider order
func (c *Config) ConfiguredProviders() []providers.Provider {
	var configured []providers.Provider
	for _, provider := range providers.All() {
		if _, ok := c.secrets[provider]; ok {
			configured = append(configured, provider)
		}
	}
	return configured
}

// Validate checks that the configuration can run the server
func (c *Config) Validate() error {
	if _, err := strconv.Atoi(c.Port); err != nil {
		return errors.ConfigError("PORT must be numeric, got " + c.Port)
	}

	if c.Tolerance <= 0 {
		return errors.ConfigError("SIGNATURE_TOLERANCE must be positive")
	}

	if len(c.secrets) == 0 {
		return errors.ConfigError("no provider secrets configured, set at least one <PROVIDER>_WEBHOOK_SECRET")
	}

	return nil
}

// getEnv returns an environment variable or a default
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
