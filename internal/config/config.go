// Package config provides configuration management functionality.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// TokenPlaceholder is the sentinel value shipped in .env templates. A token equal
// to it is treated as unset.
const TokenPlaceholder = "your_token_here"

// Config holds application configuration
type Config struct {
	// Groww API credentials. Operators configure one of three shapes:
	// a long-lived token, key+TOTP, or key+secret.
	APIToken  string
	APIKey    string
	APISecret string
	TOTP      string
	LogLevel  string
	Port      int
	DevMode   bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		APIToken:  getEnv("GROWW_API_TOKEN", ""),
		APIKey:    getEnv("GROWW_API_KEY", ""),
		APISecret: getEnv("GROWW_API_SECRET", ""),
		TOTP:      getEnv("GROWW_TOTP", ""),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		Port:      getEnvAsInt("PORT", 5000),
		DevMode:   getEnvAsBool("DEV_MODE", false),
	}

	return cfg, nil
}

// HasToken reports whether a usable long-lived token is configured.
// The placeholder from .env templates does not count.
func (c *Config) HasToken() bool {
	return c.APIToken != "" && c.APIToken != TokenPlaceholder
}

// HasAnyCredential reports whether any credential shape is configured at all.
func (c *Config) HasAnyCredential() bool {
	return c.HasToken() || c.APIKey != ""
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
