package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GROWW_API_TOKEN", "")
	t.Setenv("GROWW_API_KEY", "")
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.DevMode)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("GROWW_API_TOKEN", "tok-123")
	t.Setenv("GROWW_API_KEY", "key-456")
	t.Setenv("GROWW_TOTP", "000111")
	t.Setenv("PORT", "8080")
	t.Setenv("DEV_MODE", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "tok-123", cfg.APIToken)
	assert.Equal(t, "key-456", cfg.APIKey)
	assert.Equal(t, "000111", cfg.TOTP)
	assert.Equal(t, 8080, cfg.Port)
	assert.True(t, cfg.DevMode)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	t.Setenv("DEV_MODE", "maybe")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Port)
	assert.False(t, cfg.DevMode)
}

func TestHasToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"real token", "eyJrIjoi", true},
		{"empty", "", false},
		{"template placeholder", TokenPlaceholder, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{APIToken: tt.token}
			assert.Equal(t, tt.want, cfg.HasToken())
		})
	}
}

func TestHasAnyCredential(t *testing.T) {
	assert.True(t, (&Config{APIToken: "tok"}).HasAnyCredential())
	assert.True(t, (&Config{APIKey: "key"}).HasAnyCredential())
	assert.True(t, (&Config{APIToken: TokenPlaceholder, APIKey: "key"}).HasAnyCredential())
	assert.False(t, (&Config{APIToken: TokenPlaceholder}).HasAnyCredential())
	assert.False(t, (&Config{}).HasAnyCredential())
}
