package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tickerdeck/gateway/internal/config"
)

// mockExchanger records the credentials it was called with.
type mockExchanger struct {
	called bool
	apiKey string
	totp   string
	secret string
	token  string
	err    error
}

func (m *mockExchanger) ExchangeToken(_ context.Context, apiKey, totp, secret string) (string, error) {
	m.called = true
	m.apiKey = apiKey
	m.totp = totp
	m.secret = secret
	return m.token, m.err
}

func TestResolve_DirectToken(t *testing.T) {
	log := zerolog.New(nil).Level(zerolog.Disabled)
	exch := &mockExchanger{token: "exchanged"}

	cfg := &config.Config{APIToken: "long-lived-token", APIKey: "key", TOTP: "123456"}
	result, ok := Resolve(context.Background(), cfg, exch, log)

	require.True(t, ok)
	assert.Equal(t, "long-lived-token", result.Token)
	assert.Equal(t, SourceToken, result.Source)
	assert.False(t, exch.called, "exchange must not run when a token is configured")
}

func TestResolve_PlaceholderTokenIgnored(t *testing.T) {
	log := zerolog.New(nil).Level(zerolog.Disabled)
	exch := &mockExchanger{token: "exchanged"}

	cfg := &config.Config{APIToken: config.TokenPlaceholder, APIKey: "key", TOTP: "123456"}
	result, ok := Resolve(context.Background(), cfg, exch, log)

	require.True(t, ok)
	assert.Equal(t, "exchanged", result.Token)
	assert.Equal(t, SourceExchange, result.Source)
}

func TestResolve_Exchange(t *testing.T) {
	log := zerolog.New(nil).Level(zerolog.Disabled)

	t.Run("totp only", func(t *testing.T) {
		exch := &mockExchanger{token: "exchanged"}
		cfg := &config.Config{APIKey: "key", TOTP: "123456"}

		result, ok := Resolve(context.Background(), cfg, exch, log)
		require.True(t, ok)
		assert.Equal(t, "exchanged", result.Token)
		assert.Equal(t, "123456", exch.totp)
		assert.Empty(t, exch.secret)
	})

	t.Run("totp takes precedence over secret", func(t *testing.T) {
		exch := &mockExchanger{token: "exchanged"}
		cfg := &config.Config{APIKey: "key", TOTP: "123456", APISecret: "shh"}

		result, ok := Resolve(context.Background(), cfg, exch, log)
		require.True(t, ok)
		assert.Equal(t, SourceExchange, result.Source)
		assert.Equal(t, "123456", exch.totp)
		assert.Empty(t, exch.secret, "secret must be omitted when TOTP is set")
	})

	t.Run("secret when no totp", func(t *testing.T) {
		exch := &mockExchanger{token: "exchanged"}
		cfg := &config.Config{APIKey: "key", APISecret: "shh"}

		result, ok := Resolve(context.Background(), cfg, exch, log)
		require.True(t, ok)
		assert.Equal(t, "exchanged", result.Token)
		assert.Empty(t, exch.totp)
		assert.Equal(t, "shh", exch.secret)
	})

	t.Run("failure falls back to raw key", func(t *testing.T) {
		exchErr := errors.New("upstream rejected totp")
		exch := &mockExchanger{err: exchErr}
		cfg := &config.Config{APIKey: "key", TOTP: "123456"}

		result, ok := Resolve(context.Background(), cfg, exch, log)
		require.True(t, ok, "exchange failure must not escalate")
		assert.Equal(t, "key", result.Token)
		assert.Equal(t, SourceAPIKeyFallback, result.Source)
		assert.ErrorIs(t, result.ExchangeErr, exchErr)
	})
}

func TestResolve_APIKeyAlone(t *testing.T) {
	log := zerolog.New(nil).Level(zerolog.Disabled)
	exch := &mockExchanger{}

	cfg := &config.Config{APIKey: "key"}
	result, ok := Resolve(context.Background(), cfg, exch, log)

	require.True(t, ok)
	assert.Equal(t, "key", result.Token)
	assert.Equal(t, SourceAPIKey, result.Source)
	assert.False(t, exch.called)
}

func TestResolve_NothingConfigured(t *testing.T) {
	log := zerolog.New(nil).Level(zerolog.Disabled)
	exch := &mockExchanger{}

	result, ok := Resolve(context.Background(), &config.Config{}, exch, log)

	assert.False(t, ok)
	assert.Empty(t, result.Token)
	assert.False(t, exch.called)
}
