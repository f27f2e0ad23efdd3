// Package auth resolves upstream API credentials into a single access token.
package auth

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/tickerdeck/gateway/internal/config"
)

// TokenExchanger performs the API-key to access-token exchange. Exactly one of
// totp/secret is sent per attempt.
type TokenExchanger interface {
	ExchangeToken(ctx context.Context, apiKey, totp, secret string) (string, error)
}

// Token sources, in precedence order.
const (
	SourceToken          = "token"
	SourceExchange       = "exchange"
	SourceAPIKeyFallback = "api_key_fallback"
	SourceAPIKey         = "api_key"
)

// Result describes how the access token was obtained. ExchangeErr is set when
// a key exchange was attempted and failed, for diagnostics only; the failure
// itself is downgraded to the raw-key fallback.
type Result struct {
	Token       string
	Source      string
	ExchangeErr error
}

// Resolve reduces the configured credential shapes to one access token.
// Precedence, first success wins:
//  1. a configured long-lived token (the .env placeholder does not count)
//  2. API key + exchange, sending TOTP when set, else the shared secret;
//     exchange failure falls back to the raw key
//  3. API key alone, used directly as the token
//
// It returns ok=false only when no credential of any shape is configured.
func Resolve(ctx context.Context, cfg *config.Config, exch TokenExchanger, log zerolog.Logger) (Result, bool) {
	log = log.With().Str("component", "auth").Logger()

	if cfg.HasToken() {
		log.Info().Msg("Using configured access token")
		return Result{Token: cfg.APIToken, Source: SourceToken}, true
	}

	if cfg.APIKey == "" {
		log.Warn().Msg("No credentials configured")
		return Result{}, false
	}

	if cfg.TOTP == "" && cfg.APISecret == "" {
		log.Info().Msg("Using API key directly as access token")
		return Result{Token: cfg.APIKey, Source: SourceAPIKey}, true
	}

	// TOTP takes precedence over the shared secret; only one factor is sent.
	totp, secret := cfg.TOTP, ""
	if totp == "" {
		secret = cfg.APISecret
	}

	token, err := exch.ExchangeToken(ctx, cfg.APIKey, totp, secret)
	if err != nil {
		log.Warn().Err(err).Msg("Token exchange failed, falling back to raw API key")
		return Result{Token: cfg.APIKey, Source: SourceAPIKeyFallback, ExchangeErr: err}, true
	}

	log.Info().Msg("Obtained access token via key exchange")
	return Result{Token: token, Source: SourceExchange}, true
}
