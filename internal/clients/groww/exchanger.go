package groww

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/tickerdeck/gateway/internal/clients/groww/sdk"
)

// Exchanger adapts the SDK token exchange for the credential resolver.
type Exchanger struct {
	log zerolog.Logger
}

// NewExchanger creates a token exchanger backed by the live API.
func NewExchanger(log zerolog.Logger) *Exchanger {
	return &Exchanger{log: log}
}

// ExchangeToken exchanges an API key plus one factor for an access token.
func (e *Exchanger) ExchangeToken(ctx context.Context, apiKey, totp, secret string) (string, error) {
	return sdk.ExchangeToken(ctx, apiKey, totp, secret, e.log)
}
