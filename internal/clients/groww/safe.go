package groww

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// SafeClient is the degraded MarketClient variant, installed when no access
// token could be resolved. Every data capability answers with an empty,
// structurally valid result and never returns an error, so the rest of the
// gateway needs no "is upstream available" checks. Order placement is the one
// exception: trades are never silently dropped, so it fails explicitly.
type SafeClient struct {
	log zerolog.Logger
}

// NewSafeClient creates the inert MarketClient variant.
func NewSafeClient(log zerolog.Logger) *SafeClient {
	return &SafeClient{
		log: log.With().Str("client", "groww-safe").Logger(),
	}
}

// Mode reports the operating mode.
func (c *SafeClient) Mode() string { return ModeSafe }

// GetLTP returns an empty price map.
func (c *SafeClient) GetLTP(_ context.Context, _ string, _ []string) (map[string]float64, error) {
	return map[string]float64{}, nil
}

// GetOHLC returns an empty snapshot map.
func (c *SafeClient) GetOHLC(_ context.Context, _ string, _ []string) (map[string]OHLC, error) {
	return map[string]OHLC{}, nil
}

// GetQuote returns an empty quote.
func (c *SafeClient) GetQuote(_ context.Context, _, _, _ string) (map[string]interface{}, error) {
	return map[string]interface{}{}, nil
}

// GetCandles returns an empty series.
func (c *SafeClient) GetCandles(_ context.Context, _, _, _ string, _, _ time.Time, _ int) ([]Candle, error) {
	return []Candle{}, nil
}

// GetOptionChain returns an empty chain.
func (c *SafeClient) GetOptionChain(_ context.Context, _, underlying, expiryDate string) (*OptionChain, error) {
	return &OptionChain{
		Underlying: underlying,
		ExpiryDate: expiryDate,
		Strikes:    []StrikeRow{},
	}, nil
}

// GetExpiries returns an empty list.
func (c *SafeClient) GetExpiries(_ context.Context, _, _ string) ([]string, error) {
	return []string{}, nil
}

// GetGreeks returns an empty result.
func (c *SafeClient) GetGreeks(_ context.Context, _, _, _, _ string) (map[string]interface{}, error) {
	return map[string]interface{}{}, nil
}

// PlaceOrder rejects the order. Synthesizing a fake acknowledgement would be
// worse than failing.
func (c *SafeClient) PlaceOrder(_ context.Context, req OrderRequest) (*OrderResult, error) {
	c.log.Warn().Str("symbol", req.Symbol).Msg("PlaceOrder rejected in safe mode")
	return nil, fmt.Errorf("%w: order placement unavailable without credentials", ErrUpstream)
}

// GetOrders returns an empty list.
func (c *SafeClient) GetOrders(_ context.Context) ([]Order, error) {
	return []Order{}, nil
}

// GetPositions returns an empty list.
func (c *SafeClient) GetPositions(_ context.Context) ([]Position, error) {
	return []Position{}, nil
}
