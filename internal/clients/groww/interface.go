package groww

import (
	"context"
	"errors"
	"time"
)

// ErrUpstream marks failures of live upstream calls. Handlers treat any error
// wrapping it as a trigger for the degraded fallback path.
var ErrUpstream = errors.New("upstream request failed")

// Operating modes reported by MarketClient implementations.
const (
	ModeLive = "live"
	ModeSafe = "safe"
)

// MarketClient is the capability set the gateway needs from the brokerage API.
// Two implementations exist: Client (live) and SafeClient (inert, never errors).
// Batched LTP/OHLC lookups are keyed by "{exchange}_{symbol}".
type MarketClient interface {
	GetLTP(ctx context.Context, segment string, exchangeSymbols []string) (map[string]float64, error)
	GetOHLC(ctx context.Context, segment string, exchangeSymbols []string) (map[string]OHLC, error)
	GetQuote(ctx context.Context, exchange, segment, symbol string) (map[string]interface{}, error)
	GetCandles(ctx context.Context, exchange, segment, symbol string, start, end time.Time, intervalMinutes int) ([]Candle, error)
	GetOptionChain(ctx context.Context, exchange, underlying, expiryDate string) (*OptionChain, error)
	GetExpiries(ctx context.Context, exchange, underlying string) ([]string, error)
	GetGreeks(ctx context.Context, exchange, underlying, tradingSymbol, expiry string) (map[string]interface{}, error)
	PlaceOrder(ctx context.Context, req OrderRequest) (*OrderResult, error)
	GetOrders(ctx context.Context) ([]Order, error)
	GetPositions(ctx context.Context) ([]Position, error)
	Mode() string
}
