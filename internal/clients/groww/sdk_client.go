package groww

import (
	"context"
	"time"

	"github.com/tickerdeck/gateway/internal/clients/groww/sdk"
)

// SDKClient interface for dependency injection in tests
// This interface matches the SDK client methods we need
type SDKClient interface {
	GetLTP(ctx context.Context, segment string, exchangeSymbols []string) (map[string]float64, error)
	GetOHLC(ctx context.Context, segment string, exchangeSymbols []string) (map[string]sdk.OHLC, error)
	GetQuote(ctx context.Context, exchange, segment, tradingSymbol string) (map[string]interface{}, error)
	GetHistoricalCandles(ctx context.Context, exchange, segment, tradingSymbol string, start, end time.Time, intervalMinutes int) (*sdk.CandleResponse, error)
	GetOptionChain(ctx context.Context, exchange, underlying, expiryDate string) (*sdk.OptionChainResponse, error)
	GetExpiries(ctx context.Context, exchange, underlying string) ([]string, error)
	GetGreeks(ctx context.Context, exchange, underlying, tradingSymbol, expiry string) (map[string]interface{}, error)
	PlaceOrder(ctx context.Context, params sdk.PlaceOrderParams) (*sdk.OrderResponse, error)
	GetOrders(ctx context.Context) (*sdk.OrderListResponse, error)
	GetPositions(ctx context.Context) (*sdk.PositionsResponse, error)
}
