// Package groww provides client functionality for interacting with the Groww API.
package groww

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tickerdeck/gateway/internal/clients/groww/sdk"
)

// Client is the live MarketClient. It forwards every call to the Groww API
// through the SDK transport and transforms payloads into gateway types.
type Client struct {
	sdkClient SDKClient
	log       zerolog.Logger
}

// NewClient creates a new live Groww client for the given access token.
func NewClient(accessToken string, log zerolog.Logger) *Client {
	return &Client{
		sdkClient: sdk.NewClient(accessToken, log),
		log:       log.With().Str("client", "groww").Logger(),
	}
}

// NewClientWithSDK creates a new Groww client with a provided SDK client (for testing)
func NewClientWithSDK(sdkClient SDKClient, log zerolog.Logger) *Client {
	return &Client{
		sdkClient: sdkClient,
		log:       log.With().Str("client", "groww").Logger(),
	}
}

// Mode reports the operating mode.
func (c *Client) Mode() string { return ModeLive }

// GetLTP fetches last traded prices for a batch of instruments.
func (c *Client) GetLTP(ctx context.Context, segment string, exchangeSymbols []string) (map[string]float64, error) {
	if len(exchangeSymbols) == 0 {
		return map[string]float64{}, nil
	}

	c.log.Debug().Strs("symbols", exchangeSymbols).Msg("GetLTP: calling SDK")
	result, err := c.sdkClient.GetLTP(ctx, segment, exchangeSymbols)
	if err != nil {
		c.log.Error().Err(err).Msg("GetLTP: SDK call failed")
		return nil, fmt.Errorf("%w: ltp: %v", ErrUpstream, err)
	}
	return result, nil
}

// GetOHLC fetches open/high/low/close snapshots for a batch of instruments.
func (c *Client) GetOHLC(ctx context.Context, segment string, exchangeSymbols []string) (map[string]OHLC, error) {
	if len(exchangeSymbols) == 0 {
		return map[string]OHLC{}, nil
	}

	c.log.Debug().Strs("symbols", exchangeSymbols).Msg("GetOHLC: calling SDK")
	result, err := c.sdkClient.GetOHLC(ctx, segment, exchangeSymbols)
	if err != nil {
		c.log.Error().Err(err).Msg("GetOHLC: SDK call failed")
		return nil, fmt.Errorf("%w: ohlc: %v", ErrUpstream, err)
	}
	return transformOHLCMap(result), nil
}

// GetQuote fetches the full quote for one instrument, passed through as-is.
func (c *Client) GetQuote(ctx context.Context, exchange, segment, symbol string) (map[string]interface{}, error) {
	c.log.Debug().Str("symbol", symbol).Msg("GetQuote: calling SDK")
	result, err := c.sdkClient.GetQuote(ctx, exchange, segment, symbol)
	if err != nil {
		c.log.Error().Err(err).Msg("GetQuote: SDK call failed")
		return nil, fmt.Errorf("%w: quote: %v", ErrUpstream, err)
	}
	return result, nil
}

// GetCandles fetches historical candles for an instrument.
func (c *Client) GetCandles(ctx context.Context, exchange, segment, symbol string, start, end time.Time, intervalMinutes int) ([]Candle, error) {
	c.log.Debug().
		Str("symbol", symbol).
		Time("start", start).
		Time("end", end).
		Int("interval_minutes", intervalMinutes).
		Msg("GetCandles: calling SDK")

	result, err := c.sdkClient.GetHistoricalCandles(ctx, exchange, segment, symbol, start, end, intervalMinutes)
	if err != nil {
		c.log.Error().Err(err).Msg("GetCandles: SDK call failed")
		return nil, fmt.Errorf("%w: candles: %v", ErrUpstream, err)
	}

	candles, err := transformCandles(result)
	if err != nil {
		c.log.Error().Err(err).Msg("GetCandles: transformCandles failed")
		return nil, fmt.Errorf("%w: candles: %v", ErrUpstream, err)
	}
	return candles, nil
}

// GetOptionChain fetches the option chain for an underlying and expiry.
func (c *Client) GetOptionChain(ctx context.Context, exchange, underlying, expiryDate string) (*OptionChain, error) {
	c.log.Debug().
		Str("underlying", underlying).
		Str("expiry_date", expiryDate).
		Msg("GetOptionChain: calling SDK")

	result, err := c.sdkClient.GetOptionChain(ctx, exchange, underlying, expiryDate)
	if err != nil {
		c.log.Error().Err(err).Msg("GetOptionChain: SDK call failed")
		return nil, fmt.Errorf("%w: option chain: %v", ErrUpstream, err)
	}
	return transformOptionChain(result), nil
}

// GetExpiries fetches available expiry dates for an underlying.
func (c *Client) GetExpiries(ctx context.Context, exchange, underlying string) ([]string, error) {
	c.log.Debug().Str("underlying", underlying).Msg("GetExpiries: calling SDK")
	result, err := c.sdkClient.GetExpiries(ctx, exchange, underlying)
	if err != nil {
		c.log.Error().Err(err).Msg("GetExpiries: SDK call failed")
		return nil, fmt.Errorf("%w: expiries: %v", ErrUpstream, err)
	}
	return result, nil
}

// GetGreeks fetches option greeks for a contract, passed through as-is.
func (c *Client) GetGreeks(ctx context.Context, exchange, underlying, tradingSymbol, expiry string) (map[string]interface{}, error) {
	c.log.Debug().Str("trading_symbol", tradingSymbol).Msg("GetGreeks: calling SDK")
	result, err := c.sdkClient.GetGreeks(ctx, exchange, underlying, tradingSymbol, expiry)
	if err != nil {
		c.log.Error().Err(err).Msg("GetGreeks: SDK call failed")
		return nil, fmt.Errorf("%w: greeks: %v", ErrUpstream, err)
	}
	return result, nil
}

// PlaceOrder submits an order upstream.
func (c *Client) PlaceOrder(ctx context.Context, req OrderRequest) (*OrderResult, error) {
	c.log.Debug().
		Str("symbol", req.Symbol).
		Str("side", req.Side).
		Int("quantity", req.Quantity).
		Msg("PlaceOrder: calling SDK")

	params := sdk.PlaceOrderParams{
		TradingSymbol:    req.Symbol,
		Exchange:         req.Exchange,
		Segment:          req.Segment,
		TransactionType:  req.Side,
		OrderType:        req.OrderType,
		Product:          req.Product,
		Validity:         req.Validity,
		Quantity:         req.Quantity,
		Price:            req.Price,
		OrderReferenceID: req.ReferenceID,
	}

	result, err := c.sdkClient.PlaceOrder(ctx, params)
	if err != nil {
		c.log.Error().Err(err).Msg("PlaceOrder: SDK call failed")
		return nil, fmt.Errorf("%w: place order: %v", ErrUpstream, err)
	}

	return &OrderResult{
		OrderID:     result.GrowwOrderID,
		Status:      result.OrderStatus,
		ReferenceID: result.OrderReferenceID,
		Remark:      result.Remark,
	}, nil
}

// GetOrders fetches the order list for the current trading day.
func (c *Client) GetOrders(ctx context.Context) ([]Order, error) {
	c.log.Debug().Msg("GetOrders: calling SDK")
	result, err := c.sdkClient.GetOrders(ctx)
	if err != nil {
		c.log.Error().Err(err).Msg("GetOrders: SDK call failed")
		return nil, fmt.Errorf("%w: orders: %v", ErrUpstream, err)
	}
	return transformOrders(result), nil
}

// GetPositions fetches open positions.
func (c *Client) GetPositions(ctx context.Context) ([]Position, error) {
	c.log.Debug().Msg("GetPositions: calling SDK")
	result, err := c.sdkClient.GetPositions(ctx)
	if err != nil {
		c.log.Error().Err(err).Msg("GetPositions: SDK call failed")
		return nil, fmt.Errorf("%w: positions: %v", ErrUpstream, err)
	}
	return transformPositions(result), nil
}
