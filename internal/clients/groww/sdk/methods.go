package sdk

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Segment constants matching the upstream API.
const (
	SegmentCash = "CASH"
	SegmentFNO  = "FNO"
)

// GetLTP fetches last traded prices for a batch of instruments. Results are
// keyed by "{exchange}_{symbol}".
func (c *Client) GetLTP(ctx context.Context, segment string, exchangeSymbols []string) (map[string]float64, error) {
	query := url.Values{}
	query.Set("segment", segment)
	query.Set("exchange_symbols", strings.Join(exchangeSymbols, ","))

	out := make(map[string]float64)
	if err := c.get(ctx, "/v1/live-data/ltp", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetOHLC fetches open/high/low/close snapshots for a batch of instruments.
// Results are keyed by "{exchange}_{symbol}".
func (c *Client) GetOHLC(ctx context.Context, segment string, exchangeSymbols []string) (map[string]OHLC, error) {
	query := url.Values{}
	query.Set("segment", segment)
	query.Set("exchange_symbols", strings.Join(exchangeSymbols, ","))

	out := make(map[string]OHLC)
	if err := c.get(ctx, "/v1/live-data/ohlc", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetQuote fetches the full market quote for a single instrument. The payload
// shape varies by segment, so it is passed through undecoded.
func (c *Client) GetQuote(ctx context.Context, exchange, segment, tradingSymbol string) (map[string]interface{}, error) {
	query := url.Values{}
	query.Set("exchange", exchange)
	query.Set("segment", segment)
	query.Set("trading_symbol", tradingSymbol)

	out := make(map[string]interface{})
	if err := c.get(ctx, "/v1/live-data/quote", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetHistoricalCandles fetches candle data for an instrument over a time range.
func (c *Client) GetHistoricalCandles(ctx context.Context, exchange, segment, tradingSymbol string, start, end time.Time, intervalMinutes int) (*CandleResponse, error) {
	query := url.Values{}
	query.Set("exchange", exchange)
	query.Set("segment", segment)
	query.Set("trading_symbol", tradingSymbol)
	query.Set("start_time", start.Format("2006-01-02 15:04:05"))
	query.Set("end_time", end.Format("2006-01-02 15:04:05"))
	query.Set("interval_in_minutes", strconv.Itoa(intervalMinutes))

	var out CandleResponse
	if err := c.get(ctx, "/v1/historical/candle/range", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetOptionChain fetches the option chain for an underlying and expiry date.
func (c *Client) GetOptionChain(ctx context.Context, exchange, underlying, expiryDate string) (*OptionChainResponse, error) {
	query := url.Values{}
	query.Set("exchange", exchange)
	query.Set("underlying", underlying)
	query.Set("expiry_date", expiryDate)

	var out OptionChainResponse
	if err := c.get(ctx, "/v1/option-chain", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetExpiries fetches available expiry dates for an underlying.
func (c *Client) GetExpiries(ctx context.Context, exchange, underlying string) ([]string, error) {
	query := url.Values{}
	query.Set("exchange", exchange)
	query.Set("underlying", underlying)

	var out ExpiryResponse
	if err := c.get(ctx, "/v1/option-chain/expiries", query, &out); err != nil {
		return nil, err
	}
	return out.ExpiryDates, nil
}

// GetGreeks fetches option greeks for a contract. Passed through undecoded.
func (c *Client) GetGreeks(ctx context.Context, exchange, underlying, tradingSymbol, expiry string) (map[string]interface{}, error) {
	query := url.Values{}
	query.Set("exchange", exchange)
	query.Set("underlying", underlying)
	query.Set("trading_symbol", tradingSymbol)
	query.Set("expiry", expiry)

	out := make(map[string]interface{})
	if err := c.get(ctx, "/v1/option-chain/greeks", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PlaceOrder submits a new order.
func (c *Client) PlaceOrder(ctx context.Context, params PlaceOrderParams) (*OrderResponse, error) {
	var out OrderResponse
	if err := c.post(ctx, "/v1/order/create", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetOrders fetches the order list for the current trading day.
func (c *Client) GetOrders(ctx context.Context) (*OrderListResponse, error) {
	var out OrderListResponse
	if err := c.get(ctx, "/v1/order/list", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetPositions fetches open positions for the user.
func (c *Client) GetPositions(ctx context.Context) (*PositionsResponse, error) {
	var out PositionsResponse
	if err := c.get(ctx, "/v1/positions/user", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
