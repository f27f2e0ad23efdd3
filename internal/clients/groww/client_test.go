package groww

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tickerdeck/gateway/internal/clients/groww/sdk"
)

// mockSDKClient implements SDKClient for tests.
type mockSDKClient struct {
	ltpResult    map[string]float64
	ltpErr       error
	ohlcResult   map[string]sdk.OHLC
	ohlcErr      error
	quoteResult  map[string]interface{}
	quoteErr     error
	candleResult *sdk.CandleResponse
	candleErr    error
	chainResult  *sdk.OptionChainResponse
	chainErr     error
	expiries     []string
	expiriesErr  error
	greeks       map[string]interface{}
	greeksErr    error
	orderResult  *sdk.OrderResponse
	orderErr     error
	orderParams  *sdk.PlaceOrderParams
	orders       *sdk.OrderListResponse
	ordersErr    error
	positions    *sdk.PositionsResponse
	positionsErr error
}

func (m *mockSDKClient) GetLTP(_ context.Context, _ string, _ []string) (map[string]float64, error) {
	return m.ltpResult, m.ltpErr
}

func (m *mockSDKClient) GetOHLC(_ context.Context, _ string, _ []string) (map[string]sdk.OHLC, error) {
	return m.ohlcResult, m.ohlcErr
}

func (m *mockSDKClient) GetQuote(_ context.Context, _, _, _ string) (map[string]interface{}, error) {
	return m.quoteResult, m.quoteErr
}

func (m *mockSDKClient) GetHistoricalCandles(_ context.Context, _, _, _ string, _, _ time.Time, _ int) (*sdk.CandleResponse, error) {
	return m.candleResult, m.candleErr
}

func (m *mockSDKClient) GetOptionChain(_ context.Context, _, _, _ string) (*sdk.OptionChainResponse, error) {
	return m.chainResult, m.chainErr
}

func (m *mockSDKClient) GetExpiries(_ context.Context, _, _ string) ([]string, error) {
	return m.expiries, m.expiriesErr
}

func (m *mockSDKClient) GetGreeks(_ context.Context, _, _, _, _ string) (map[string]interface{}, error) {
	return m.greeks, m.greeksErr
}

func (m *mockSDKClient) PlaceOrder(_ context.Context, params sdk.PlaceOrderParams) (*sdk.OrderResponse, error) {
	m.orderParams = &params
	return m.orderResult, m.orderErr
}

func (m *mockSDKClient) GetOrders(_ context.Context) (*sdk.OrderListResponse, error) {
	return m.orders, m.ordersErr
}

func (m *mockSDKClient) GetPositions(_ context.Context) (*sdk.PositionsResponse, error) {
	return m.positions, m.positionsErr
}

func TestClient_Mode(t *testing.T) {
	log := zerolog.New(nil).Level(zerolog.Disabled)
	client := NewClientWithSDK(&mockSDKClient{}, log)
	assert.Equal(t, ModeLive, client.Mode())
}

func TestClient_GetLTP(t *testing.T) {
	log := zerolog.New(nil).Level(zerolog.Disabled)

	t.Run("success", func(t *testing.T) {
		mock := &mockSDKClient{ltpResult: map[string]float64{"NSE_RELIANCE": 2860.5}}
		client := NewClientWithSDK(mock, log)

		result, err := client.GetLTP(context.Background(), sdk.SegmentCash, []string{"NSE_RELIANCE"})
		require.NoError(t, err)
		assert.Equal(t, 2860.5, result["NSE_RELIANCE"])
	})

	t.Run("empty batch short-circuits", func(t *testing.T) {
		mock := &mockSDKClient{ltpErr: errors.New("must not be called")}
		client := NewClientWithSDK(mock, log)

		result, err := client.GetLTP(context.Background(), sdk.SegmentCash, nil)
		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("sdk error wraps ErrUpstream", func(t *testing.T) {
		mock := &mockSDKClient{ltpErr: errors.New("timeout")}
		client := NewClientWithSDK(mock, log)

		_, err := client.GetLTP(context.Background(), sdk.SegmentCash, []string{"NSE_TCS"})
		assert.ErrorIs(t, err, ErrUpstream)
	})
}

func TestClient_GetOHLC(t *testing.T) {
	log := zerolog.New(nil).Level(zerolog.Disabled)
	mock := &mockSDKClient{ohlcResult: map[string]sdk.OHLC{
		"NSE_NIFTY": {Open: 22400, High: 22600, Low: 22350, Close: 22500},
	}}
	client := NewClientWithSDK(mock, log)

	result, err := client.GetOHLC(context.Background(), sdk.SegmentCash, []string{"NSE_NIFTY"})
	require.NoError(t, err)
	assert.Equal(t, OHLC{Open: 22400, High: 22600, Low: 22350, Close: 22500}, result["NSE_NIFTY"])
}

func TestClient_GetCandles(t *testing.T) {
	log := zerolog.New(nil).Level(zerolog.Disabled)
	start := time.Now().Add(-time.Hour)
	end := time.Now()

	t.Run("transforms candle arrays", func(t *testing.T) {
		mock := &mockSDKClient{candleResult: &sdk.CandleResponse{
			Candles: [][]interface{}{
				{1717401600.0, 100.0, 105.0, 99.0, 104.0, 5000.0},
				{1717401660.0, 104.0, 106.0, 103.0, 105.5, 4200.0},
			},
		}}
		client := NewClientWithSDK(mock, log)

		candles, err := client.GetCandles(context.Background(), "NSE", sdk.SegmentCash, "RELIANCE", start, end, 1)
		require.NoError(t, err)
		require.Len(t, candles, 2)
		assert.Equal(t, int64(1717401600), candles[0].Timestamp)
		assert.Equal(t, 104.0, candles[0].Close)
		assert.Equal(t, int64(4200), candles[1].Volume)
	})

	t.Run("candle without volume", func(t *testing.T) {
		mock := &mockSDKClient{candleResult: &sdk.CandleResponse{
			Candles: [][]interface{}{{1717401600.0, 100.0, 105.0, 99.0, 104.0}},
		}}
		client := NewClientWithSDK(mock, log)

		candles, err := client.GetCandles(context.Background(), "NSE", sdk.SegmentCash, "RELIANCE", start, end, 1)
		require.NoError(t, err)
		require.Len(t, candles, 1)
		assert.Zero(t, candles[0].Volume)
	})

	t.Run("malformed candle row fails", func(t *testing.T) {
		mock := &mockSDKClient{candleResult: &sdk.CandleResponse{
			Candles: [][]interface{}{{1717401600.0, "not-a-number", 105.0, 99.0, 104.0}},
		}}
		client := NewClientWithSDK(mock, log)

		_, err := client.GetCandles(context.Background(), "NSE", sdk.SegmentCash, "RELIANCE", start, end, 1)
		assert.ErrorIs(t, err, ErrUpstream)
	})

	t.Run("short candle row fails", func(t *testing.T) {
		mock := &mockSDKClient{candleResult: &sdk.CandleResponse{
			Candles: [][]interface{}{{1717401600.0, 100.0}},
		}}
		client := NewClientWithSDK(mock, log)

		_, err := client.GetCandles(context.Background(), "NSE", sdk.SegmentCash, "RELIANCE", start, end, 1)
		assert.ErrorIs(t, err, ErrUpstream)
	})
}

func TestClient_GetOptionChain(t *testing.T) {
	log := zerolog.New(nil).Level(zerolog.Disabled)

	t.Run("transforms strikes and legs", func(t *testing.T) {
		mock := &mockSDKClient{chainResult: &sdk.OptionChainResponse{
			Underlying:      "NIFTY",
			UnderlyingPrice: 22512.3,
			ExpiryDate:      "2024-06-27",
			Strikes: []sdk.OptionChainStrike{
				{
					StrikePrice: 22500,
					Call:        &sdk.OptionLeg{TradingSymbol: "NIFTY22500CE", LTP: 120.5, OpenInterest: 50000, ImpliedVolatility: 14.2, Volume: 12000},
					Put:         &sdk.OptionLeg{TradingSymbol: "NIFTY22500PE", LTP: 95.0, OpenInterest: 42000, ImpliedVolatility: 15.1, Volume: 9000},
				},
				{
					StrikePrice: 22550,
					// Leg missing upstream: stays zero-valued but present.
				},
			},
		}}
		client := NewClientWithSDK(mock, log)

		chain, err := client.GetOptionChain(context.Background(), "NSE", "NIFTY", "2024-06-27")
		require.NoError(t, err)
		require.Len(t, chain.Strikes, 2)
		assert.Equal(t, "NIFTY22500CE", chain.Strikes[0].Call.TradingSymbol)
		assert.Equal(t, 95.0, chain.Strikes[0].Put.LTP)
		assert.Zero(t, chain.Strikes[1].Call.LTP)
		assert.Zero(t, chain.Strikes[1].Put.LTP)
	})

	t.Run("sdk error wraps ErrUpstream", func(t *testing.T) {
		mock := &mockSDKClient{chainErr: errors.New("503")}
		client := NewClientWithSDK(mock, log)

		_, err := client.GetOptionChain(context.Background(), "NSE", "NIFTY", "2024-06-27")
		assert.ErrorIs(t, err, ErrUpstream)
	})
}

func TestClient_PlaceOrder(t *testing.T) {
	log := zerolog.New(nil).Level(zerolog.Disabled)
	price := 2850.0
	mock := &mockSDKClient{orderResult: &sdk.OrderResponse{
		GrowwOrderID:     "GMK42",
		OrderStatus:      "OPEN",
		OrderReferenceID: "ref-1",
	}}
	client := NewClientWithSDK(mock, log)

	result, err := client.PlaceOrder(context.Background(), OrderRequest{
		Symbol:      "RELIANCE",
		Exchange:    "NSE",
		Segment:     sdk.SegmentCash,
		Side:        "BUY",
		OrderType:   "LIMIT",
		Product:     "CNC",
		Validity:    "DAY",
		Quantity:    2,
		Price:       &price,
		ReferenceID: "ref-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "GMK42", result.OrderID)
	assert.Equal(t, "OPEN", result.Status)

	require.NotNil(t, mock.orderParams)
	assert.Equal(t, "RELIANCE", mock.orderParams.TradingSymbol)
	assert.Equal(t, "BUY", mock.orderParams.TransactionType)
	assert.Equal(t, 2, mock.orderParams.Quantity)
	require.NotNil(t, mock.orderParams.Price)
	assert.Equal(t, 2850.0, *mock.orderParams.Price)
}

func TestClient_GetOrdersAndPositions(t *testing.T) {
	log := zerolog.New(nil).Level(zerolog.Disabled)
	mock := &mockSDKClient{
		orders: &sdk.OrderListResponse{Orders: []sdk.OrderDetail{
			{GrowwOrderID: "GMK1", TradingSymbol: "TCS", TransactionType: "SELL", OrderStatus: "EXECUTED", Quantity: 5, FilledQuantity: 5, AveragePrice: 3890.2},
		}},
		positions: &sdk.PositionsResponse{Positions: []sdk.PositionDetail{
			{TradingSymbol: "INFY", Exchange: "NSE", Segment: "CASH", Quantity: 12, NetAveragePrice: 1450.75},
		}},
	}
	client := NewClientWithSDK(mock, log)

	orders, err := client.GetOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "GMK1", orders[0].OrderID)
	assert.Equal(t, "SELL", orders[0].Side)
	assert.Equal(t, 3890.2, orders[0].AveragePrice)

	positions, err := client.GetPositions(context.Background())
	require.NoError(t, err)
	require.Len(t, positions, 1)
	assert.Equal(t, "INFY", positions[0].Symbol)
	assert.Equal(t, 1450.75, positions[0].AvgPrice)
}
