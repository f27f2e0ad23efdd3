package groww

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeClient_NeverErrorsOnData(t *testing.T) {
	log := zerolog.New(nil).Level(zerolog.Disabled)
	c := NewSafeClient(log)
	ctx := context.Background()

	assert.Equal(t, ModeSafe, c.Mode())

	ltps, err := c.GetLTP(ctx, "CASH", []string{"NSE_RELIANCE", "NSE_TCS"})
	require.NoError(t, err)
	assert.NotNil(t, ltps)
	assert.Empty(t, ltps)

	ohlcs, err := c.GetOHLC(ctx, "CASH", []string{"NSE_NIFTY"})
	require.NoError(t, err)
	assert.NotNil(t, ohlcs)
	assert.Empty(t, ohlcs)

	quote, err := c.GetQuote(ctx, "NSE", "CASH", "RELIANCE")
	require.NoError(t, err)
	assert.NotNil(t, quote)
	assert.Empty(t, quote)

	candles, err := c.GetCandles(ctx, "NSE", "CASH", "RELIANCE", time.Now().Add(-time.Hour), time.Now(), 5)
	require.NoError(t, err)
	assert.NotNil(t, candles)
	assert.Empty(t, candles)

	chain, err := c.GetOptionChain(ctx, "NSE", "NIFTY", "2024-06-27")
	require.NoError(t, err)
	require.NotNil(t, chain)
	assert.Equal(t, "NIFTY", chain.Underlying)
	assert.NotNil(t, chain.Strikes)
	assert.Empty(t, chain.Strikes)

	expiries, err := c.GetExpiries(ctx, "NSE", "NIFTY")
	require.NoError(t, err)
	assert.NotNil(t, expiries)
	assert.Empty(t, expiries)

	greeks, err := c.GetGreeks(ctx, "NSE", "NIFTY", "NIFTY22500CE", "2024-06-27")
	require.NoError(t, err)
	assert.NotNil(t, greeks)
	assert.Empty(t, greeks)

	orders, err := c.GetOrders(ctx)
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)

	positions, err := c.GetPositions(ctx)
	require.NoError(t, err)
	assert.NotNil(t, positions)
	assert.Empty(t, positions)
}

func TestSafeClient_RejectsOrders(t *testing.T) {
	log := zerolog.New(nil).Level(zerolog.Disabled)
	c := NewSafeClient(log)

	result, err := c.PlaceOrder(context.Background(), OrderRequest{Symbol: "RELIANCE", Side: "BUY", Quantity: 1})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestBuild(t *testing.T) {
	log := zerolog.New(nil).Level(zerolog.Disabled)

	t.Run("token yields live client", func(t *testing.T) {
		client := Build("some-token", true, log)
		assert.Equal(t, ModeLive, client.Mode())
	})

	t.Run("absent token yields safe client", func(t *testing.T) {
		client := Build("", false, log)
		assert.Equal(t, ModeSafe, client.Mode())
	})

	t.Run("empty token with ok yields safe client", func(t *testing.T) {
		client := Build("", true, log)
		assert.Equal(t, ModeSafe, client.Mode())
	})
}
