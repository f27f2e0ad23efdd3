package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/tickerdeck/gateway/internal/clients/groww"
	"github.com/tickerdeck/gateway/internal/clients/groww/sdk"
	"github.com/tickerdeck/gateway/internal/market"
)

// Per-endpoint cache windows. Policy knobs sized to data volatility: batched
// snapshots a few seconds, single quotes shorter, option data longer.
const (
	maxAgeSnapshot    = 5 * time.Second
	maxAgeQuote       = 3 * time.Second
	maxAgeChart       = 60 * time.Second
	maxAgeOptionChain = 30 * time.Second
	maxAgeExpiries    = 5 * time.Minute
)

// Data sources reported alongside chart and option chain payloads. Synthetic
// payloads are a resilience fallback with the same wire shape as live data.
const (
	sourceLive      = "live"
	sourceSynthetic = "synthetic"
)

// snapshotRows builds derived quote rows for a list of catalog instruments,
// fetching LTP and OHLC in one batched call each. Upstream failure degrades to
// zero-valued rows instead of an error.
func (s *Server) snapshotRows(ctx context.Context, instruments []market.Instrument) []market.QuoteSnapshot {
	keys := market.Keys(instruments)

	ltps, err := s.client.GetLTP(ctx, sdk.SegmentCash, keys)
	if err != nil {
		s.log.Warn().Err(err).Msg("LTP fetch failed, serving zero-valued rows")
		ltps = map[string]float64{}
	}

	ohlcs, err := s.client.GetOHLC(ctx, sdk.SegmentCash, keys)
	if err != nil {
		s.log.Warn().Err(err).Msg("OHLC fetch failed, serving zero-valued rows")
		ohlcs = map[string]groww.OHLC{}
	}

	rows := make([]market.QuoteSnapshot, 0, len(instruments))
	for _, inst := range instruments {
		rows = append(rows, market.Snapshot(inst, ltps, ohlcs))
	}
	return rows
}

// handlePopularStocks serves derived quote rows for the stock catalog.
func (s *Server) handlePopularStocks(w http.ResponseWriter, r *http.Request) {
	const key = "popular_stocks"
	if cached, ok := s.cache.Get(key, maxAgeSnapshot); ok {
		s.writeSuccess(w, cached)
		return
	}

	rows := s.snapshotRows(r.Context(), s.catalog.PopularStocks)
	s.cache.Set(key, rows)
	s.writeSuccess(w, rows)
}

// handleIndices serves derived quote rows for the major indices.
func (s *Server) handleIndices(w http.ResponseWriter, r *http.Request) {
	const key = "indices"
	if cached, ok := s.cache.Get(key, maxAgeSnapshot); ok {
		s.writeSuccess(w, cached)
		return
	}

	rows := s.snapshotRows(r.Context(), s.catalog.MajorIndices)
	s.cache.Set(key, rows)
	s.writeSuccess(w, rows)
}

// handleQuote serves the full quote for a single instrument.
func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	symbol := r.URL.Query().Get("symbol")
	if symbol == "" {
		s.writeError(w, http.StatusBadRequest, "Symbol is required")
		return
	}
	exchange := queryDefault(r, "exchange", "NSE")
	segment := queryDefault(r, "segment", sdk.SegmentCash)

	key := fmt.Sprintf("quote_%s_%s_%s", exchange, segment, symbol)
	if cached, ok := s.cache.Get(key, maxAgeQuote); ok {
		s.writeSuccess(w, cached)
		return
	}

	quote, err := s.client.GetQuote(r.Context(), exchange, segment, symbol)
	if err != nil {
		s.log.Warn().Err(err).Str("symbol", symbol).Msg("Quote fetch failed, serving empty quote")
		s.writeSuccess(w, map[string]interface{}{})
		return
	}

	s.cache.Set(key, quote)
	s.writeSuccess(w, quote)
}

// handleChart serves a candle series for a logical chart interval. When live
// candles cannot be obtained the response carries a synthesized series so the
// front end always has something to draw.
func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	symbol := r.URL.Query().Get("symbol")
	if symbol == "" {
		s.writeError(w, http.StatusBadRequest, "Symbol is required")
		return
	}
	exchange := queryDefault(r, "exchange", "NSE")
	interval := queryDefault(r, "interval", "1D")

	key := fmt.Sprintf("chart_%s_%s_%s", exchange, symbol, interval)
	if cached, ok := s.cache.Get(key, maxAgeChart); ok {
		s.writeSuccess(w, cached)
		return
	}

	window := market.MapInterval(interval)
	end := time.Now()
	start := end.AddDate(0, 0, -window.LookbackDays)

	source := sourceLive
	candles, err := s.client.GetCandles(r.Context(), exchange, sdk.SegmentCash, symbol, start, end, window.IntervalMinutes)
	if err != nil || len(candles) == 0 {
		if err != nil {
			s.log.Warn().Err(err).Str("symbol", symbol).Msg("Candle fetch failed, synthesizing series")
		}
		candles = market.SynthesizeCandles(window.LookbackDays)
		source = sourceSynthetic
	}

	payload := map[string]interface{}{
		"symbol":   symbol,
		"exchange": exchange,
		"interval": interval,
		"source":   source,
		"candles":  candles,
	}
	s.cache.Set(key, payload)
	s.writeSuccess(w, payload)
}

// handleOptionChain serves the option chain for an underlying. The expiry
// defaults to the nearest upstream expiry when omitted; upstream failure or an
// empty chain degrades to a synthesized one.
func (s *Server) handleOptionChain(w http.ResponseWriter, r *http.Request) {
	underlying := r.URL.Query().Get("underlying")
	if underlying == "" {
		s.writeError(w, http.StatusBadRequest, "Underlying is required")
		return
	}
	exchange := queryDefault(r, "exchange", "NSE")
	expiry := r.URL.Query().Get("expiry_date")

	if expiry == "" {
		if expiries, err := s.client.GetExpiries(r.Context(), exchange, underlying); err == nil && len(expiries) > 0 {
			expiry = expiries[0]
		}
	}

	key := fmt.Sprintf("option_chain_%s_%s_%s", exchange, underlying, expiry)
	if cached, ok := s.cache.Get(key, maxAgeOptionChain); ok {
		s.writeSuccess(w, cached)
		return
	}

	source := sourceLive
	chain, err := s.client.GetOptionChain(r.Context(), exchange, underlying, expiry)
	if err != nil || chain == nil || len(chain.Strikes) == 0 {
		if err != nil {
			s.log.Warn().Err(err).Str("underlying", underlying).Msg("Option chain fetch failed, synthesizing chain")
		}
		chain = market.SynthesizeOptionChain(underlying)
		chain.ExpiryDate = expiry
		source = sourceSynthetic
	}

	payload := map[string]interface{}{
		"source": source,
		"chain":  chain,
	}
	s.cache.Set(key, payload)
	s.writeSuccess(w, payload)
}

// handleExpiries serves available expiry dates for an underlying.
func (s *Server) handleExpiries(w http.ResponseWriter, r *http.Request) {
	underlying := r.URL.Query().Get("underlying")
	if underlying == "" {
		s.writeError(w, http.StatusBadRequest, "Underlying is required")
		return
	}
	exchange := queryDefault(r, "exchange", "NSE")

	key := fmt.Sprintf("expiries_%s_%s", exchange, underlying)
	if cached, ok := s.cache.Get(key, maxAgeExpiries); ok {
		s.writeSuccess(w, cached)
		return
	}

	expiries, err := s.client.GetExpiries(r.Context(), exchange, underlying)
	if err != nil {
		s.log.Warn().Err(err).Str("underlying", underlying).Msg("Expiry fetch failed, serving empty list")
		s.writeSuccess(w, []string{})
		return
	}

	s.cache.Set(key, expiries)
	s.writeSuccess(w, expiries)
}

// handleGreeks passes option greeks through from upstream.
func (s *Server) handleGreeks(w http.ResponseWriter, r *http.Request) {
	underlying := r.URL.Query().Get("underlying")
	tradingSymbol := r.URL.Query().Get("trading_symbol")
	expiry := r.URL.Query().Get("expiry")
	if underlying == "" || tradingSymbol == "" || expiry == "" {
		s.writeError(w, http.StatusBadRequest, "All parameters are required")
		return
	}
	exchange := queryDefault(r, "exchange", "NSE")

	greeks, err := s.client.GetGreeks(r.Context(), exchange, underlying, tradingSymbol, expiry)
	if err != nil {
		s.log.Warn().Err(err).Str("trading_symbol", tradingSymbol).Msg("Greeks fetch failed, serving empty result")
		s.writeSuccess(w, map[string]interface{}{})
		return
	}

	s.writeSuccess(w, greeks)
}

func queryDefault(r *http.Request, key, def string) string {
	if v := r.URL.Query().Get(key); v != "" {
		return v
	}
	return def
}
