package market

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/tickerdeck/gateway/internal/clients/groww"
)

const (
	// maxSyntheticPoints caps every synthesized series regardless of range.
	maxSyntheticPoints = 100

	// syntheticBasePrice anchors the synthetic random walk.
	syntheticBasePrice = 1000.0

	syntheticStrikeCount = 11
)

// anchorPrices hold per-underlying anchor levels for the synthetic option
// chain, roughly tracking where the indices trade.
var anchorPrices = map[string]float64{
	"NIFTY":     22500,
	"BANKNIFTY": 48000,
	"FINNIFTY":  21500,
	"SENSEX":    74000,
	"BANKEX":    55000,
}

// strikeSteps hold per-underlying strike spacing.
var strikeSteps = map[string]float64{
	"NIFTY":     50,
	"BANKNIFTY": 100,
	"FINNIFTY":  50,
	"SENSEX":    100,
	"BANKEX":    100,
}

const (
	defaultAnchorPrice = 1000
	defaultStrikeStep  = 50
)

// SynthesizeCandles produces a structurally valid substitute candle series for
// the given lookback range: a bounded random walk anchored at a fixed base
// price, one point per notional time step, at most 100 points, strictly
// increasing timestamps. It is a resilience fallback, not a forecast; the wire
// shape matches live data.
func SynthesizeCandles(lookbackDays int) []groww.Candle {
	if lookbackDays < 1 {
		lookbackDays = 1
	}

	// One notional point per hour, capped.
	points := lookbackDays * 24
	if points > maxSyntheticPoints {
		points = maxSyntheticPoints
	}

	end := time.Now().Truncate(time.Minute)
	span := time.Duration(lookbackDays) * 24 * time.Hour
	step := span / time.Duration(points)

	candles := make([]groww.Candle, 0, points)
	price := syntheticBasePrice
	for i := 0; i < points; i++ {
		open := price
		// Bounded step: at most ±1% per point.
		price = price * (1 + (rand.Float64()-0.5)*0.02)
		close := price

		high := math.Max(open, close) * (1 + rand.Float64()*0.005)
		low := math.Min(open, close) * (1 - rand.Float64()*0.005)

		ts := end.Add(-span + step*time.Duration(i+1))
		candles = append(candles, groww.Candle{
			Timestamp: ts.Unix(),
			Open:      round2(open),
			High:      round2(high),
			Low:       round2(low),
			Close:     round2(close),
			Volume:    10_000 + rand.Int64N(990_000),
		})
	}
	return candles
}

// SynthesizeOptionChain produces a structurally valid substitute option chain:
// eleven strikes at the underlying's strike step centered on its anchor price,
// each with independently randomized but bounded call and put legs.
func SynthesizeOptionChain(underlying string) *groww.OptionChain {
	anchor, ok := anchorPrices[underlying]
	if !ok {
		anchor = defaultAnchorPrice
	}
	step, ok := strikeSteps[underlying]
	if !ok {
		step = defaultStrikeStep
	}

	center := math.Round(anchor/step) * step
	half := syntheticStrikeCount / 2

	strikes := make([]groww.StrikeRow, 0, syntheticStrikeCount)
	for i := -half; i <= half; i++ {
		strike := center + float64(i)*step
		strikes = append(strikes, groww.StrikeRow{
			StrikePrice: strike,
			Call:        synthesizeLeg(underlying, strike, "CE"),
			Put:         synthesizeLeg(underlying, strike, "PE"),
		})
	}

	return &groww.OptionChain{
		Underlying:      underlying,
		UnderlyingPrice: anchor,
		Strikes:         strikes,
	}
}

func synthesizeLeg(underlying string, strike float64, kind string) groww.OptionLeg {
	return groww.OptionLeg{
		TradingSymbol:     fmt.Sprintf("%s%d%s", underlying, int(strike), kind),
		LTP:               round2(20 + rand.Float64()*480),
		OpenInterest:      10_000 + rand.Int64N(490_000),
		ImpliedVolatility: round2(10 + rand.Float64()*35),
		Volume:            1_000 + rand.Int64N(99_000),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
