// Package market derives quote metrics, maps chart intervals, and synthesizes
// fallback data when the upstream API cannot serve a request.
package market

import "github.com/tickerdeck/gateway/internal/clients/groww"

// QuoteSnapshot is the derived per-instrument row served to the front end.
type QuoteSnapshot struct {
	Symbol        string  `json:"symbol"`
	Exchange      string  `json:"exchange"`
	Name          string  `json:"name"`
	Sector        string  `json:"sector,omitempty"`
	LTP           float64 `json:"ltp"`
	Open          float64 `json:"open"`
	High          float64 `json:"high"`
	Low           float64 `json:"low"`
	Close         float64 `json:"close"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_perc"`
}

// ChangeFrom computes the session change and change-percent from the last
// traded price and the previous close. Both are zero when close or ltp is
// zero, so the division can never blow up on missing data.
func ChangeFrom(ltp float64, ohlc groww.OHLC) (change, changePercent float64) {
	if ltp == 0 || ohlc.Close == 0 {
		return 0, 0
	}
	change = ltp - ohlc.Close
	changePercent = change / ohlc.Close * 100
	return change, changePercent
}

// Snapshot builds a QuoteSnapshot for one catalog instrument from batched
// LTP/OHLC lookups keyed by "{exchange}_{symbol}". Missing keys produce
// zero-valued but well-formed rows.
func Snapshot(inst Instrument, ltps map[string]float64, ohlcs map[string]groww.OHLC) QuoteSnapshot {
	key := inst.Key()
	ltp := ltps[key]
	ohlc := ohlcs[key]
	change, changePct := ChangeFrom(ltp, ohlc)

	return QuoteSnapshot{
		Symbol:        inst.Symbol,
		Exchange:      inst.Exchange,
		Name:          inst.Name,
		Sector:        inst.Sector,
		LTP:           ltp,
		Open:          ohlc.Open,
		High:          ohlc.High,
		Low:           ohlc.Low,
		Close:         ohlc.Close,
		Change:        change,
		ChangePercent: changePct,
	}
}

// Window pairs an upstream candle granularity with a lookback range.
type Window struct {
	IntervalMinutes int
	LookbackDays    int
}

// intervalWindows maps logical chart intervals to upstream windows.
var intervalWindows = map[string]Window{
	"1D": {IntervalMinutes: 1, LookbackDays: 1},
	"1W": {IntervalMinutes: 5, LookbackDays: 7},
	"1M": {IntervalMinutes: 15, LookbackDays: 30},
	"3M": {IntervalMinutes: 60, LookbackDays: 90},
	"1Y": {IntervalMinutes: 1440, LookbackDays: 365},
}

// defaultWindow is used for unrecognized interval tokens.
var defaultWindow = Window{IntervalMinutes: 1440, LookbackDays: 30}

// MapInterval maps a logical chart interval token to an upstream window.
// Total: every token, including unknown ones, yields a deterministic pair.
func MapInterval(token string) Window {
	if w, ok := intervalWindows[token]; ok {
		return w
	}
	return defaultWindow
}
