package groww

import (
	"fmt"

	"github.com/tickerdeck/gateway/internal/clients/groww/sdk"
)

// transformOHLCMap converts SDK OHLC snapshots into gateway types.
func transformOHLCMap(in map[string]sdk.OHLC) map[string]OHLC {
	out := make(map[string]OHLC, len(in))
	for key, v := range in {
		out[key] = OHLC{
			Open:  v.Open,
			High:  v.High,
			Low:   v.Low,
			Close: v.Close,
		}
	}
	return out
}

// transformCandles converts the upstream candle arrays into Candle values.
// Each upstream candle is [epoch_seconds, open, high, low, close, volume];
// rows that do not match that shape are rejected.
func transformCandles(in *sdk.CandleResponse) ([]Candle, error) {
	if in == nil {
		return []Candle{}, nil
	}

	candles := make([]Candle, 0, len(in.Candles))
	for i, row := range in.Candles {
		if len(row) < 5 {
			return nil, fmt.Errorf("candle %d has %d fields, want at least 5", i, len(row))
		}

		values := make([]float64, 0, 6)
		for j, field := range row {
			if j >= 6 {
				break
			}
			num, ok := field.(float64)
			if !ok {
				return nil, fmt.Errorf("candle %d field %d is %T, want number", i, j, field)
			}
			values = append(values, num)
		}

		candle := Candle{
			Timestamp: int64(values[0]),
			Open:      values[1],
			High:      values[2],
			Low:       values[3],
			Close:     values[4],
		}
		if len(values) > 5 {
			candle.Volume = int64(values[5])
		}
		candles = append(candles, candle)
	}
	return candles, nil
}

// transformOptionChain converts the upstream option chain payload. Missing
// legs become zero-valued legs so every strike row is fully populated.
func transformOptionChain(in *sdk.OptionChainResponse) *OptionChain {
	if in == nil {
		return &OptionChain{Strikes: []StrikeRow{}}
	}

	strikes := make([]StrikeRow, 0, len(in.Strikes))
	for _, s := range in.Strikes {
		row := StrikeRow{StrikePrice: s.StrikePrice}
		if s.Call != nil {
			row.Call = transformLeg(s.Call)
		}
		if s.Put != nil {
			row.Put = transformLeg(s.Put)
		}
		strikes = append(strikes, row)
	}

	return &OptionChain{
		Underlying:      in.Underlying,
		ExpiryDate:      in.ExpiryDate,
		UnderlyingPrice: in.UnderlyingPrice,
		Strikes:         strikes,
	}
}

func transformLeg(in *sdk.OptionLeg) OptionLeg {
	return OptionLeg{
		TradingSymbol:     in.TradingSymbol,
		LTP:               in.LTP,
		OpenInterest:      in.OpenInterest,
		ImpliedVolatility: in.ImpliedVolatility,
		Volume:            in.Volume,
	}
}

// transformOrders converts the upstream order list payload.
func transformOrders(in *sdk.OrderListResponse) []Order {
	if in == nil {
		return []Order{}
	}

	orders := make([]Order, 0, len(in.Orders))
	for _, o := range in.Orders {
		orders = append(orders, Order{
			OrderID:        o.GrowwOrderID,
			Symbol:         o.TradingSymbol,
			Exchange:       o.Exchange,
			Segment:        o.Segment,
			Side:           o.TransactionType,
			OrderType:      o.OrderType,
			Status:         o.OrderStatus,
			Quantity:       o.Quantity,
			FilledQuantity: o.FilledQuantity,
			Price:          o.Price,
			AveragePrice:   o.AveragePrice,
			CreatedAt:      o.CreatedAt,
		})
	}
	return orders
}

// transformPositions converts the upstream positions payload.
func transformPositions(in *sdk.PositionsResponse) []Position {
	if in == nil {
		return []Position{}
	}

	positions := make([]Position, 0, len(in.Positions))
	for _, p := range in.Positions {
		positions = append(positions, Position{
			Symbol:   p.TradingSymbol,
			Exchange: p.Exchange,
			Segment:  p.Segment,
			Quantity: p.Quantity,
			AvgPrice: p.NetAveragePrice,
		})
	}
	return positions
}
