package groww

// OHLC is an open/high/low/close snapshot for the current session.
type OHLC struct {
	Open  float64 `json:"open"`
	High  float64 `json:"high"`
	Low   float64 `json:"low"`
	Close float64 `json:"close"`
}

// Candle is a single OHLCV candlestick data point.
type Candle struct {
	Timestamp int64   `json:"timestamp"` // Unix timestamp in seconds
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Volume    int64   `json:"volume"`
}

// OptionLeg is one side (call or put) of an option chain row.
type OptionLeg struct {
	TradingSymbol     string  `json:"trading_symbol"`
	LTP               float64 `json:"ltp"`
	OpenInterest      int64   `json:"open_interest"`
	ImpliedVolatility float64 `json:"implied_volatility"`
	Volume            int64   `json:"volume"`
}

// StrikeRow is a single strike of an option chain with both legs.
type StrikeRow struct {
	StrikePrice float64   `json:"strike_price"`
	Call        OptionLeg `json:"call"`
	Put         OptionLeg `json:"put"`
}

// OptionChain tabulates call/put contracts by strike for one underlying and expiry.
type OptionChain struct {
	Underlying      string      `json:"underlying"`
	ExpiryDate      string      `json:"expiry_date"`
	UnderlyingPrice float64     `json:"underlying_price"`
	Strikes         []StrikeRow `json:"strikes"`
}

// OrderRequest describes an order to place upstream.
type OrderRequest struct {
	Symbol      string   `json:"symbol"`
	Exchange    string   `json:"exchange"`
	Segment     string   `json:"segment"`
	Side        string   `json:"side"` // BUY or SELL
	OrderType   string   `json:"order_type"`
	Product     string   `json:"product"`
	Validity    string   `json:"validity"`
	Quantity    int      `json:"quantity"`
	Price       *float64 `json:"price,omitempty"`
	ReferenceID string   `json:"reference_id"`
}

// OrderResult is the acknowledgement for a placed order.
type OrderResult struct {
	OrderID     string `json:"order_id"`
	Status      string `json:"status"`
	ReferenceID string `json:"reference_id"`
	Remark      string `json:"remark,omitempty"`
}

// Order is a single order from the upstream order book.
type Order struct {
	OrderID        string  `json:"order_id"`
	Symbol         string  `json:"symbol"`
	Exchange       string  `json:"exchange"`
	Segment        string  `json:"segment"`
	Side           string  `json:"side"`
	OrderType      string  `json:"order_type"`
	Status         string  `json:"status"`
	Quantity       int     `json:"quantity"`
	FilledQuantity int     `json:"filled_quantity"`
	Price          float64 `json:"price"`
	AveragePrice   float64 `json:"average_price"`
	CreatedAt      string  `json:"created_at"`
}

// Position is a single open position.
type Position struct {
	Symbol   string  `json:"symbol"`
	Exchange string  `json:"exchange"`
	Segment  string  `json:"segment"`
	Quantity int     `json:"quantity"`
	AvgPrice float64 `json:"avg_price"`
}
