package sdk

// OHLC is the open/high/low/close snapshot as returned by the live-data API.
type OHLC struct {
	Open  float64 `json:"open"`
	High  float64 `json:"high"`
	Low   float64 `json:"low"`
	Close float64 `json:"close"`
}

// CandleResponse holds historical candle data. Each candle is an array of
// [epoch_seconds, open, high, low, close, volume].
type CandleResponse struct {
	Candles           [][]interface{} `json:"candles"`
	StartTime         string          `json:"start_time"`
	EndTime           string          `json:"end_time"`
	IntervalInMinutes int             `json:"interval_in_minutes"`
}

// OptionLeg is a single call or put contract in an option chain row.
type OptionLeg struct {
	TradingSymbol     string  `json:"trading_symbol"`
	LTP               float64 `json:"ltp"`
	OpenInterest      int64   `json:"open_interest"`
	ImpliedVolatility float64 `json:"implied_volatility"`
	Volume            int64   `json:"volume"`
}

// OptionChainStrike is one strike row of an option chain.
type OptionChainStrike struct {
	StrikePrice float64    `json:"strike_price"`
	Call        *OptionLeg `json:"call_option"`
	Put         *OptionLeg `json:"put_option"`
}

// OptionChainResponse is the upstream option chain payload.
type OptionChainResponse struct {
	Underlying      string              `json:"underlying"`
	UnderlyingPrice float64             `json:"underlying_price"`
	ExpiryDate      string              `json:"expiry_date"`
	Strikes         []OptionChainStrike `json:"option_chain"`
}

// ExpiryResponse is the upstream expiry list payload.
type ExpiryResponse struct {
	ExpiryDates []string `json:"expiry_dates"`
}

// PlaceOrderParams represents parameters for the order placement call.
type PlaceOrderParams struct {
	TradingSymbol   string   `json:"trading_symbol"`
	Exchange        string   `json:"exchange"`
	Segment         string   `json:"segment"`
	TransactionType string   `json:"transaction_type"`
	OrderType       string   `json:"order_type"`
	Product         string   `json:"product"`
	Validity        string   `json:"validity"`
	Quantity        int      `json:"quantity"`
	Price           *float64 `json:"price,omitempty"`
	OrderReferenceID string  `json:"order_reference_id"`
}

// OrderResponse is the upstream order acknowledgement payload.
type OrderResponse struct {
	GrowwOrderID     string `json:"groww_order_id"`
	OrderStatus      string `json:"order_status"`
	OrderReferenceID string `json:"order_reference_id"`
	Remark           string `json:"remark"`
}

// OrderDetail is a single order in the order list payload.
type OrderDetail struct {
	GrowwOrderID    string   `json:"groww_order_id"`
	TradingSymbol   string   `json:"trading_symbol"`
	Exchange        string   `json:"exchange"`
	Segment         string   `json:"segment"`
	TransactionType string   `json:"transaction_type"`
	OrderType       string   `json:"order_type"`
	OrderStatus     string   `json:"order_status"`
	Quantity        int      `json:"quantity"`
	FilledQuantity  int      `json:"filled_quantity"`
	Price           float64  `json:"price"`
	AveragePrice    float64  `json:"average_fill_price"`
	CreatedAt       string   `json:"created_at"`
}

// OrderListResponse is the upstream order list payload.
type OrderListResponse struct {
	Orders []OrderDetail `json:"order_list"`
}

// PositionDetail is a single position in the positions payload.
type PositionDetail struct {
	TradingSymbol      string  `json:"trading_symbol"`
	Exchange           string  `json:"exchange"`
	Segment            string  `json:"segment"`
	Quantity           int     `json:"quantity"`
	NetAveragePrice    float64 `json:"net_price"`
	CreditQuantity     int     `json:"credit_quantity"`
	DebitQuantity      int     `json:"debit_quantity"`
	NetCarryForwardQty int     `json:"net_carry_forward_quantity"`
}

// PositionsResponse is the upstream positions payload.
type PositionsResponse struct {
	Positions []PositionDetail `json:"positions"`
}
