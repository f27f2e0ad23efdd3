package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/tickerdeck/gateway/internal/clients/groww"
	"github.com/tickerdeck/gateway/internal/clients/groww/sdk"
)

// placeOrderRequest is the inbound order body.
type placeOrderRequest struct {
	Symbol    string   `json:"symbol"`
	Exchange  string   `json:"exchange"`
	Segment   string   `json:"segment"`
	Side      string   `json:"side"`
	OrderType string   `json:"order_type"`
	Product   string   `json:"product"`
	Validity  string   `json:"validity"`
	Quantity  int      `json:"quantity"`
	Price     *float64 `json:"price,omitempty"`
}

// handlePlaceOrder submits an order upstream. Orders are the one surface that
// is never synthesized: an upstream failure is reported, not papered over.
func (s *Server) handlePlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req placeOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Symbol == "" {
		s.writeError(w, http.StatusBadRequest, "Symbol is required")
		return
	}
	side := strings.ToUpper(req.Side)
	if side != "BUY" && side != "SELL" {
		s.writeError(w, http.StatusBadRequest, "Side must be BUY or SELL")
		return
	}
	if req.Quantity <= 0 {
		s.writeError(w, http.StatusBadRequest, "Quantity must be positive")
		return
	}

	order := groww.OrderRequest{
		Symbol:      req.Symbol,
		Exchange:    defaultString(req.Exchange, "NSE"),
		Segment:     defaultString(req.Segment, sdk.SegmentCash),
		Side:        side,
		OrderType:   defaultString(req.OrderType, "MARKET"),
		Product:     defaultString(req.Product, "CNC"),
		Validity:    defaultString(req.Validity, "DAY"),
		Quantity:    req.Quantity,
		Price:       req.Price,
		ReferenceID: uuid.New().String(),
	}

	result, err := s.client.PlaceOrder(r.Context(), order)
	if err != nil {
		s.log.Error().Err(err).Str("symbol", order.Symbol).Msg("Order placement failed")
		s.writeError(w, http.StatusBadGateway, "Order placement failed")
		return
	}

	s.writeSuccess(w, result)
}

// handleOrders serves the upstream order list.
func (s *Server) handleOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := s.client.GetOrders(r.Context())
	if err != nil {
		s.log.Warn().Err(err).Msg("Order list fetch failed, serving empty list")
		s.writeSuccess(w, []groww.Order{})
		return
	}
	s.writeSuccess(w, orders)
}

// handlePositions serves the upstream positions list.
func (s *Server) handlePositions(w http.ResponseWriter, r *http.Request) {
	positions, err := s.client.GetPositions(r.Context())
	if err != nil {
		s.log.Warn().Err(err).Msg("Positions fetch failed, serving empty list")
		s.writeSuccess(w, []groww.Position{})
		return
	}
	s.writeSuccess(w, positions)
}

func defaultString(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
