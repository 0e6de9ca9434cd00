package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"opsboard/internal/repository"
)

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (s *Server) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OrderNumber     string          `json:"order_number"`
		CustomerName    string          `json:"customer_name"`
		CustomerEmail   string          `json:"customer_email"`
		CustomerPhone   string          `json:"customer_phone"`
		PaymentStatus   string          `json:"payment_status"`
		TotalAmount     decimal.Decimal `json:"total_amount"`
		CurrencyCode    string          `json:"currency_code"`
		ShippingAddress string          `json:"shipping_address"`
		ShippingCity    string          `json:"shipping_city"`
		ShippingState   string          `json:"shipping_state"`
		Carrier         *string         `json:"carrier"`
		ChannelID       *int64          `json:"channel_id"`
		OrderDate       string          `json:"order_date"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order := &repository.Order{
		OrderNumber:     req.OrderNumber,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		PaymentStatus:   req.PaymentStatus,
		TotalAmount:     req.TotalAmount,
		CurrencyCode:    req.CurrencyCode,
		ShippingAddress: req.ShippingAddress,
		ShippingCity:    req.ShippingCity,
		ShippingState:   req.ShippingState,
		Carrier:         req.Carrier,
		ChannelID:       req.ChannelID,
	}
	if req.OrderDate != "" {
		date, err := time.Parse("2006-01-02", req.OrderDate)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
			return
		}
		order.OrderDate = date.UTC()
	}

	if err := s.storage.CreateOrder(r.Context(), order); err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, order)
}

func (s *Server) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	order, err := s.storage.GetOrder(r.Context(), id)
	if err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, order)
}

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	status := repository.OrderStatus(r.URL.Query().Get("status"))
	search := r.URL.Query().Get("search")

	orders, err := s.storage.ListOrders(r.Context(), status, search)
	if err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, orders)
}

func (s *Server) handleOrderStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.storage.GetOrderStats(r.Context())
	if err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, stats)
}

func (s *Server) handleAdvanceOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	var req struct {
		Status repository.OrderStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := s.storage.AdvanceOrder(r.Context(), id, req.Status)
	if err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, order)
}
