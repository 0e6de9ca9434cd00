package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"opsboard/internal/repository"
)

func (s *Server) handleCreateReturn(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ReturnNumber  string                `json:"return_number"`
		OrderID       int64                 `json:"order_id"`
		CustomerID    int64                 `json:"customer_id"`
		ReturnType    repository.ReturnType `json:"return_type"`
		Reason        string                `json:"reason"`
		RefundAmount  decimal.Decimal       `json:"refund_amount"`
		PickupAddress string                `json:"pickup_address"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ret := &repository.Return{
		ReturnNumber:  req.ReturnNumber,
		OrderID:       req.OrderID,
		CustomerID:    req.CustomerID,
		ReturnType:    req.ReturnType,
		Reason:        req.Reason,
		RefundAmount:  req.RefundAmount,
		PickupAddress: req.PickupAddress,
	}

	if err := s.storage.CreateReturn(r.Context(), ret); err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, ret)
}

func (s *Server) handleGetReturn(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid return ID")
		return
	}

	ret, err := s.storage.GetReturn(r.Context(), id)
	if err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, ret)
}

func (s *Server) handleListReturns(w http.ResponseWriter, r *http.Request) {
	status := repository.ReturnStatus(r.URL.Query().Get("status"))
	search := r.URL.Query().Get("search")

	returns, err := s.storage.ListReturns(r.Context(), status, search)
	if err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, returns)
}

func (s *Server) handleReturnStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.storage.GetReturnStats(r.Context())
	if err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, stats)
}

func (s *Server) handleApproveReturn(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid return ID")
		return
	}

	ret, err := s.storage.ApproveReturn(r.Context(), id)
	if err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, ret)
}

func (s *Server) handleRejectReturn(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid return ID")
		return
	}

	ret, err := s.storage.RejectReturn(r.Context(), id)
	if err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, ret)
}

func (s *Server) handleSchedulePickup(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid return ID")
		return
	}

	var req struct {
		Carrier        string  `json:"carrier"`
		PickupDate     string  `json:"pickup_date"`
		PickupTimeSlot string  `json:"pickup_time_slot"`
		PickupAddress  string  `json:"pickup_address"`
		ContactName    string  `json:"contact_name"`
		ContactPhone   string  `json:"contact_phone"`
		Instructions   *string `json:"instructions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	date, err := time.Parse("2006-01-02", req.PickupDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
		return
	}

	pickup := &repository.ReversePickup{
		Carrier:        req.Carrier,
		PickupDate:     date.UTC(),
		PickupTimeSlot: req.PickupTimeSlot,
		PickupAddress:  req.PickupAddress,
		ContactName:    req.ContactName,
		ContactPhone:   req.ContactPhone,
		Instructions:   req.Instructions,
	}

	ret, err := s.storage.SchedulePickup(r.Context(), id, pickup)
	if err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"return": ret,
		"pickup": pickup,
	})
}

func (s *Server) handleGetPickup(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid return ID")
		return
	}

	pickup, err := s.storage.GetPickup(r.Context(), id)
	if err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, pickup)
}

func (s *Server) handleAdvanceReturn(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid return ID")
		return
	}

	var req struct {
		Status repository.ReturnStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ret, err := s.storage.AdvanceReturn(r.Context(), id, req.Status)
	if err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, ret)
}
