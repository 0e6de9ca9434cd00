package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"opsboard/internal/repository"
)

type itemRequest struct {
	Name        string          `json:"name"`
	Barcode     *string         `json:"barcode"`
	Category    *string         `json:"category"`
	Quantity    int             `json:"quantity"`
	MinQuantity *int            `json:"min_quantity"`
	Price       decimal.Decimal `json:"price"`
	Description *string         `json:"description"`
}

func (s *Server) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item := &repository.InventoryItem{
		Name:        req.Name,
		Barcode:     req.Barcode,
		Category:    req.Category,
		Quantity:    req.Quantity,
		MinQuantity: req.MinQuantity,
		Price:       req.Price,
		Description: req.Description,
	}

	if err := s.storage.CreateItem(r.Context(), item); err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, item)
}

func (s *Server) handleGetItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	item, err := s.storage.GetItem(r.Context(), id)
	if err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, item)
}

func (s *Server) handleGetItemByBarcode(w http.ResponseWriter, r *http.Request) {
	barcode := mux.Vars(r)["barcode"]

	item, err := s.storage.GetItemByBarcode(r.Context(), barcode)
	if err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, item)
}

func (s *Server) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item := &repository.InventoryItem{
		ID:          id,
		Name:        req.Name,
		Barcode:     req.Barcode,
		Category:    req.Category,
		Quantity:    req.Quantity,
		MinQuantity: req.MinQuantity,
		Price:       req.Price,
		Description: req.Description,
	}

	if err := s.storage.UpdateItem(r.Context(), item); err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, item)
}

func (s *Server) handleAdjustQuantity(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.storage.AdjustQuantity(r.Context(), id, req.Quantity); err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"id":       id,
		"quantity": req.Quantity,
	})
}

func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	if err := s.storage.DeleteItem(r.Context(), id); err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Item deleted"})
}

func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	items, err := s.storage.ListItems(r.Context())
	if err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, items)
}

func (s *Server) handleLowStock(w http.ResponseWriter, r *http.Request) {
	items, err := s.storage.LowStockItems(r.Context())
	if err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, items)
}

func (s *Server) handleInventoryStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.storage.GetInventoryStats(r.Context())
	if err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, stats)
}
