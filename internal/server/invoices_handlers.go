package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"opsboard/internal/repository"
)

func (s *Server) handleCreateInvoice(w http.ResponseWriter, r *http.Request) {
	var req struct {
		InvoiceNumber      string          `json:"invoice_number"`
		CustomerID         int64           `json:"customer_id"`
		InvoiceType        string          `json:"invoice_type"`
		IssueDate          string          `json:"issue_date"`
		DueDate            string          `json:"due_date"`
		CurrencyCode       string          `json:"currency_code"`
		ExchangeRate       decimal.Decimal `json:"exchange_rate"`
		Subtotal           decimal.Decimal `json:"subtotal"`
		TaxAmount          decimal.Decimal `json:"tax_amount"`
		DiscountAmount     decimal.Decimal `json:"discount_amount"`
		ShippingAmount     decimal.Decimal `json:"shipping_amount"`
		Notes              *string         `json:"notes"`
		TermsAndConditions *string         `json:"terms_and_conditions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	issueDate, err := time.Parse("2006-01-02", req.IssueDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid issue_date. Use YYYY-MM-DD")
		return
	}
	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid due_date. Use YYYY-MM-DD")
		return
	}

	inv := &repository.Invoice{
		InvoiceNumber:      req.InvoiceNumber,
		CustomerID:         req.CustomerID,
		InvoiceType:        req.InvoiceType,
		IssueDate:          issueDate.UTC(),
		DueDate:            dueDate.UTC(),
		CurrencyCode:       req.CurrencyCode,
		ExchangeRate:       req.ExchangeRate,
		Subtotal:           req.Subtotal,
		TaxAmount:          req.TaxAmount,
		DiscountAmount:     req.DiscountAmount,
		ShippingAmount:     req.ShippingAmount,
		Notes:              req.Notes,
		TermsAndConditions: req.TermsAndConditions,
	}

	if err := s.storage.CreateInvoice(r.Context(), inv); err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, inv)
}

func (s *Server) handleGetInvoice(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid invoice ID")
		return
	}

	inv, err := s.storage.GetInvoice(r.Context(), id)
	if err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, inv)
}

func (s *Server) handleListInvoices(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	var customerID int64
	if raw := r.URL.Query().Get("customer_id"); raw != "" {
		var err error
		customerID, err = strconv.ParseInt(raw, 10, 64)
		if err != nil || customerID <= 0 {
			respondError(w, http.StatusBadRequest, "Invalid value for 'customer_id' parameter")
			return
		}
	}

	invoices, err := s.storage.ListInvoices(r.Context(), status, customerID)
	if err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, invoices)
}

func (s *Server) handleUpdateInvoiceStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid invoice ID")
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.storage.UpdateInvoiceStatus(r.Context(), id, req.Status); err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Invoice status updated"})
}

func (s *Server) handleRecordPayment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid invoice ID")
		return
	}

	var req struct {
		Amount decimal.Decimal `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	inv, err := s.storage.RecordPayment(r.Context(), id, req.Amount)
	if err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, inv)
}

func (s *Server) handleCreateCreditNote(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CreditNoteNumber string          `json:"credit_note_number"`
		CustomerID       int64           `json:"customer_id"`
		InvoiceID        *int64          `json:"invoice_id"`
		IssueDate        string          `json:"issue_date"`
		Reason           string          `json:"reason"`
		CurrencyCode     string          `json:"currency_code"`
		Amount           decimal.Decimal `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	issueDate := time.Now().UTC()
	if req.IssueDate != "" {
		parsed, err := time.Parse("2006-01-02", req.IssueDate)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid issue_date. Use YYYY-MM-DD")
			return
		}
		issueDate = parsed.UTC()
	}

	cn := &repository.CreditNote{
		CreditNoteNumber: req.CreditNoteNumber,
		CustomerID:       req.CustomerID,
		InvoiceID:        req.InvoiceID,
		IssueDate:        issueDate,
		Reason:           req.Reason,
		CurrencyCode:     req.CurrencyCode,
		Amount:           req.Amount,
	}

	if err := s.storage.CreateCreditNote(r.Context(), cn); err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, cn)
}

func (s *Server) handleGetCreditNote(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid credit note ID")
		return
	}

	cn, err := s.storage.GetCreditNote(r.Context(), id)
	if err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, cn)
}

func (s *Server) handleListCreditNotes(w http.ResponseWriter, r *http.Request) {
	var customerID int64
	if raw := r.URL.Query().Get("customer_id"); raw != "" {
		var err error
		customerID, err = strconv.ParseInt(raw, 10, 64)
		if err != nil || customerID <= 0 {
			respondError(w, http.StatusBadRequest, "Invalid value for 'customer_id' parameter")
			return
		}
	}

	notes, err := s.storage.ListCreditNotes(r.Context(), customerID)
	if err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, notes)
}

func (s *Server) handleApplyCreditNote(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid credit note ID")
		return
	}

	var req struct {
		InvoiceID int64           `json:"invoice_id"`
		Amount    decimal.Decimal `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.storage.ApplyCreditNote(r.Context(), id, req.InvoiceID, req.Amount); err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Credit note applied"})
}
