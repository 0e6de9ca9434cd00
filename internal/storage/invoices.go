package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"opsboard/internal/repository"
)

const (
	InvoiceStatusDraft         = "draft"
	InvoiceStatusSent          = "sent"
	InvoiceStatusPartiallyPaid = "partially_paid"
	InvoiceStatusPaid          = "paid"
	InvoiceStatusOverdue       = "overdue"
	InvoiceStatusCancelled     = "cancelled"

	CreditNoteStatusOpen          = "open"
	CreditNoteStatusPartiallyUsed = "partially_used"
	CreditNoteStatusFullyUsed     = "fully_used"
)

func (s *PostgresStorage) CreateInvoice(ctx context.Context, inv *repository.Invoice) error {
	if inv.InvoiceNumber == "" {
		return fmt.Errorf("invoice number is required: %w", ErrInvalidInput)
	}
	if _, err := s.customers.GetByID(ctx, inv.CustomerID); err != nil {
		return fmt.Errorf("customer %d: %w", inv.CustomerID, err)
	}
	if inv.DueDate.Before(inv.IssueDate) {
		return fmt.Errorf("due date precedes issue date: %w", ErrInvalidInput)
	}

	if inv.ExchangeRate.IsZero() {
		inv.ExchangeRate = decimal.NewFromInt(1)
	}
	inv.TotalAmount = inv.Subtotal.
		Add(inv.TaxAmount).
		Add(inv.ShippingAmount).
		Sub(inv.DiscountAmount)
	inv.BalanceDue = inv.TotalAmount.Sub(inv.PaidAmount)
	if inv.Status == "" {
		inv.Status = InvoiceStatusDraft
	}
	inv.CreatedAt = time.Now().UTC()

	if err := s.invoices.Create(ctx, inv); err != nil {
		return fmt.Errorf("failed to create invoice: %w", err)
	}
	zap.S().Infow("invoice created", "invoice_id", inv.ID, "invoice_number", inv.InvoiceNumber)
	return nil
}

func (s *PostgresStorage) GetInvoice(ctx context.Context, id int64) (*repository.Invoice, error) {
	return s.invoices.GetByID(ctx, id)
}

func (s *PostgresStorage) ListInvoices(ctx context.Context, status string, customerID int64) ([]repository.Invoice, error) {
	return s.invoices.List(ctx, status, customerID)
}

func (s *PostgresStorage) UpdateInvoiceStatus(ctx context.Context, id int64, status string) error {
	switch status {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusOverdue, InvoiceStatusCancelled:
	default:
		return fmt.Errorf("status %q cannot be set directly: %w", status, ErrInvalidInput)
	}
	return s.invoices.UpdateStatus(ctx, id, status)
}

// RecordPayment applies a payment against an invoice. The invoice flips to
// paid when the balance reaches zero, partially_paid otherwise.
func (s *PostgresStorage) RecordPayment(ctx context.Context, id int64, amount decimal.Decimal) (*repository.Invoice, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("payment amount must be positive: %w", ErrInvalidInput)
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	inv, err := s.invoices.GetByIDTx(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if inv.Status == InvoiceStatusPaid || inv.Status == InvoiceStatusCancelled {
		return nil, fmt.Errorf("invoice %s is %s: %w", inv.InvoiceNumber, inv.Status, ErrInvalidInput)
	}
	if amount.GreaterThan(inv.BalanceDue) {
		return nil, fmt.Errorf("payment exceeds balance due: %w", ErrInvalidInput)
	}

	newPaid := inv.PaidAmount.Add(amount)
	newBalance := inv.TotalAmount.Sub(newPaid)
	status := InvoiceStatusPartiallyPaid
	var paidAt *time.Time
	if newBalance.IsZero() {
		status = InvoiceStatusPaid
		now := time.Now().UTC()
		paidAt = &now
	}

	if err := s.invoices.RecordPaymentTx(ctx, tx, id, amount, status, paidAt); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit payment: %w", err)
	}

	inv.PaidAmount = newPaid
	inv.BalanceDue = newBalance
	inv.Status = status
	inv.PaymentDate = paidAt
	zap.S().Infow("payment recorded", "invoice_id", inv.ID, "amount", amount)
	return inv, nil
}

func (s *PostgresStorage) CreateCreditNote(ctx context.Context, cn *repository.CreditNote) error {
	if cn.CreditNoteNumber == "" {
		return fmt.Errorf("credit note number is required: %w", ErrInvalidInput)
	}
	if !cn.Amount.IsPositive() {
		return fmt.Errorf("credit note amount must be positive: %w", ErrInvalidInput)
	}
	if _, err := s.customers.GetByID(ctx, cn.CustomerID); err != nil {
		return fmt.Errorf("customer %d: %w", cn.CustomerID, err)
	}

	cn.AppliedAmount = decimal.Zero
	cn.Balance = cn.Amount
	cn.Status = CreditNoteStatusOpen
	cn.CreatedAt = time.Now().UTC()

	if err := s.creditNotes.Create(ctx, cn); err != nil {
		return fmt.Errorf("failed to create credit note: %w", err)
	}
	zap.S().Infow("credit note created", "credit_note_id", cn.ID, "number", cn.CreditNoteNumber)
	return nil
}

func (s *PostgresStorage) GetCreditNote(ctx context.Context, id int64) (*repository.CreditNote, error) {
	return s.creditNotes.GetByID(ctx, id)
}

func (s *PostgresStorage) ListCreditNotes(ctx context.Context, customerID int64) ([]repository.CreditNote, error) {
	return s.creditNotes.List(ctx, customerID)
}

// ApplyCreditNote draws a credit note down against one of the same
// customer's invoices, in one transaction.
func (s *PostgresStorage) ApplyCreditNote(ctx context.Context, noteID, invoiceID int64, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("applied amount must be positive: %w", ErrInvalidInput)
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	cn, err := s.creditNotes.GetByIDTx(ctx, tx, noteID)
	if err != nil {
		return err
	}
	inv, err := s.invoices.GetByIDTx(ctx, tx, invoiceID)
	if err != nil {
		return err
	}
	if cn.CustomerID != inv.CustomerID {
		return fmt.Errorf("credit note and invoice belong to different customers: %w", ErrInvalidInput)
	}
	if amount.GreaterThan(cn.Balance) {
		return fmt.Errorf("applied amount exceeds credit balance: %w", ErrInvalidInput)
	}
	if amount.GreaterThan(inv.BalanceDue) {
		return fmt.Errorf("applied amount exceeds invoice balance: %w", ErrInvalidInput)
	}

	noteStatus := CreditNoteStatusPartiallyUsed
	if cn.Balance.Sub(amount).IsZero() {
		noteStatus = CreditNoteStatusFullyUsed
	}
	if err := s.creditNotes.ApplyTx(ctx, tx, noteID, amount, noteStatus); err != nil {
		return err
	}

	invStatus := InvoiceStatusPartiallyPaid
	var paidAt *time.Time
	if inv.BalanceDue.Sub(amount).IsZero() {
		invStatus = InvoiceStatusPaid
		now := time.Now().UTC()
		paidAt = &now
	}
	if err := s.invoices.RecordPaymentTx(ctx, tx, invoiceID, amount, invStatus, paidAt); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit credit note application: %w", err)
	}
	zap.S().Infow("credit note applied",
		"credit_note_id", noteID, "invoice_id", invoiceID, "amount", amount)
	return nil
}
