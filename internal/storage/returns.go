package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"opsboard/internal/lifecycle"
	"opsboard/internal/metrics"
	"opsboard/internal/repository"
)

type ReturnStats struct {
	Total    int                             `json:"total"`
	ByStatus map[repository.ReturnStatus]int `json:"by_status"`
}

func (s *PostgresStorage) CreateReturn(ctx context.Context, ret *repository.Return) error {
	if ret.ReturnNumber == "" {
		return fmt.Errorf("return number is required: %w", ErrInvalidInput)
	}
	if !repository.ValidReturnType(ret.ReturnType) {
		return fmt.Errorf("unknown return type %q: %w", ret.ReturnType, ErrInvalidInput)
	}
	if _, err := s.orders.GetByID(ctx, ret.OrderID); err != nil {
		return fmt.Errorf("order %d: %w", ret.OrderID, err)
	}
	// A store-credit refund later mints a credit note against this
	// customer, so a bogus id has to be refused here, not at refund time.
	if _, err := s.customers.GetByID(ctx, ret.CustomerID); err != nil {
		return fmt.Errorf("customer %d: %w", ret.CustomerID, err)
	}

	ret.Status = repository.ReturnStatusRequested
	ret.CreatedAt = time.Now().UTC()

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := s.returns.CreateTx(ctx, tx, ret); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("create_return").Inc()
		return fmt.Errorf("failed to create return: %w", err)
	}
	if err := s.enqueueChange(ctx, tx, "returns", ret.ID, repository.ChangeActionInsert, ret); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit return creation: %w", err)
	}

	metrics.ReturnsCreatedTotal.Inc()
	zap.S().Infow("return created", "return_id", ret.ID, "return_number", ret.ReturnNumber)
	return nil
}

func (s *PostgresStorage) GetReturn(ctx context.Context, id int64) (*repository.Return, error) {
	ret, err := s.returns.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := lifecycle.CheckReturnIntegrity(ret); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("return_integrity").Inc()
		return nil, err
	}
	return ret, nil
}

func (s *PostgresStorage) ListReturns(ctx context.Context, status repository.ReturnStatus, search string) ([]*repository.Return, error) {
	return s.returns.List(ctx, status, search)
}

func (s *PostgresStorage) GetReturnStats(ctx context.Context) (*ReturnStats, error) {
	counts, err := s.returns.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	stats := &ReturnStats{ByStatus: counts}
	for _, n := range counts {
		stats.Total += n
	}
	return stats, nil
}

func (s *PostgresStorage) ApproveReturn(ctx context.Context, id int64) (*repository.Return, error) {
	return s.decideReturn(ctx, id, repository.ReturnStatusApproved)
}

func (s *PostgresStorage) RejectReturn(ctx context.Context, id int64) (*repository.Return, error) {
	return s.decideReturn(ctx, id, repository.ReturnStatusRejected)
}

// decideReturn applies the approve/reject decision. Both moves are legal
// only while the return still sits at "requested".
func (s *PostgresStorage) decideReturn(ctx context.Context, id int64, decision repository.ReturnStatus) (*repository.Return, error) {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	ret, err := s.returns.GetByIDTx(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	var validate func(*repository.Return) error
	if decision == repository.ReturnStatusApproved {
		validate = lifecycle.ValidateApprove
	} else {
		validate = lifecycle.ValidateReject
	}
	if err := validate(ret); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("decide_return").Inc()
		return nil, err
	}

	if err := s.returns.SetDecisionTx(ctx, tx, id, decision); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("decide_return").Inc()
		return nil, err
	}
	ret.Status = decision
	if err := s.enqueueChange(ctx, tx, "returns", ret.ID, repository.ChangeActionUpdate, ret); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit return decision: %w", err)
	}

	metrics.ReturnsAdvancedTotal.WithLabelValues(string(decision)).Inc()
	zap.S().Infow("return decided", "return_id", ret.ID, "decision", decision)
	return ret, nil
}

// SchedulePickup moves an approved return to picked_up and records the
// reverse pickup, atomically. A commit failure is reported as
// ErrPickupPartialState so callers know neither write is guaranteed.
func (s *PostgresStorage) SchedulePickup(ctx context.Context, returnID int64, pickup *repository.ReversePickup) (*repository.Return, error) {
	if !repository.ValidCarrier(pickup.Carrier) {
		return nil, fmt.Errorf("unknown carrier %q: %w", pickup.Carrier, ErrInvalidInput)
	}
	if !repository.ValidPickupTimeSlot(pickup.PickupTimeSlot) {
		return nil, fmt.Errorf("unknown pickup time slot %q: %w", pickup.PickupTimeSlot, ErrInvalidInput)
	}
	if pickup.PickupDate.IsZero() {
		return nil, fmt.Errorf("pickup date is required: %w", ErrInvalidInput)
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	ret, err := s.returns.GetByIDTx(ctx, tx, returnID)
	if err != nil {
		return nil, err
	}
	if err := lifecycle.ValidateSchedulePickup(ret); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("schedule_pickup").Inc()
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.returns.MarkPickedUpTx(ctx, tx, returnID, pickup.Carrier, pickup.PickupDate, now); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("schedule_pickup").Inc()
		return nil, err
	}

	pickup.ReturnID = returnID
	pickup.CreatedAt = now
	if err := s.pickups.CreateTx(ctx, tx, pickup); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("schedule_pickup").Inc()
		return nil, fmt.Errorf("failed to create reverse pickup: %w", err)
	}

	ret.Status = repository.ReturnStatusPickedUp
	ret.Carrier = &pickup.Carrier
	scheduled := pickup.PickupDate.UTC()
	ret.PickupScheduledAt = &scheduled
	ret.PickedUpAt = &now

	if err := s.enqueueChange(ctx, tx, "returns", ret.ID, repository.ChangeActionUpdate, ret); err != nil {
		return nil, err
	}
	if err := s.enqueueChange(ctx, tx, "reverse_pickups", pickup.ID, repository.ChangeActionInsert, pickup); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("schedule_pickup").Inc()
		return nil, fmt.Errorf("%w: %v", ErrPickupPartialState, err)
	}

	metrics.PickupsScheduledTotal.Inc()
	zap.S().Infow("pickup scheduled",
		"return_id", ret.ID, "carrier", pickup.Carrier, "pickup_date", pickup.PickupDate)
	return ret, nil
}

func (s *PostgresStorage) GetPickup(ctx context.Context, returnID int64) (*repository.ReversePickup, error) {
	return s.pickups.GetByReturnID(ctx, returnID)
}

// AdvanceReturn handles the post-pickup chain
// picked_up -> received -> inspected -> refunded -> completed.
func (s *PostgresStorage) AdvanceReturn(ctx context.Context, id int64, target repository.ReturnStatus) (*repository.Return, error) {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	ret, err := s.returns.GetByIDTx(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if err := lifecycle.ValidateReturnAdvance(ret, target); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("advance_return").Inc()
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.returns.AdvanceTx(ctx, tx, id, ret.Status, target, now); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("advance_return").Inc()
		return nil, err
	}
	if err := lifecycle.ApplyReturnAdvance(ret, target, now); err != nil {
		return nil, err
	}

	// A store-credit refund mints the customer's credit note in the same
	// transaction, so the balance exists exactly when the refund does.
	if target == repository.ReturnStatusRefunded && ret.ReturnType == repository.ReturnTypeStoreCredit {
		cn := &repository.CreditNote{
			CreditNoteNumber: "CN-" + ret.ReturnNumber,
			CustomerID:       ret.CustomerID,
			IssueDate:        now,
			Reason:           "store credit for return " + ret.ReturnNumber,
			CurrencyCode:     "INR",
			Amount:           ret.RefundAmount,
			AppliedAmount:    decimal.Zero,
			Balance:          ret.RefundAmount,
			Status:           CreditNoteStatusOpen,
		}
		if err := s.creditNotes.CreateTx(ctx, tx, cn); err != nil {
			metrics.OperationErrorsTotal.WithLabelValues("advance_return").Inc()
			return nil, err
		}
	}

	if err := s.enqueueChange(ctx, tx, "returns", ret.ID, repository.ChangeActionUpdate, ret); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit return advance: %w", err)
	}

	metrics.ReturnsAdvancedTotal.WithLabelValues(string(target)).Inc()
	zap.S().Infow("return advanced", "return_id", ret.ID, "to", target)
	return ret, nil
}
