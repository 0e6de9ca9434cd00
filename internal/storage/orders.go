package storage

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"opsboard/internal/lifecycle"
	"opsboard/internal/metrics"
	"opsboard/internal/repository"
)

// OrderStats is the dashboard summary: one count per status plus the total.
type OrderStats struct {
	Total    int                            `json:"total"`
	ByStatus map[repository.OrderStatus]int `json:"by_status"`
}

func (s *PostgresStorage) CreateOrder(ctx context.Context, order *repository.Order) error {
	if order.OrderNumber == "" {
		return fmt.Errorf("order number is required: %w", ErrInvalidInput)
	}
	if order.CustomerName == "" {
		return fmt.Errorf("customer name is required: %w", ErrInvalidInput)
	}
	if order.Carrier != nil && !repository.ValidCarrier(*order.Carrier) {
		return fmt.Errorf("unknown carrier %q: %w", *order.Carrier, ErrInvalidInput)
	}

	now := time.Now().UTC()
	order.Status = repository.OrderStatusReceived
	if order.OrderDate.IsZero() {
		order.OrderDate = now
	}
	order.CreatedAt = now

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := s.orders.CreateTx(ctx, tx, order); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("create_order").Inc()
		return fmt.Errorf("failed to create order: %w", err)
	}
	if err := s.enqueueChange(ctx, tx, "orders", order.ID, repository.ChangeActionInsert, order); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit order creation: %w", err)
	}

	metrics.OrdersCreatedTotal.Inc()
	zap.S().Infow("order created", "order_id", order.ID, "order_number", order.OrderNumber)
	return nil
}

// GetOrder also cross-checks the stored status against the stamped
// timestamps and refuses to hand out a row the two disagree on.
func (s *PostgresStorage) GetOrder(ctx context.Context, id int64) (*repository.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := lifecycle.CheckOrderIntegrity(order); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("order_integrity").Inc()
		return nil, err
	}
	return order, nil
}

func (s *PostgresStorage) ListOrders(ctx context.Context, status repository.OrderStatus, search string) ([]*repository.Order, error) {
	return s.orders.List(ctx, status, search)
}

func (s *PostgresStorage) GetOrderStats(ctx context.Context) (*OrderStats, error) {
	counts, err := s.orders.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	stats := &OrderStats{ByStatus: counts}
	for _, n := range counts {
		stats.Total += n
	}
	return stats, nil
}

// AdvanceOrder moves an order exactly one stage forward. The row is locked,
// validated against the full lifecycle rules, advanced with a conditional
// update and published to the change feed, all in one transaction.
func (s *PostgresStorage) AdvanceOrder(ctx context.Context, id int64, target repository.OrderStatus) (*repository.Order, error) {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	order, err := s.orders.GetByIDTx(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if err := lifecycle.ValidateOrderAdvance(order, target); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("advance_order").Inc()
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.orders.AdvanceTx(ctx, tx, id, order.Status, target, now); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("advance_order").Inc()
		return nil, err
	}
	if err := lifecycle.ApplyOrderAdvance(order, target, now); err != nil {
		return nil, err
	}
	if err := s.enqueueChange(ctx, tx, "orders", order.ID, repository.ChangeActionUpdate, order); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit order advance: %w", err)
	}

	metrics.OrdersAdvancedTotal.WithLabelValues(string(target)).Inc()
	zap.S().Infow("order advanced", "order_id", order.ID, "to", target)
	return order, nil
}
