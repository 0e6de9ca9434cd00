package storage

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsboard/internal/lifecycle"
	"opsboard/internal/repository"
)

func receivedOrder() *repository.Order {
	return &repository.Order{
		ID:            1,
		OrderNumber:   "ORD-1001",
		CustomerName:  "Asha Traders",
		CustomerEmail: "asha@example.com",
		Status:        repository.OrderStatusReceived,
		TotalAmount:   decimal.NewFromInt(2450),
		OrderDate:     time.Now().UTC().Add(-time.Hour),
		CreatedAt:     time.Now().UTC().Add(-time.Hour),
	}
}

func TestCreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("success publishes insert event", func(t *testing.T) {
		orders := &stubOrderRepo{}
		outbox := &stubOutboxRepo{}
		database := &fakeDB{}
		s := newLifecycleStorage(orders, &stubReturnRepo{}, &stubPickupRepo{}, outbox, database)

		order := receivedOrder()
		order.ID = 0
		order.Status = ""

		err := s.CreateOrder(ctx, order)
		require.NoError(t, err)
		assert.Equal(t, repository.OrderStatusReceived, order.Status)
		assert.True(t, database.tx.committed)

		require.Len(t, outbox.tasks, 1)
		assert.Equal(t, ChangesTopic, outbox.tasks[0].Topic)

		var event repository.ChangeEvent
		require.NoError(t, json.Unmarshal(outbox.tasks[0].Payload, &event))
		assert.Equal(t, "orders", event.Table)
		assert.Equal(t, order.ID, event.RecordID)
		assert.Equal(t, repository.ChangeActionInsert, event.Action)
	})

	t.Run("missing order number", func(t *testing.T) {
		s := newLifecycleStorage(&stubOrderRepo{}, &stubReturnRepo{}, &stubPickupRepo{}, &stubOutboxRepo{}, &fakeDB{})

		order := receivedOrder()
		order.OrderNumber = ""
		err := s.CreateOrder(ctx, order)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown carrier", func(t *testing.T) {
		s := newLifecycleStorage(&stubOrderRepo{}, &stubReturnRepo{}, &stubPickupRepo{}, &stubOutboxRepo{}, &fakeDB{})

		order := receivedOrder()
		carrier := "pigeon"
		order.Carrier = &carrier
		err := s.CreateOrder(ctx, order)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestAdvanceOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("single step advance stamps timestamp", func(t *testing.T) {
		orders := &stubOrderRepo{order: receivedOrder()}
		outbox := &stubOutboxRepo{}
		database := &fakeDB{}
		s := newLifecycleStorage(orders, &stubReturnRepo{}, &stubPickupRepo{}, outbox, database)

		updated, err := s.AdvanceOrder(ctx, 1, repository.OrderStatusConfirmed)
		require.NoError(t, err)
		assert.Equal(t, repository.OrderStatusConfirmed, updated.Status)
		require.NotNil(t, updated.ConfirmedAt)
		assert.Nil(t, updated.PickedAt)
		assert.Equal(t, []repository.OrderStatus{repository.OrderStatusConfirmed}, orders.advances)
		assert.True(t, database.tx.committed)
		assert.Len(t, outbox.tasks, 1)
	})

	t.Run("stage skipping rejected", func(t *testing.T) {
		orders := &stubOrderRepo{order: receivedOrder()}
		database := &fakeDB{}
		s := newLifecycleStorage(orders, &stubReturnRepo{}, &stubPickupRepo{}, &stubOutboxRepo{}, database)

		_, err := s.AdvanceOrder(ctx, 1, repository.OrderStatusPicked)
		assert.ErrorIs(t, err, lifecycle.ErrNotSuccessor)
		assert.Empty(t, orders.advances)
		assert.True(t, database.tx.rolledBack)
	})

	t.Run("delivered is terminal", func(t *testing.T) {
		now := time.Now().UTC()
		order := receivedOrder()
		order.Status = repository.OrderStatusDelivered
		order.ConfirmedAt = &now
		order.PickedAt = &now
		order.PackedAt = &now
		order.ShippedAt = &now
		order.DeliveredAt = &now
		orders := &stubOrderRepo{order: order}
		s := newLifecycleStorage(orders, &stubReturnRepo{}, &stubPickupRepo{}, &stubOutboxRepo{}, &fakeDB{})

		_, err := s.AdvanceOrder(ctx, 1, repository.OrderStatusDelivered)
		assert.ErrorIs(t, err, lifecycle.ErrTerminalStatus)
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		order := receivedOrder()
		order.Status = repository.OrderStatusCancelled
		orders := &stubOrderRepo{order: order}
		s := newLifecycleStorage(orders, &stubReturnRepo{}, &stubPickupRepo{}, &stubOutboxRepo{}, &fakeDB{})

		_, err := s.AdvanceOrder(ctx, 1, repository.OrderStatusConfirmed)
		assert.ErrorIs(t, err, lifecycle.ErrTerminalStatus)
	})

	t.Run("status and stamps disagree", func(t *testing.T) {
		now := time.Now().UTC()
		order := receivedOrder()
		order.ConfirmedAt = &now // status still "received"
		orders := &stubOrderRepo{order: order}
		s := newLifecycleStorage(orders, &stubReturnRepo{}, &stubPickupRepo{}, &stubOutboxRepo{}, &fakeDB{})

		_, err := s.AdvanceOrder(ctx, 1, repository.OrderStatusConfirmed)
		assert.ErrorIs(t, err, lifecycle.ErrStageMismatch)
	})

	t.Run("concurrent advance surfaces conflict", func(t *testing.T) {
		orders := &stubOrderRepo{
			order:      receivedOrder(),
			advanceErr: repository.ErrStatusConflict,
		}
		s := newLifecycleStorage(orders, &stubReturnRepo{}, &stubPickupRepo{}, &stubOutboxRepo{}, &fakeDB{})

		_, err := s.AdvanceOrder(ctx, 1, repository.OrderStatusConfirmed)
		assert.ErrorIs(t, err, repository.ErrStatusConflict)
	})

	t.Run("order not found", func(t *testing.T) {
		s := newLifecycleStorage(&stubOrderRepo{}, &stubReturnRepo{}, &stubPickupRepo{}, &stubOutboxRepo{}, &fakeDB{})

		_, err := s.AdvanceOrder(ctx, 99, repository.OrderStatusConfirmed)
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})
}

func TestGetOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("integrity checked on read", func(t *testing.T) {
		now := time.Now().UTC()
		order := receivedOrder()
		order.Status = repository.OrderStatusPicked
		order.ConfirmedAt = &now // picked_at missing
		orders := &stubOrderRepo{order: order}
		s := newLifecycleStorage(orders, &stubReturnRepo{}, &stubPickupRepo{}, &stubOutboxRepo{}, &fakeDB{})

		_, err := s.GetOrder(ctx, 1)
		assert.ErrorIs(t, err, lifecycle.ErrStageMismatch)
	})

	t.Run("healthy order passes", func(t *testing.T) {
		orders := &stubOrderRepo{order: receivedOrder()}
		s := newLifecycleStorage(orders, &stubReturnRepo{}, &stubPickupRepo{}, &stubOutboxRepo{}, &fakeDB{})

		order, err := s.GetOrder(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "ORD-1001", order.OrderNumber)
	})
}

func TestGetOrderStats(t *testing.T) {
	orders := &stubOrderRepo{counts: map[repository.OrderStatus]int{
		repository.OrderStatusReceived: 3,
		repository.OrderStatusShipped:  2,
	}}
	s := newLifecycleStorage(orders, &stubReturnRepo{}, &stubPickupRepo{}, &stubOutboxRepo{}, &fakeDB{})

	stats, err := s.GetOrderStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 3, stats.ByStatus[repository.OrderStatusReceived])
}
