package storage

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsboard/internal/lifecycle"
	"opsboard/internal/repository"
)

func requestedReturn() *repository.Return {
	return &repository.Return{
		ID:           1,
		ReturnNumber: "RET-2001",
		OrderID:      1,
		CustomerID:   1,
		ReturnType:   repository.ReturnTypeRefund,
		Status:       repository.ReturnStatusRequested,
		Reason:       "damaged in transit",
		RefundAmount: decimal.NewFromInt(500),
		CreatedAt:    time.Now().UTC().Add(-time.Hour),
	}
}

func validPickup() *repository.ReversePickup {
	return &repository.ReversePickup{
		Carrier:        "bluedart",
		PickupDate:     time.Now().UTC().Add(24 * time.Hour),
		PickupTimeSlot: "9:00 AM - 12:00 PM",
		PickupAddress:  "14 MG Road, Pune",
		ContactName:    "Asha",
		ContactPhone:   "+91 98000 00000",
	}
}

func TestCreateReturn(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		orders := &stubOrderRepo{order: receivedOrder()}
		returns := &stubReturnRepo{}
		outbox := &stubOutboxRepo{}
		database := &fakeDB{}
		s := newLifecycleStorage(orders, returns, &stubPickupRepo{}, outbox, database)

		ret := requestedReturn()
		ret.ID = 0
		ret.Status = ""

		err := s.CreateReturn(ctx, ret)
		require.NoError(t, err)
		assert.Equal(t, repository.ReturnStatusRequested, ret.Status)
		assert.Len(t, outbox.tasks, 1)
	})

	t.Run("unknown return type", func(t *testing.T) {
		s := newLifecycleStorage(&stubOrderRepo{order: receivedOrder()}, &stubReturnRepo{}, &stubPickupRepo{}, &stubOutboxRepo{}, &fakeDB{})

		ret := requestedReturn()
		ret.ReturnType = "teleport"
		err := s.CreateReturn(ctx, ret)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("order must exist", func(t *testing.T) {
		s := newLifecycleStorage(&stubOrderRepo{}, &stubReturnRepo{}, &stubPickupRepo{}, &stubOutboxRepo{}, &fakeDB{})

		err := s.CreateReturn(ctx, requestedReturn())
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})

	t.Run("customer must exist", func(t *testing.T) {
		s := NewPostgresStorage(&fakeDB{}, &stubOrderRepo{order: receivedOrder()}, &stubReturnRepo{},
			&stubPickupRepo{}, nil, &stubCustomerRepo{}, nil, nil, nil, nil, nil, &stubOutboxRepo{})

		ret := requestedReturn()
		ret.CustomerID = 99
		err := s.CreateReturn(ctx, ret)
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})
}

func TestDecideReturn(t *testing.T) {
	ctx := context.Background()

	t.Run("approve from requested", func(t *testing.T) {
		returns := &stubReturnRepo{ret: requestedReturn()}
		outbox := &stubOutboxRepo{}
		s := newLifecycleStorage(&stubOrderRepo{}, returns, &stubPickupRepo{}, outbox, &fakeDB{})

		ret, err := s.ApproveReturn(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, repository.ReturnStatusApproved, ret.Status)
		assert.Equal(t, []repository.ReturnStatus{repository.ReturnStatusApproved}, returns.decisions)
		assert.Len(t, outbox.tasks, 1)
	})

	t.Run("reject from requested", func(t *testing.T) {
		returns := &stubReturnRepo{ret: requestedReturn()}
		s := newLifecycleStorage(&stubOrderRepo{}, returns, &stubPickupRepo{}, &stubOutboxRepo{}, &fakeDB{})

		ret, err := s.RejectReturn(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, repository.ReturnStatusRejected, ret.Status)
	})

	t.Run("reject after approval is refused", func(t *testing.T) {
		ret := requestedReturn()
		ret.Status = repository.ReturnStatusApproved
		returns := &stubReturnRepo{ret: ret}
		s := newLifecycleStorage(&stubOrderRepo{}, returns, &stubPickupRepo{}, &stubOutboxRepo{}, &fakeDB{})

		_, err := s.RejectReturn(ctx, 1)
		assert.ErrorIs(t, err, lifecycle.ErrNotSuccessor)
		assert.Empty(t, returns.decisions)
	})

	t.Run("rejected is terminal", func(t *testing.T) {
		ret := requestedReturn()
		ret.Status = repository.ReturnStatusRejected
		returns := &stubReturnRepo{ret: ret}
		s := newLifecycleStorage(&stubOrderRepo{}, returns, &stubPickupRepo{}, &stubOutboxRepo{}, &fakeDB{})

		_, err := s.ApproveReturn(ctx, 1)
		assert.ErrorIs(t, err, lifecycle.ErrTerminalStatus)
	})
}

func TestSchedulePickup(t *testing.T) {
	ctx := context.Background()

	approvedReturn := func() *repository.Return {
		ret := requestedReturn()
		ret.Status = repository.ReturnStatusApproved
		return ret
	}

	t.Run("schedules pickup and moves return in one transaction", func(t *testing.T) {
		returns := &stubReturnRepo{ret: approvedReturn()}
		pickups := &stubPickupRepo{}
		outbox := &stubOutboxRepo{}
		database := &fakeDB{}
		s := newLifecycleStorage(&stubOrderRepo{}, returns, pickups, outbox, database)

		ret, err := s.SchedulePickup(ctx, 1, validPickup())
		require.NoError(t, err)
		assert.Equal(t, repository.ReturnStatusPickedUp, ret.Status)
		require.NotNil(t, ret.PickupScheduledAt)
		require.NotNil(t, ret.PickedUpAt)
		assert.True(t, returns.pickedUp)
		require.NotNil(t, pickups.pickup)
		assert.Equal(t, int64(1), pickups.pickup.ReturnID)
		assert.True(t, database.tx.committed)

		// One event for the return update, one for the pickup insert.
		require.Len(t, outbox.tasks, 2)
		var first repository.ChangeEvent
		require.NoError(t, json.Unmarshal(outbox.tasks[0].Payload, &first))
		assert.Equal(t, "returns", first.Table)
	})

	t.Run("unknown carrier", func(t *testing.T) {
		s := newLifecycleStorage(&stubOrderRepo{}, &stubReturnRepo{ret: approvedReturn()}, &stubPickupRepo{}, &stubOutboxRepo{}, &fakeDB{})

		pickup := validPickup()
		pickup.Carrier = "pigeon"
		_, err := s.SchedulePickup(ctx, 1, pickup)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown time slot", func(t *testing.T) {
		s := newLifecycleStorage(&stubOrderRepo{}, &stubReturnRepo{ret: approvedReturn()}, &stubPickupRepo{}, &stubOutboxRepo{}, &fakeDB{})

		pickup := validPickup()
		pickup.PickupTimeSlot = "midnight"
		_, err := s.SchedulePickup(ctx, 1, pickup)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("requires approved status", func(t *testing.T) {
		returns := &stubReturnRepo{ret: requestedReturn()}
		s := newLifecycleStorage(&stubOrderRepo{}, returns, &stubPickupRepo{}, &stubOutboxRepo{}, &fakeDB{})

		_, err := s.SchedulePickup(ctx, 1, validPickup())
		assert.ErrorIs(t, err, lifecycle.ErrNotSuccessor)
		assert.False(t, returns.pickedUp)
	})

	t.Run("commit failure reports partial state", func(t *testing.T) {
		database := &fakeDB{tx: &fakeTx{commitErr: errors.New("connection reset")}}
		returns := &stubReturnRepo{ret: approvedReturn()}
		s := newLifecycleStorage(&stubOrderRepo{}, returns, &stubPickupRepo{}, &stubOutboxRepo{}, database)

		_, err := s.SchedulePickup(ctx, 1, validPickup())
		assert.ErrorIs(t, err, ErrPickupPartialState)
	})

	t.Run("pickup row creation failure aborts", func(t *testing.T) {
		returns := &stubReturnRepo{ret: approvedReturn()}
		pickups := &stubPickupRepo{createErr: errors.New("duplicate key")}
		database := &fakeDB{}
		s := newLifecycleStorage(&stubOrderRepo{}, returns, pickups, &stubOutboxRepo{}, database)

		_, err := s.SchedulePickup(ctx, 1, validPickup())
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrPickupPartialState)
		assert.True(t, database.tx.rolledBack)
	})
}

func TestAdvanceReturn(t *testing.T) {
	ctx := context.Background()

	pickedUpReturn := func() *repository.Return {
		now := time.Now().UTC()
		ret := requestedReturn()
		ret.Status = repository.ReturnStatusPickedUp
		ret.PickupScheduledAt = &now
		return ret
	}

	t.Run("picked_up to received", func(t *testing.T) {
		returns := &stubReturnRepo{ret: pickedUpReturn()}
		outbox := &stubOutboxRepo{}
		s := newLifecycleStorage(&stubOrderRepo{}, returns, &stubPickupRepo{}, outbox, &fakeDB{})

		ret, err := s.AdvanceReturn(ctx, 1, repository.ReturnStatusReceived)
		require.NoError(t, err)
		assert.Equal(t, repository.ReturnStatusReceived, ret.Status)
		require.NotNil(t, ret.ReceivedAt)
		assert.Len(t, outbox.tasks, 1)
	})

	t.Run("advance before the scheduled pickup date", func(t *testing.T) {
		future := time.Now().UTC().Add(48 * time.Hour)
		ret := pickedUpReturn()
		ret.PickupScheduledAt = &future
		returns := &stubReturnRepo{ret: ret}
		s := newLifecycleStorage(&stubOrderRepo{}, returns, &stubPickupRepo{}, &stubOutboxRepo{}, &fakeDB{})

		advanced, err := s.AdvanceReturn(ctx, 1, repository.ReturnStatusReceived)
		require.NoError(t, err)
		require.NotNil(t, advanced.ReceivedAt)

		// The stored row must stay readable afterwards.
		returns.ret = advanced
		got, err := s.GetReturn(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, repository.ReturnStatusReceived, got.Status)
	})

	t.Run("stage skipping rejected", func(t *testing.T) {
		returns := &stubReturnRepo{ret: pickedUpReturn()}
		s := newLifecycleStorage(&stubOrderRepo{}, returns, &stubPickupRepo{}, &stubOutboxRepo{}, &fakeDB{})

		_, err := s.AdvanceReturn(ctx, 1, repository.ReturnStatusRefunded)
		assert.ErrorIs(t, err, lifecycle.ErrNotSuccessor)
		assert.Empty(t, returns.advances)
	})

	t.Run("store-credit refund mints a credit note", func(t *testing.T) {
		now := time.Now().UTC()
		ret := pickedUpReturn()
		ret.ReturnType = repository.ReturnTypeStoreCredit
		ret.Status = repository.ReturnStatusInspected
		ret.RefundAmount = decimal.RequireFromString("750.00")
		ret.ReceivedAt = &now
		ret.InspectedAt = &now
		returns := &stubReturnRepo{ret: ret}
		creditNotes := &stubCreditNoteRepo{}
		s := NewPostgresStorage(&fakeDB{}, &stubOrderRepo{}, returns, &stubPickupRepo{},
			nil, nil, nil, nil, creditNotes, nil, nil, &stubOutboxRepo{})

		advanced, err := s.AdvanceReturn(ctx, 1, repository.ReturnStatusRefunded)
		require.NoError(t, err)
		assert.Equal(t, repository.ReturnStatusRefunded, advanced.Status)

		require.Len(t, creditNotes.notes, 1)
		note := creditNotes.notes[0]
		assert.Equal(t, "CN-"+ret.ReturnNumber, note.CreditNoteNumber)
		assert.Equal(t, ret.CustomerID, note.CustomerID)
		assert.True(t, note.Amount.Equal(ret.RefundAmount))
		assert.True(t, note.Balance.Equal(ret.RefundAmount))
		assert.Equal(t, CreditNoteStatusOpen, note.Status)
	})

	t.Run("plain refund mints nothing", func(t *testing.T) {
		now := time.Now().UTC()
		ret := pickedUpReturn()
		ret.Status = repository.ReturnStatusInspected
		ret.ReceivedAt = &now
		ret.InspectedAt = &now
		returns := &stubReturnRepo{ret: ret}
		creditNotes := &stubCreditNoteRepo{}
		s := NewPostgresStorage(&fakeDB{}, &stubOrderRepo{}, returns, &stubPickupRepo{},
			nil, nil, nil, nil, creditNotes, nil, nil, &stubOutboxRepo{})

		_, err := s.AdvanceReturn(ctx, 1, repository.ReturnStatusRefunded)
		require.NoError(t, err)
		assert.Empty(t, creditNotes.notes)
	})

	t.Run("completed is terminal", func(t *testing.T) {
		now := time.Now().UTC()
		ret := pickedUpReturn()
		ret.Status = repository.ReturnStatusCompleted
		ret.ReceivedAt = &now
		ret.InspectedAt = &now
		ret.RefundedAt = &now
		ret.CompletedAt = &now
		returns := &stubReturnRepo{ret: ret}
		s := newLifecycleStorage(&stubOrderRepo{}, returns, &stubPickupRepo{}, &stubOutboxRepo{}, &fakeDB{})

		_, err := s.AdvanceReturn(ctx, 1, repository.ReturnStatusCompleted)
		assert.ErrorIs(t, err, lifecycle.ErrTerminalStatus)
	})

	t.Run("rejected cannot advance", func(t *testing.T) {
		ret := requestedReturn()
		ret.Status = repository.ReturnStatusRejected
		returns := &stubReturnRepo{ret: ret}
		s := newLifecycleStorage(&stubOrderRepo{}, returns, &stubPickupRepo{}, &stubOutboxRepo{}, &fakeDB{})

		_, err := s.AdvanceReturn(ctx, 1, repository.ReturnStatusReceived)
		assert.ErrorIs(t, err, lifecycle.ErrTerminalStatus)
	})
}
