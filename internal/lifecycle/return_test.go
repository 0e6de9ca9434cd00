package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsboard/internal/repository"
)

func stampedReturn(stage int) *repository.Return {
	r := &repository.Return{
		ID:           7,
		OrderID:      1,
		ReturnNumber: "RET-2001",
		Status:       ReturnStatusAt(stage),
	}
	base := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	stamps := []**time.Time{&r.PickupScheduledAt, &r.ReceivedAt, &r.InspectedAt, &r.RefundedAt, &r.CompletedAt}
	for i := 0; i+2 <= stage; i++ {
		ts := base.Add(time.Duration(i) * time.Hour)
		*stamps[i] = &ts
	}
	return r
}

func rejectedReturn() *repository.Return {
	r := stampedReturn(0)
	r.Status = repository.ReturnStatusRejected
	return r
}

func TestReturnStage(t *testing.T) {
	t.Run("requested and approved come from the status", func(t *testing.T) {
		assert.Equal(t, 0, ReturnStage(stampedReturn(0)))
		assert.Equal(t, 1, ReturnStage(stampedReturn(1)))
	})

	t.Run("stamps decide from picked_up on", func(t *testing.T) {
		for stage := 2; stage <= 6; stage++ {
			assert.Equal(t, stage, ReturnStage(stampedReturn(stage)))
		}
	})

	t.Run("picked_up_at backfills a missing pickup_scheduled_at", func(t *testing.T) {
		r := stampedReturn(2)
		r.PickedUpAt = r.PickupScheduledAt
		r.PickupScheduledAt = nil
		assert.Equal(t, 2, ReturnStage(r))
	})
}

func TestValidateDecisions(t *testing.T) {
	t.Run("requested can be approved or rejected", func(t *testing.T) {
		assert.NoError(t, ValidateApprove(stampedReturn(0)))
		assert.NoError(t, ValidateReject(stampedReturn(0)))
	})

	t.Run("no decision after approval", func(t *testing.T) {
		assert.ErrorIs(t, ValidateApprove(stampedReturn(1)), ErrNotSuccessor)
		assert.ErrorIs(t, ValidateReject(stampedReturn(1)), ErrNotSuccessor)
	})

	t.Run("no decision mid-pipeline", func(t *testing.T) {
		assert.ErrorIs(t, ValidateReject(stampedReturn(3)), ErrNotSuccessor)
	})

	t.Run("rejected is terminal", func(t *testing.T) {
		assert.ErrorIs(t, ValidateApprove(rejectedReturn()), ErrTerminalStatus)
		assert.ErrorIs(t, ValidateReject(rejectedReturn()), ErrTerminalStatus)
	})
}

func TestValidateSchedulePickup(t *testing.T) {
	t.Run("approved return may schedule a pickup", func(t *testing.T) {
		assert.NoError(t, ValidateSchedulePickup(stampedReturn(1)))
	})

	t.Run("requested return may not", func(t *testing.T) {
		assert.ErrorIs(t, ValidateSchedulePickup(stampedReturn(0)), ErrNotSuccessor)
	})

	t.Run("picked up return may not schedule again", func(t *testing.T) {
		assert.ErrorIs(t, ValidateSchedulePickup(stampedReturn(2)), ErrNotSuccessor)
	})

	t.Run("rejected is terminal", func(t *testing.T) {
		assert.ErrorIs(t, ValidateSchedulePickup(rejectedReturn()), ErrTerminalStatus)
	})
}

func TestValidateReturnAdvance(t *testing.T) {
	t.Run("post-pickup chain advances one step at a time", func(t *testing.T) {
		assert.NoError(t, ValidateReturnAdvance(stampedReturn(2), repository.ReturnStatusReceived))
		assert.NoError(t, ValidateReturnAdvance(stampedReturn(4), repository.ReturnStatusRefunded))
		assert.NoError(t, ValidateReturnAdvance(stampedReturn(5), repository.ReturnStatusCompleted))
	})

	t.Run("skipping is rejected", func(t *testing.T) {
		err := ValidateReturnAdvance(stampedReturn(2), repository.ReturnStatusRefunded)
		assert.ErrorIs(t, err, ErrNotSuccessor)
	})

	t.Run("advance below picked_up is not an advance", func(t *testing.T) {
		err := ValidateReturnAdvance(stampedReturn(0), repository.ReturnStatusReceived)
		assert.ErrorIs(t, err, ErrNotSuccessor)

		err = ValidateReturnAdvance(stampedReturn(1), repository.ReturnStatusReceived)
		assert.ErrorIs(t, err, ErrNotSuccessor)
	})

	t.Run("approved and picked_up are not advance targets", func(t *testing.T) {
		err := ValidateReturnAdvance(stampedReturn(1), repository.ReturnStatusPickedUp)
		assert.ErrorIs(t, err, ErrUnknownStatus)

		err = ValidateReturnAdvance(stampedReturn(0), repository.ReturnStatusApproved)
		assert.ErrorIs(t, err, ErrUnknownStatus)
	})

	t.Run("completed is terminal", func(t *testing.T) {
		err := ValidateReturnAdvance(stampedReturn(6), repository.ReturnStatusCompleted)
		assert.ErrorIs(t, err, ErrTerminalStatus)
	})

	t.Run("rejected is terminal", func(t *testing.T) {
		err := ValidateReturnAdvance(rejectedReturn(), repository.ReturnStatusReceived)
		assert.ErrorIs(t, err, ErrTerminalStatus)
	})
}

func TestApplyReturnAdvance(t *testing.T) {
	now := time.Date(2026, 4, 2, 15, 0, 0, 0, time.UTC)

	t.Run("stamps exactly one timestamp", func(t *testing.T) {
		r := stampedReturn(3)
		require.NoError(t, ApplyReturnAdvance(r, repository.ReturnStatusInspected, now))

		assert.Equal(t, repository.ReturnStatusInspected, r.Status)
		require.NotNil(t, r.InspectedAt)
		assert.Equal(t, now, *r.InspectedAt)
		assert.Nil(t, r.RefundedAt)
		assert.Nil(t, r.CompletedAt)
	})

	t.Run("full walk picked_up to completed", func(t *testing.T) {
		r := stampedReturn(2)
		for stage := 3; stage <= 6; stage++ {
			target := ReturnStatusAt(stage)
			require.NoError(t, ApplyReturnAdvance(r, target, now.Add(time.Duration(stage)*time.Minute)))
			assert.Equal(t, stage, ReturnStage(r))
			assert.NoError(t, CheckReturnIntegrity(r))
		}
		assert.Equal(t, repository.ReturnStatusCompleted, r.Status)
	})

	t.Run("advance before the scheduled pickup date", func(t *testing.T) {
		r := stampedReturn(2)
		future := now.Add(48 * time.Hour)
		r.PickupScheduledAt = &future

		require.NoError(t, ApplyReturnAdvance(r, repository.ReturnStatusReceived, now))
		assert.NoError(t, CheckReturnIntegrity(r))

		require.NoError(t, ApplyReturnAdvance(r, repository.ReturnStatusInspected, now.Add(time.Minute)))
		assert.NoError(t, CheckReturnIntegrity(r))
	})

	t.Run("invalid advance leaves the return untouched", func(t *testing.T) {
		r := stampedReturn(2)
		err := ApplyReturnAdvance(r, repository.ReturnStatusCompleted, now)
		assert.ErrorIs(t, err, ErrNotSuccessor)
		assert.Equal(t, repository.ReturnStatusPickedUp, r.Status)
		assert.Nil(t, r.CompletedAt)
	})
}

func TestCheckReturnIntegrity(t *testing.T) {
	t.Run("consistent records pass", func(t *testing.T) {
		for stage := 0; stage <= 6; stage++ {
			assert.NoError(t, CheckReturnIntegrity(stampedReturn(stage)))
		}
		assert.NoError(t, CheckReturnIntegrity(rejectedReturn()))
	})

	t.Run("status disagrees with stamps", func(t *testing.T) {
		r := stampedReturn(3)
		r.Status = repository.ReturnStatusApproved
		assert.ErrorIs(t, CheckReturnIntegrity(r), ErrStageMismatch)
	})

	t.Run("rejected return with stage stamps is broken", func(t *testing.T) {
		r := stampedReturn(2)
		r.Status = repository.ReturnStatusRejected
		assert.ErrorIs(t, CheckReturnIntegrity(r), ErrStageMismatch)
	})

	t.Run("gap in stamps", func(t *testing.T) {
		r := stampedReturn(2)
		ts := r.PickupScheduledAt.Add(2 * time.Hour)
		r.InspectedAt = &ts
		r.Status = repository.ReturnStatusInspected
		assert.ErrorIs(t, CheckReturnIntegrity(r), ErrTimestampOrder)
	})

	t.Run("stamps running backwards", func(t *testing.T) {
		r := stampedReturn(4)
		earlier := r.ReceivedAt.Add(-time.Hour)
		r.InspectedAt = &earlier
		assert.ErrorIs(t, CheckReturnIntegrity(r), ErrTimestampOrder)
	})

	t.Run("future pickup date does not break chronology", func(t *testing.T) {
		r := stampedReturn(3)
		future := r.ReceivedAt.Add(48 * time.Hour)
		r.PickupScheduledAt = &future
		assert.NoError(t, CheckReturnIntegrity(r))
	})
}
