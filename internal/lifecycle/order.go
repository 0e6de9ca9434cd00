// Package lifecycle holds the order and return stage machines. Both are
// fixed linear sequences: the current stage is derived from which stage
// timestamps are stamped, never from a separately maintained counter, and
// the only mutation is advancing to the immediate successor while stamping
// exactly one timestamp.
package lifecycle

import (
	"fmt"
	"time"

	"opsboard/internal/repository"
)

// orderStages is the full sequence; index 0 is the "received" baseline,
// which requires no timestamp.
var orderStages = []repository.OrderStatus{
	repository.OrderStatusReceived,
	repository.OrderStatusConfirmed,
	repository.OrderStatusPicked,
	repository.OrderStatusPacked,
	repository.OrderStatusShipped,
	repository.OrderStatusDelivered,
}

func orderStageStamps(o *repository.Order) []*time.Time {
	return []*time.Time{o.ConfirmedAt, o.PickedAt, o.PackedAt, o.ShippedAt, o.DeliveredAt}
}

// OrderStage derives the current stage index purely from the timestamp
// fields: the highest stamped stage wins. A fresh order with no stamps is at
// stage 0 ("received").
func OrderStage(o *repository.Order) int {
	stamps := orderStageStamps(o)
	for i := len(stamps) - 1; i >= 0; i-- {
		if stamps[i] != nil {
			return i + 1
		}
	}
	return 0
}

// OrderStatusAt returns the status name for a stage index.
func OrderStatusAt(stage int) repository.OrderStatus {
	return orderStages[stage]
}

func orderStatusIndex(status repository.OrderStatus) (int, bool) {
	for i, s := range orderStages {
		if s == status {
			return i, true
		}
	}
	return 0, false
}

// NextOrderStatus reports the single valid advance target for the order, or
// false when the order is at its final stage.
func NextOrderStatus(o *repository.Order) (repository.OrderStatus, bool) {
	stage := OrderStage(o)
	if stage >= len(orderStages)-1 {
		return "", false
	}
	return orderStages[stage+1], true
}

// ValidateOrderAdvance checks that target is the immediate successor of the
// order's derived stage. It also refuses to act on a record whose stored
// status and stamps disagree, so a broken row never advances further.
func ValidateOrderAdvance(o *repository.Order, target repository.OrderStatus) error {
	if o.Status == repository.OrderStatusCancelled {
		return fmt.Errorf("order %s is cancelled: %w", o.OrderNumber, ErrTerminalStatus)
	}
	if _, ok := orderStatusIndex(target); !ok || target == repository.OrderStatusReceived {
		return fmt.Errorf("%q: %w", target, ErrUnknownStatus)
	}
	if err := CheckOrderIntegrity(o); err != nil {
		return err
	}

	next, ok := NextOrderStatus(o)
	if !ok {
		return fmt.Errorf("order %s already delivered: %w", o.OrderNumber, ErrTerminalStatus)
	}
	if target != next {
		return fmt.Errorf("order %s at %q, next is %q, got %q: %w",
			o.OrderNumber, o.Status, next, target, ErrNotSuccessor)
	}
	return nil
}

// ApplyOrderAdvance validates and then stamps the order in memory: status
// moves to target and exactly one timestamp field goes from nil to now.
// Callers persist the result with a single conditional UPDATE and discard
// the stamped copy if that write fails.
func ApplyOrderAdvance(o *repository.Order, target repository.OrderStatus, now time.Time) error {
	if err := ValidateOrderAdvance(o, target); err != nil {
		return err
	}

	ts := now.UTC()
	switch target {
	case repository.OrderStatusConfirmed:
		o.ConfirmedAt = &ts
	case repository.OrderStatusPicked:
		o.PickedAt = &ts
	case repository.OrderStatusPacked:
		o.PackedAt = &ts
	case repository.OrderStatusShipped:
		o.ShippedAt = &ts
	case repository.OrderStatusDelivered:
		o.DeliveredAt = &ts
	}
	o.Status = target
	return nil
}

// CheckOrderIntegrity verifies that the stamps form a gapless, chronological
// prefix of the stage sequence and that the stored status names the same
// stage the stamps derive. Cancelled orders keep whatever stamps they had
// when cancelled, so only their stamp shape is checked.
func CheckOrderIntegrity(o *repository.Order) error {
	if err := checkStampShape(orderStageStamps(o)); err != nil {
		return fmt.Errorf("order %s: %w", o.OrderNumber, err)
	}
	if o.Status == repository.OrderStatusCancelled {
		return nil
	}

	idx, ok := orderStatusIndex(o.Status)
	if !ok {
		return fmt.Errorf("order %s status %q: %w", o.OrderNumber, o.Status, ErrUnknownStatus)
	}
	if derived := OrderStage(o); derived != idx {
		return fmt.Errorf("order %s status %q but stamps derive %q: %w",
			o.OrderNumber, o.Status, orderStages[derived], ErrStageMismatch)
	}
	return nil
}

// checkStampShape enforces the monotonic-population invariant on a stamp
// slice: no stamp may be set while an earlier one is nil, and set stamps
// must not run backwards in time.
func checkStampShape(stamps []*time.Time) error {
	if err := checkStampPrefix(stamps); err != nil {
		return err
	}
	return checkStampChronology(stamps)
}

// checkStampPrefix rejects a set stamp after a nil one: stamps populate as
// a gapless prefix.
func checkStampPrefix(stamps []*time.Time) error {
	seenNil := false
	for _, ts := range stamps {
		if ts == nil {
			seenNil = true
			continue
		}
		if seenNil {
			return ErrTimestampOrder
		}
	}
	return nil
}

// checkStampChronology rejects set stamps that run backwards in time.
func checkStampChronology(stamps []*time.Time) error {
	var prev *time.Time
	for _, ts := range stamps {
		if ts == nil {
			continue
		}
		if prev != nil && ts.Before(*prev) {
			return ErrTimestampOrder
		}
		prev = ts
	}
	return nil
}
