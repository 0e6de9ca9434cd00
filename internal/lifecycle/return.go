package lifecycle

import (
	"fmt"
	"time"

	"opsboard/internal/repository"
)

// returnStages is the happy path; "rejected" sits outside the sequence and
// is reachable only from "requested".
var returnStages = []repository.ReturnStatus{
	repository.ReturnStatusRequested,
	repository.ReturnStatusApproved,
	repository.ReturnStatusPickedUp,
	repository.ReturnStatusReceived,
	repository.ReturnStatusInspected,
	repository.ReturnStatusRefunded,
	repository.ReturnStatusCompleted,
}

// returnStageStamps maps stages 2..6. The first two stages and rejection
// carry no timestamp of their own; SchedulePickup writes both pickup
// stamps when the return enters "picked_up", and picked_up_at backfills
// rows that never got a scheduled date.
func returnStageStamps(r *repository.Return) []*time.Time {
	pickedUp := r.PickupScheduledAt
	if pickedUp == nil {
		pickedUp = r.PickedUpAt
	}
	return []*time.Time{pickedUp, r.ReceivedAt, r.InspectedAt, r.RefundedAt, r.CompletedAt}
}

// ReturnStage derives the current stage index. Timestamps win where they
// exist (stages picked_up and later); below that the stored status decides
// between requested and approved, which are not timestamped.
func ReturnStage(r *repository.Return) int {
	stamps := returnStageStamps(r)
	for i := len(stamps) - 1; i >= 0; i-- {
		if stamps[i] != nil {
			return i + 2
		}
	}
	if r.Status == repository.ReturnStatusApproved {
		return 1
	}
	return 0
}

func ReturnStatusAt(stage int) repository.ReturnStatus {
	return returnStages[stage]
}

func returnStatusIndex(status repository.ReturnStatus) (int, bool) {
	for i, s := range returnStages {
		if s == status {
			return i, true
		}
	}
	return 0, false
}

// ValidateApprove permits approved only from a pristine requested return.
func ValidateApprove(r *repository.Return) error {
	return validateDecision(r)
}

// ValidateReject permits the terminal rejection only from requested.
func ValidateReject(r *repository.Return) error {
	return validateDecision(r)
}

func validateDecision(r *repository.Return) error {
	if r.Status == repository.ReturnStatusRejected {
		return fmt.Errorf("return %s is rejected: %w", r.ReturnNumber, ErrTerminalStatus)
	}
	if r.Status != repository.ReturnStatusRequested {
		return fmt.Errorf("return %s at %q, decisions allowed only at %q: %w",
			r.ReturnNumber, r.Status, repository.ReturnStatusRequested, ErrNotSuccessor)
	}
	return CheckReturnIntegrity(r)
}

// ValidateSchedulePickup gates the one two-record operation: a reverse
// pickup may be created only while the return sits at approved with no
// pickup stamped yet.
func ValidateSchedulePickup(r *repository.Return) error {
	if r.Status == repository.ReturnStatusRejected {
		return fmt.Errorf("return %s is rejected: %w", r.ReturnNumber, ErrTerminalStatus)
	}
	if r.Status != repository.ReturnStatusApproved {
		return fmt.Errorf("return %s at %q, pickup requires %q: %w",
			r.ReturnNumber, r.Status, repository.ReturnStatusApproved, ErrNotSuccessor)
	}
	return CheckReturnIntegrity(r)
}

// NextReturnStatus reports the advance target for returns already picked
// up. Below picked_up the next step is a decision or a pickup, not an
// advance, so ok is false there too.
func NextReturnStatus(r *repository.Return) (repository.ReturnStatus, bool) {
	stage := ReturnStage(r)
	if stage < 2 || stage >= len(returnStages)-1 {
		return "", false
	}
	return returnStages[stage+1], true
}

// ValidateReturnAdvance checks a single-step advance on the post-pickup
// path picked_up -> received -> inspected -> refunded -> completed.
func ValidateReturnAdvance(r *repository.Return, target repository.ReturnStatus) error {
	if r.Status == repository.ReturnStatusRejected {
		return fmt.Errorf("return %s is rejected: %w", r.ReturnNumber, ErrTerminalStatus)
	}
	idx, ok := returnStatusIndex(target)
	if !ok || idx < 3 {
		return fmt.Errorf("%q: %w", target, ErrUnknownStatus)
	}
	if err := CheckReturnIntegrity(r); err != nil {
		return err
	}

	next, ok := NextReturnStatus(r)
	if !ok {
		if ReturnStage(r) >= len(returnStages)-1 {
			return fmt.Errorf("return %s already completed: %w", r.ReturnNumber, ErrTerminalStatus)
		}
		return fmt.Errorf("return %s at %q cannot advance yet: %w", r.ReturnNumber, r.Status, ErrNotSuccessor)
	}
	if target != next {
		return fmt.Errorf("return %s at %q, next is %q, got %q: %w",
			r.ReturnNumber, r.Status, next, target, ErrNotSuccessor)
	}
	return nil
}

// ApplyReturnAdvance validates then stamps the return in memory; exactly
// one timestamp goes from nil to now.
func ApplyReturnAdvance(r *repository.Return, target repository.ReturnStatus, now time.Time) error {
	if err := ValidateReturnAdvance(r, target); err != nil {
		return err
	}

	ts := now.UTC()
	switch target {
	case repository.ReturnStatusReceived:
		r.ReceivedAt = &ts
	case repository.ReturnStatusInspected:
		r.InspectedAt = &ts
	case repository.ReturnStatusRefunded:
		r.RefundedAt = &ts
	case repository.ReturnStatusCompleted:
		r.CompletedAt = &ts
	}
	r.Status = target
	return nil
}

// CheckReturnIntegrity verifies stamp shape and status agreement. A
// rejected return must carry no post-decision stamps at all.
//
// The pickup slot holds the operator-chosen pickup date, which routinely
// sits in the future of the stamps written after it, so chronology is
// enforced from received onward only; the pickup slot still counts for
// the gapless-prefix check.
func CheckReturnIntegrity(r *repository.Return) error {
	stamps := returnStageStamps(r)
	if err := checkStampPrefix(stamps); err != nil {
		return fmt.Errorf("return %s: %w", r.ReturnNumber, err)
	}
	if err := checkStampChronology(stamps[1:]); err != nil {
		return fmt.Errorf("return %s: %w", r.ReturnNumber, err)
	}

	if r.Status == repository.ReturnStatusRejected {
		for _, ts := range returnStageStamps(r) {
			if ts != nil {
				return fmt.Errorf("return %s rejected but carries stage stamps: %w",
					r.ReturnNumber, ErrStageMismatch)
			}
		}
		return nil
	}

	idx, ok := returnStatusIndex(r.Status)
	if !ok {
		return fmt.Errorf("return %s status %q: %w", r.ReturnNumber, r.Status, ErrUnknownStatus)
	}
	if derived := ReturnStage(r); derived != idx {
		return fmt.Errorf("return %s status %q but stamps derive %q: %w",
			r.ReturnNumber, r.Status, returnStages[derived], ErrStageMismatch)
	}
	return nil
}
