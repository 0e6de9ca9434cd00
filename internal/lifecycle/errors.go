package lifecycle

import "errors"

var (
	ErrUnknownStatus = errors.New("unknown lifecycle status")

	ErrTerminalStatus = errors.New("record is in a terminal status")

	// ErrNotSuccessor rejects stage skipping: the requested target is not
	// the immediate successor of the record's derived stage.
	ErrNotSuccessor = errors.New("target is not the next stage")

	// ErrStageMismatch means the stored status and the stage derived from
	// the stamped timestamps disagree. The record needs operator attention;
	// neither source is trusted over the other.
	ErrStageMismatch = errors.New("status disagrees with stamped timestamps")

	// ErrTimestampOrder means the stamped timestamps themselves are broken:
	// a later stage stamped while an earlier one is missing, or stamps that
	// run backwards in time.
	ErrTimestampOrder = errors.New("stage timestamps violate stage order")
)
