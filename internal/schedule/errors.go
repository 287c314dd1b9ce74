package schedule

import "errors"

var (
	// ErrDateInPast is returned when slots are requested for a date before
	// today. The caller is expected to surface this, not to treat it as an
	// empty result.
	ErrDateInPast = errors.New("schedule: requested date is in the past")

	// ErrInvalidDate is returned for a zero target date.
	ErrInvalidDate = errors.New("schedule: invalid date")
)
