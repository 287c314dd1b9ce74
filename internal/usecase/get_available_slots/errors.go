package get_available_slots

import "errors"

var (
	// ErrInvalidInput is returned for structurally invalid requests.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrDateInPast is returned when the requested date is before today.
	ErrDateInPast = errors.New("requested date is in the past")

	// ErrInternal is returned for internal use case errors.
	ErrInternal = errors.New("usecase: internal error")
)
