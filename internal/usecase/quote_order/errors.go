package quote_order

import "errors"

var (
	// ErrInvalidInput is returned for structurally invalid requests.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for internal use case errors.
	ErrInternal = errors.New("usecase: internal error")
)
