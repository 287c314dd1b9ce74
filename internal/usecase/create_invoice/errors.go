package create_invoice

import "errors"

var (
	// ErrInvalidInput is returned for structurally invalid requests.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrCustomerNotFound is returned when the CRM has no such customer.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrServiceNotFound is returned when a line item references an
	// unknown catalog entry.
	ErrServiceNotFound = errors.New("catalog service not found")

	// ErrServiceInactive is returned when a line item references a
	// deactivated catalog entry.
	ErrServiceInactive = errors.New("catalog service is not active")

	// ErrInternal is returned for internal use case errors.
	ErrInternal = errors.New("usecase: internal error")
)
