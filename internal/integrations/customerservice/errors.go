package customerservice

import "errors"

var (
	// ErrCustomerNotFound is returned when the CRM has no such customer.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrInternal is returned for client-side failures.
	ErrInternal = errors.New("customerservice client: internal error")

	// ErrInvalidResponse is returned for malformed CRM responses.
	ErrInvalidResponse = errors.New("customerservice client: invalid response")
)
