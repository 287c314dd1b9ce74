package invoices

import "errors"

var (
	// ErrInvoiceNotFound is returned when the invoice does not exist.
	ErrInvoiceNotFound = errors.New("invoices.service: invoice not found")

	// ErrCannotVoid is returned when the invoice is not in a voidable state.
	ErrCannotVoid = errors.New("invoices.service: invoice cannot be voided")

	// ErrInvalidInput is returned for structurally invalid requests.
	ErrInvalidInput = errors.New("invoices.service: invalid input")

	// ErrInternal is returned for internal service errors.
	ErrInternal = errors.New("invoices.service: internal error")
)
