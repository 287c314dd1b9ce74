package invoice

import "errors"

var (
	// ErrInvoiceNotFound is returned when the invoice does not exist.
	ErrInvoiceNotFound = errors.New("invoice.repository: invoice not found")

	// ErrBuildQuery is returned when a SQL query cannot be built.
	ErrBuildQuery = errors.New("invoice.repository: failed to build query")

	// ErrExecQuery is returned when a SQL query fails to execute.
	ErrExecQuery = errors.New("invoice.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned.
	ErrScanRow = errors.New("invoice.repository: failed to scan row")
)
