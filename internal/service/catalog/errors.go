package catalog

import "errors"

var (
	// ErrServiceNotFound is returned when the catalog entry does not exist.
	ErrServiceNotFound = errors.New("catalog.service: service not found")

	// ErrInternal is returned for internal service errors.
	ErrInternal = errors.New("catalog.service: internal error")
)
