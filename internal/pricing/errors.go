package pricing

import "errors"

var (
	// ErrInvalidQuantity is returned for a quantity below 1.
	ErrInvalidQuantity = errors.New("pricing: quantity must be at least 1")

	// ErrInvalidUnitPrice is returned for a negative unit price.
	ErrInvalidUnitPrice = errors.New("pricing: unit price must not be negative")

	// ErrInvalidItemDiscount is returned for a negative item discount.
	ErrInvalidItemDiscount = errors.New("pricing: item discount must not be negative")

	// ErrInvalidDiscountAmount is returned for a negative order discount amount.
	ErrInvalidDiscountAmount = errors.New("pricing: order discount amount must not be negative")

	// ErrInvalidDiscountPercent is returned for a percent outside [0, 100].
	ErrInvalidDiscountPercent = errors.New("pricing: order discount percent must be between 0 and 100")

	// ErrInvalidDiscountMode is returned for an unknown discount mode.
	ErrInvalidDiscountMode = errors.New("pricing: unknown order discount mode")

	// ErrInvalidTaxRate is returned for a negative tax rate.
	ErrInvalidTaxRate = errors.New("pricing: tax rate must not be negative")
)
