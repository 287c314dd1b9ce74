// Package pricing implements the order totals engine: a pure computation
// turning line items, an order-level discount and a tax policy into a
// Totals record. Both the quote preview and the invoice submission path
// go through ComputeTotals so their arithmetic cannot drift.
package pricing

import (
	"fmt"
	"math"
)

// ComputeTotals calculates order totals.
//
// The function is deterministic and side-effect free: identical inputs
// always produce identical Totals. Structurally invalid input (negative
// quantity, price or discount) is rejected with a typed error; recoverable
// over-discounts are clamped instead:
//   - an item discount exceeding the item's gross value is clamped to it,
//     so no line total goes negative;
//   - an order discount exceeding the subtotal is clamped to the subtotal,
//     so the grand total is never negative.
//
// Tax is computed on the post-discount amount and rounded half-up to the
// nearest whole currency unit.
func ComputeTotals(items []LineItem, discount OrderDiscount, policy TaxPolicy) (Totals, error) {
	if policy.RateBps < 0 {
		return Totals{}, ErrInvalidTaxRate
	}

	var subtotal int64
	for i, it := range items {
		if err := validateLineItem(it); err != nil {
			return Totals{}, fmt.Errorf("%w (item %d)", err, i)
		}
		subtotal += lineTotal(it)
	}

	discountTotal, err := resolveDiscount(discount, subtotal)
	if err != nil {
		return Totals{}, err
	}

	taxable := subtotal - discountTotal
	tax := roundBps(taxable, policy.RateBps)

	return Totals{
		Subtotal:      subtotal,
		DiscountTotal: discountTotal,
		TaxableAmount: taxable,
		TaxAmount:     tax,
		GrandTotal:    taxable + tax,
	}, nil
}

func validateLineItem(it LineItem) error {
	if it.Quantity < 1 {
		return ErrInvalidQuantity
	}
	if it.UnitPrice < 0 {
		return ErrInvalidUnitPrice
	}
	if it.ItemDiscount < 0 {
		return ErrInvalidItemDiscount
	}
	return nil
}

// lineTotal returns unitPrice*quantity - itemDiscount, clamped at zero.
func lineTotal(it LineItem) int64 {
	gross := it.UnitPrice * int64(it.Quantity)
	if it.ItemDiscount >= gross {
		return 0
	}
	return gross - it.ItemDiscount
}

// resolveDiscount turns an order-level discount into an absolute value in
// [0, subtotal].
func resolveDiscount(d OrderDiscount, subtotal int64) (int64, error) {
	switch d.Mode {
	case DiscountModeAmount, "":
		// An empty mode means "no discount expressed", same as amount 0.
		if d.Amount < 0 {
			return 0, ErrInvalidDiscountAmount
		}
		if d.Amount > subtotal {
			return subtotal, nil
		}
		return d.Amount, nil

	case DiscountModePercent:
		if d.Percent < 0 || d.Percent > 100 {
			return 0, ErrInvalidDiscountPercent
		}
		resolved := roundHalfUp(float64(subtotal) * d.Percent / 100)
		if resolved > subtotal {
			return subtotal, nil
		}
		return resolved, nil

	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDiscountMode, d.Mode)
	}
}

// roundBps applies a basis-point rate to amount with half-up rounding,
// using integer arithmetic only.
func roundBps(amount int64, rateBps int) int64 {
	if amount <= 0 || rateBps == 0 {
		return 0
	}
	return (amount*int64(rateBps) + 5000) / 10000
}

func roundHalfUp(f float64) int64 {
	return int64(math.Floor(f + 0.5))
}
