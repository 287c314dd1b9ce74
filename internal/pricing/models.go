package pricing

import "github.com/lotusspa/SPA-OrderService/internal/domain"

// LineItem is one purchased unit as seen by the pricing engine.
// All monetary values are integer minor units (whole VND).
type LineItem struct {
	ItemType     domain.ItemType // informational, does not affect arithmetic
	ItemID       int64           // identity only
	ItemName     string          // display only
	Quantity     int             // >= 1
	UnitPrice    int64           // >= 0
	ItemDiscount int64           // >= 0, clamped to UnitPrice*Quantity
}

// DiscountMode selects how an order-level discount is expressed.
type DiscountMode string

const (
	DiscountModeAmount  DiscountMode = "amount"
	DiscountModePercent DiscountMode = "percent"
)

// OrderDiscount is a discount applied to the whole order, distinct from
// any item-level discount.
//
// The percent mode is part of the data model but no current caller sends
// it; the branch is kept live so enabling it is a payload change, not an
// engine change.
type OrderDiscount struct {
	Mode    DiscountMode
	Amount  int64   // used when Mode == DiscountModeAmount
	Percent float64 // 0..100, used when Mode == DiscountModePercent
	Reason  string  // annotation only
}

// NoDiscount is the zero order-level discount.
func NoDiscount() OrderDiscount {
	return OrderDiscount{Mode: DiscountModeAmount, Amount: 0}
}

// TaxPolicy carries the tax rate in basis points (800 = 8%), applied to
// the post-discount taxable amount.
type TaxPolicy struct {
	RateBps int
}

// DefaultTaxPolicy returns the standard VAT policy.
func DefaultTaxPolicy() TaxPolicy {
	return TaxPolicy{RateBps: domain.DefaultTaxRateBps}
}

// Totals is the immutable result of one totals calculation.
type Totals struct {
	Subtotal      int64
	DiscountTotal int64
	TaxableAmount int64
	TaxAmount     int64
	GrandTotal    int64
}
