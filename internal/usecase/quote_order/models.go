package quote_order

import (
	"github.com/lotusspa/SPA-OrderService/internal/domain"
	"github.com/lotusspa/SPA-OrderService/internal/pricing"
)

// Request is a list of priced line items plus an order-level discount, as
// collected by the invoice and booking screens.
type Request struct {
	Items          []ItemInput
	DiscountAmount int64
	DiscountReason string
}

// ItemInput is one line of the order being quoted. Unlike invoice
// creation, the caller supplies the prices here: the screens quote against
// what they currently display.
type ItemInput struct {
	ItemType     domain.ItemType
	ItemID       int64
	ItemName     string
	Quantity     int
	UnitPrice    int64
	ItemDiscount int64
}

// Response is the computed totals record.
type Response struct {
	Totals pricing.Totals
}
