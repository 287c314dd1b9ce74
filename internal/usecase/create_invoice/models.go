package create_invoice

import (
	"github.com/lotusspa/SPA-OrderService/internal/domain"
)

// Request carries everything needed to issue an invoice. Prices are NOT
// accepted from the caller: every line is priced from the catalog at
// creation time so a stale or tampered client cannot change amounts.
type Request struct {
	UserID     int64 // staff member issuing the invoice
	CustomerID int64

	Items          []ItemInput
	DiscountAmount int64
	DiscountReason string
	Notes          *string
}

// ItemInput references a catalog entry with a purchased quantity and an
// optional item-level discount.
type ItemInput struct {
	ItemID       int64
	Quantity     int
	ItemDiscount int64
}

// Response is the persisted invoice.
type Response struct {
	Invoice *domain.Invoice
}
