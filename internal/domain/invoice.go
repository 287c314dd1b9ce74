package domain

import "time"

// InvoiceStatus represents the lifecycle state of an invoice
type InvoiceStatus string

const (
	StatusIssued InvoiceStatus = "issued"
	StatusPaid   InvoiceStatus = "paid"
	StatusVoided InvoiceStatus = "voided"
)

// ItemType classifies a purchased unit. It is informational only and has
// no effect on pricing arithmetic.
type ItemType string

const (
	ItemTypeService ItemType = "service"
	ItemTypeProduct ItemType = "product"
	ItemTypePackage ItemType = "package"
)

// IsValid reports whether t is a known item type.
func (t ItemType) IsValid() bool {
	switch t {
	case ItemTypeService, ItemTypeProduct, ItemTypePackage:
		return true
	default:
		return false
	}
}

// Invoice represents a billed order in the system.
// Monetary fields are integer minor units (whole VND).
type Invoice struct {
	ID              int64
	CustomerID      int64
	CreatedByUserID int64
	Status          InvoiceStatus

	// Totals as produced by the pricing engine at creation time
	Subtotal       int64
	DiscountTotal  int64
	TaxAmount      int64
	GrandTotal     int64
	DiscountReason *string

	Items []InvoiceItem
	Notes *string

	VoidReason *string
	VoidedAt   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanBeVoided returns true if the invoice may still be voided.
func (i *Invoice) CanBeVoided() bool {
	for _, s := range VoidableStatuses {
		if i.Status == s {
			return true
		}
	}
	return false
}

// IsVoided returns true if the invoice has been voided.
func (i *Invoice) IsVoided() bool {
	return i.Status == StatusVoided
}

// InvoiceItem is one purchased unit within an invoice.
// Name and price are denormalized from the catalog at creation time so the
// invoice stays stable when the catalog changes.
type InvoiceItem struct {
	ID           int64
	InvoiceID    int64
	ItemType     ItemType
	ItemID       int64
	ItemName     string
	Quantity     int
	UnitPrice    int64
	ItemDiscount int64
}

// LineTotal returns the item's contribution to the subtotal. The item
// discount never drives the line below zero.
func (it *InvoiceItem) LineTotal() int64 {
	gross := it.UnitPrice * int64(it.Quantity)
	if it.ItemDiscount >= gross {
		return 0
	}
	return gross - it.ItemDiscount
}

// CustomerInvoicesFilter narrows invoice listings for a customer.
type CustomerInvoicesFilter struct {
	CustomerID    int64
	Status        *InvoiceStatus // optional
	StartDate     *time.Time     // optional, inclusive
	EndDate       *time.Time     // optional, inclusive
	IncludeVoided bool
}
