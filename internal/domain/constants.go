package domain

// Default configuration values
const (
	// DefaultTaxRateBps is the VAT rate applied to the post-discount amount,
	// in basis points (800 = 8%).
	DefaultTaxRateBps = 800
)

// Business validation constants
const (
	MinQuantity             = 1
	MaxQuantity             = 100
	MaxLineItems            = 50
	MaxNotesLength          = 500
	MaxDiscountReasonLength = 500
	MaxVoidReasonLength     = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// VoidableStatuses lists the statuses from which an invoice may be voided.
var VoidableStatuses = []InvoiceStatus{
	StatusIssued,
}
