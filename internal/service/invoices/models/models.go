package models

import (
	"errors"
	"time"

	"github.com/lotusspa/SPA-OrderService/internal/domain"
)

var (
	// ErrInvalidStatus is returned for an unknown invoice status string.
	ErrInvalidStatus = errors.New("invalid invoice status")
)

// Request models

// VoidInvoiceRequest asks to void an invoice with a reason.
type VoidInvoiceRequest struct {
	UserID     int64  `json:"userId"`
	VoidReason string `json:"voidReason"`
}

// GetCustomerInvoicesRequest lists a customer's invoices with optional filters.
type GetCustomerInvoicesRequest struct {
	CustomerID    int64      `json:"customerId"`
	Status        *string    `json:"status,omitempty"`
	StartDate     *time.Time `json:"startDate,omitempty"`
	EndDate       *time.Time `json:"endDate,omitempty"`
	IncludeVoided bool       `json:"includeVoided,omitempty"`
}

// ToDomainFilter converts the request into a domain filter.
func (r *GetCustomerInvoicesRequest) ToDomainFilter() (domain.CustomerInvoicesFilter, error) {
	filter := domain.CustomerInvoicesFilter{
		CustomerID:    r.CustomerID,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		IncludeVoided: r.IncludeVoided,
	}

	if r.Status != nil {
		status, err := ToDomainInvoiceStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response models

// InvoiceResponse is the invoice DTO.
type InvoiceResponse struct {
	ID              int64  `json:"id"`
	CustomerID      int64  `json:"customerId"`
	CreatedByUserID int64  `json:"createdByUserId"`
	Status          string `json:"status"`

	Subtotal       int64   `json:"subtotal"`
	DiscountTotal  int64   `json:"discountAmount"`
	TaxAmount      int64   `json:"taxAmount"`
	GrandTotal     int64   `json:"totalAmount"`
	DiscountReason *string `json:"discountReason,omitempty"`

	Items []InvoiceItemResponse `json:"items"`
	Notes *string               `json:"notes,omitempty"`

	VoidReason *string `json:"voidReason,omitempty"`
	VoidedAt   *string `json:"voidedAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// InvoiceItemResponse is the invoice line item DTO.
type InvoiceItemResponse struct {
	ID           int64  `json:"id"`
	ItemType     string `json:"itemType"`
	ItemID       int64  `json:"itemId"`
	ItemName     string `json:"itemName"`
	Quantity     int    `json:"quantity"`
	UnitPrice    int64  `json:"unitPrice"`
	ItemDiscount int64  `json:"itemDiscount"`
	LineTotal    int64  `json:"lineTotal"`
}

// InvoiceListResponse wraps a list of invoices.
type InvoiceListResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
}

// Converters

// FromDomainInvoice converts a domain invoice into a DTO.
func FromDomainInvoice(inv *domain.Invoice) *InvoiceResponse {
	if inv == nil {
		return nil
	}

	items := make([]InvoiceItemResponse, len(inv.Items))
	for i := range inv.Items {
		item := &inv.Items[i]
		items[i] = InvoiceItemResponse{
			ID:           item.ID,
			ItemType:     string(item.ItemType),
			ItemID:       item.ItemID,
			ItemName:     item.ItemName,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
			ItemDiscount: item.ItemDiscount,
			LineTotal:    item.LineTotal(),
		}
	}

	resp := &InvoiceResponse{
		ID:              inv.ID,
		CustomerID:      inv.CustomerID,
		CreatedByUserID: inv.CreatedByUserID,
		Status:          string(inv.Status),
		Subtotal:        inv.Subtotal,
		DiscountTotal:   inv.DiscountTotal,
		TaxAmount:       inv.TaxAmount,
		GrandTotal:      inv.GrandTotal,
		DiscountReason:  inv.DiscountReason,
		Items:           items,
		Notes:           inv.Notes,
		VoidReason:      inv.VoidReason,
		CreatedAt:       inv.CreatedAt,
		UpdatedAt:       inv.UpdatedAt,
	}

	if inv.VoidedAt != nil {
		voidedAt := inv.VoidedAt.Format(time.RFC3339)
		resp.VoidedAt = &voidedAt
	}

	return resp
}

// FromDomainInvoiceList converts a list of domain invoices into a DTO.
func FromDomainInvoiceList(invoices []*domain.Invoice) *InvoiceListResponse {
	result := make([]InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		result = append(result, *FromDomainInvoice(inv))
	}
	return &InvoiceListResponse{Invoices: result}
}

// ToDomainInvoiceStatus parses a status string.
func ToDomainInvoiceStatus(s string) (domain.InvoiceStatus, error) {
	switch domain.InvoiceStatus(s) {
	case domain.StatusIssued, domain.StatusPaid, domain.StatusVoided:
		return domain.InvoiceStatus(s), nil
	default:
		return "", ErrInvalidStatus
	}
}
