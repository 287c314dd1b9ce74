package create_invoice

import (
	"github.com/lotusspa/SPA-OrderService/internal/service/invoices/models"
	createInvoice "github.com/lotusspa/SPA-OrderService/internal/usecase/create_invoice"
)

// CreateInvoiceRequest is the HTTP request body. Line items carry catalog
// references only; pricing happens server-side.
type CreateInvoiceRequest struct {
	CustomerID     int64         `json:"customerId"`
	Items          []InvoiceItem `json:"items"`
	DiscountAmount int64         `json:"discountAmount"`
	DiscountReason string        `json:"discountReason,omitempty"`
	Notes          *string       `json:"notes,omitempty"`
}

// InvoiceItem references a catalog entry with quantity and item discount.
type InvoiceItem struct {
	ItemID       int64 `json:"itemId"`
	Quantity     int   `json:"quantity"`
	ItemDiscount int64 `json:"itemDiscount"`
}

// ToUseCaseRequest converts the HTTP body into the use case request.
func ToUseCaseRequest(userID int64, req *CreateInvoiceRequest) *createInvoice.Request {
	items := make([]createInvoice.ItemInput, len(req.Items))
	for i, it := range req.Items {
		items[i] = createInvoice.ItemInput{
			ItemID:       it.ItemID,
			Quantity:     it.Quantity,
			ItemDiscount: it.ItemDiscount,
		}
	}
	return &createInvoice.Request{
		UserID:         userID,
		CustomerID:     req.CustomerID,
		Items:          items,
		DiscountAmount: req.DiscountAmount,
		DiscountReason: req.DiscountReason,
		Notes:          req.Notes,
	}
}

// FromUseCaseResponse converts the use case response into the HTTP model,
// reusing the invoice DTO from the service layer.
func FromUseCaseResponse(resp *createInvoice.Response) *models.InvoiceResponse {
	return models.FromDomainInvoice(resp.Invoice)
}
