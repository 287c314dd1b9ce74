package quote_order

import (
	"github.com/lotusspa/SPA-OrderService/internal/domain"
	quoteOrder "github.com/lotusspa/SPA-OrderService/internal/usecase/quote_order"
)

// QuoteRequest is the HTTP request body: the lines a screen currently
// displays plus an order-level discount.
type QuoteRequest struct {
	Items          []QuoteItem `json:"items"`
	DiscountAmount int64       `json:"discountAmount"`
	DiscountReason string      `json:"discountReason,omitempty"`
}

// QuoteItem is one line of the order being quoted.
type QuoteItem struct {
	ItemType     string `json:"itemType"`
	ItemID       int64  `json:"itemId"`
	ItemName     string `json:"itemName"`
	Quantity     int    `json:"quantity"`
	UnitPrice    int64  `json:"unitPrice"`
	ItemDiscount int64  `json:"itemDiscount"`
}

// QuoteResponse mirrors the fields the invoice endpoints expect:
// subtotal, discountAmount, taxAmount, totalAmount.
type QuoteResponse struct {
	Subtotal       int64 `json:"subtotal"`
	DiscountAmount int64 `json:"discountAmount"`
	TaxableAmount  int64 `json:"taxableAmount"`
	TaxAmount      int64 `json:"taxAmount"`
	TotalAmount    int64 `json:"totalAmount"`
}

// ToUseCaseRequest converts the HTTP body into the use case request.
func ToUseCaseRequest(req *QuoteRequest) *quoteOrder.Request {
	items := make([]quoteOrder.ItemInput, len(req.Items))
	for i, it := range req.Items {
		items[i] = quoteOrder.ItemInput{
			ItemType:     domain.ItemType(it.ItemType),
			ItemID:       it.ItemID,
			ItemName:     it.ItemName,
			Quantity:     it.Quantity,
			UnitPrice:    it.UnitPrice,
			ItemDiscount: it.ItemDiscount,
		}
	}
	return &quoteOrder.Request{
		Items:          items,
		DiscountAmount: req.DiscountAmount,
		DiscountReason: req.DiscountReason,
	}
}

// FromUseCaseResponse converts the use case response into the HTTP model.
func FromUseCaseResponse(resp *quoteOrder.Response) *QuoteResponse {
	return &QuoteResponse{
		Subtotal:       resp.Totals.Subtotal,
		DiscountAmount: resp.Totals.DiscountTotal,
		TaxableAmount:  resp.Totals.TaxableAmount,
		TaxAmount:      resp.Totals.TaxAmount,
		TotalAmount:    resp.Totals.GrandTotal,
	}
}
