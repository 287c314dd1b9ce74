package quote_order

import (
	"context"
	"fmt"

	"github.com/lotusspa/SPA-OrderService/internal/pricing"
)

// UseCase computes an order totals preview without persisting anything.
// It runs the same engine as invoice creation, so the preview a screen
// renders always matches what submission would store.
type UseCase struct {
	taxPolicy pricing.TaxPolicy
	logger    Logger
}

func NewUseCase(taxPolicy pricing.TaxPolicy, logger Logger) *UseCase {
	return &UseCase{
		taxPolicy: taxPolicy,
		logger:    logger,
	}
}

// Execute validates the request and computes totals.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("QuoteOrder: items=%d, discount=%d", len(req.Items), req.DiscountAmount)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("QuoteOrder: validation failed: %v", err)
		return nil, err
	}

	items := make([]pricing.LineItem, len(req.Items))
	for i, in := range req.Items {
		items[i] = pricing.LineItem{
			ItemType:     in.ItemType,
			ItemID:       in.ItemID,
			ItemName:     in.ItemName,
			Quantity:     in.Quantity,
			UnitPrice:    in.UnitPrice,
			ItemDiscount: in.ItemDiscount,
		}
	}

	discount := pricing.OrderDiscount{
		Mode:   pricing.DiscountModeAmount,
		Amount: req.DiscountAmount,
		Reason: req.DiscountReason,
	}

	totals, err := pricing.ComputeTotals(items, discount, uc.taxPolicy)
	if err != nil {
		// Structural errors are filtered out by validateRequest, so any
		// engine error here is unexpected.
		uc.logger.Error("QuoteOrder: compute totals failed: %v", err)
		return nil, fmt.Errorf("%w: compute totals: %v", ErrInternal, err)
	}

	uc.logger.Info("QuoteOrder: subtotal=%d, discount=%d, tax=%d, total=%d",
		totals.Subtotal, totals.DiscountTotal, totals.TaxAmount, totals.GrandTotal)

	return &Response{Totals: totals}, nil
}
