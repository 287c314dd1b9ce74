package create_invoice

import (
	"fmt"

	"github.com/lotusspa/SPA-OrderService/internal/domain"
)

// validateRequest checks the boundary constraints of the request.
// Discount-exceeds-gross cases are deliberately not rejected: the pricing
// engine clamps them.
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if len(req.Items) == 0 {
		return fmt.Errorf("%w: at least one item is required", ErrInvalidInput)
	}
	if len(req.Items) > domain.MaxLineItems {
		return fmt.Errorf("%w: at most %d items per invoice", ErrInvalidInput, domain.MaxLineItems)
	}

	for i, item := range req.Items {
		if item.ItemID <= 0 {
			return fmt.Errorf("%w: item %d: itemID must be positive", ErrInvalidInput, i)
		}
		if item.Quantity < domain.MinQuantity || item.Quantity > domain.MaxQuantity {
			return fmt.Errorf("%w: item %d: quantity must be between %d and %d",
				ErrInvalidInput, i, domain.MinQuantity, domain.MaxQuantity)
		}
		if item.ItemDiscount < 0 {
			return fmt.Errorf("%w: item %d: item discount must not be negative", ErrInvalidInput, i)
		}
	}

	if req.DiscountAmount < 0 {
		return fmt.Errorf("%w: order discount must not be negative", ErrInvalidInput)
	}
	if len(req.DiscountReason) > domain.MaxDiscountReasonLength {
		return fmt.Errorf("%w: discount reason too long", ErrInvalidInput)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes too long", ErrInvalidInput)
	}

	return nil
}
