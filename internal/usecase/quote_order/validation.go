package quote_order

import (
	"fmt"

	"github.com/lotusspa/SPA-OrderService/internal/domain"
)

// validateRequest checks the boundary constraints before the pricing
// engine is invoked. Over-entered discounts are not rejected here: the
// engine clamps them, which is the desired behaviour while a user is
// still typing.
func validateRequest(req *Request) error {
	if len(req.Items) > domain.MaxLineItems {
		return fmt.Errorf("%w: at most %d items per order", ErrInvalidInput, domain.MaxLineItems)
	}

	for i, item := range req.Items {
		if !item.ItemType.IsValid() {
			return fmt.Errorf("%w: item %d: unknown item type %q", ErrInvalidInput, i, item.ItemType)
		}
		if item.Quantity < domain.MinQuantity || item.Quantity > domain.MaxQuantity {
			return fmt.Errorf("%w: item %d: quantity must be between %d and %d",
				ErrInvalidInput, i, domain.MinQuantity, domain.MaxQuantity)
		}
		if item.UnitPrice < 0 {
			return fmt.Errorf("%w: item %d: unit price must not be negative", ErrInvalidInput, i)
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

	return nil
}
