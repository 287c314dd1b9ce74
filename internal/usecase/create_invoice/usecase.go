package create_invoice

import (
	"context"
	"errors"
	"fmt"

	"github.com/lotusspa/SPA-OrderService/internal/domain"
	customerClient "github.com/lotusspa/SPA-OrderService/internal/integrations/customerservice"
	"github.com/lotusspa/SPA-OrderService/internal/pricing"
)

// UseCase issues an invoice: it prices the requested line items from the
// catalog, computes the totals with the pricing engine and persists the
// invoice with its items in one serializable transaction.
type UseCase struct {
	invoiceRepo    InvoiceRepository
	catalogRepo    CatalogRepository
	customerClient CustomerServiceClient
	txManager      TransactionManager
	taxPolicy      pricing.TaxPolicy
	logger         Logger
}

func NewUseCase(
	invoiceRepo InvoiceRepository,
	catalogRepo CatalogRepository,
	customerClient CustomerServiceClient,
	txManager TransactionManager,
	taxPolicy pricing.TaxPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		invoiceRepo:    invoiceRepo,
		catalogRepo:    catalogRepo,
		customerClient: customerClient,
		txManager:      txManager,
		taxPolicy:      taxPolicy,
		logger:         logger,
	}
}

// Execute runs the invoice creation use case.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateInvoice: user=%d, customer=%d, items=%d, discount=%d",
		req.UserID, req.CustomerID, len(req.Items), req.DiscountAmount)

	// 1. Validate the request shape.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateInvoice: validation failed: %v", err)
		return nil, err
	}

	// 2. Verify the customer exists in the CRM.
	if _, err := uc.customerClient.GetCustomer(ctx, req.CustomerID); err != nil {
		if errors.Is(err, customerClient.ErrCustomerNotFound) {
			uc.logger.Warn("CreateInvoice: customer id=%d not found", req.CustomerID)
			return nil, ErrCustomerNotFound
		}
		uc.logger.Error("CreateInvoice: failed to get customer id=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
	}

	var result *domain.Invoice

	// 3. Price, compute and persist inside one serializable transaction so
	// catalog prices cannot change between pricing and storing.
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Resolve the catalog entries the items refer to.
		ids := make([]int64, len(req.Items))
		for i, item := range req.Items {
			ids[i] = item.ItemID
		}

		services, err := uc.catalogRepo.GetByIDs(txCtx, ids)
		if err != nil {
			uc.logger.Error("CreateInvoice: failed to load catalog entries: %v", err)
			return fmt.Errorf("%w: failed to load catalog entries: %v", ErrInternal, err)
		}

		// 3.2. Build priced line items, denormalizing catalog name and
		// price so the invoice stays stable when the catalog changes.
		lineItems := make([]pricing.LineItem, len(req.Items))
		invoiceItems := make([]domain.InvoiceItem, len(req.Items))
		for i, item := range req.Items {
			svc, ok := services[item.ItemID]
			if !ok {
				uc.logger.Warn("CreateInvoice: catalog entry id=%d not found", item.ItemID)
				return fmt.Errorf("%w: id=%d", ErrServiceNotFound, item.ItemID)
			}
			if !svc.IsActive {
				uc.logger.Warn("CreateInvoice: catalog entry id=%d is inactive", item.ItemID)
				return fmt.Errorf("%w: id=%d", ErrServiceInactive, item.ItemID)
			}

			lineItems[i] = pricing.LineItem{
				ItemType:     svc.ItemType,
				ItemID:       svc.ID,
				ItemName:     svc.Name,
				Quantity:     item.Quantity,
				UnitPrice:    svc.Price,
				ItemDiscount: item.ItemDiscount,
			}
			invoiceItems[i] = domain.InvoiceItem{
				ItemType:     svc.ItemType,
				ItemID:       svc.ID,
				ItemName:     svc.Name,
				Quantity:     item.Quantity,
				UnitPrice:    svc.Price,
				ItemDiscount: item.ItemDiscount,
			}
		}

		// 3.3. Compute totals with the shared engine.
		discount := pricing.OrderDiscount{
			Mode:   pricing.DiscountModeAmount,
			Amount: req.DiscountAmount,
			Reason: req.DiscountReason,
		}
		totals, err := pricing.ComputeTotals(lineItems, discount, uc.taxPolicy)
		if err != nil {
			uc.logger.Error("CreateInvoice: compute totals failed: %v", err)
			return fmt.Errorf("%w: compute totals: %v", ErrInternal, err)
		}

		// 3.4. Persist the invoice with its items.
		inv := &domain.Invoice{
			CustomerID:      req.CustomerID,
			CreatedByUserID: req.UserID,
			Status:          domain.StatusIssued,
			Subtotal:        totals.Subtotal,
			DiscountTotal:   totals.DiscountTotal,
			TaxAmount:       totals.TaxAmount,
			GrandTotal:      totals.GrandTotal,
			Items:           invoiceItems,
			Notes:           req.Notes,
		}
		if req.DiscountReason != "" {
			reason := req.DiscountReason
			inv.DiscountReason = &reason
		}

		created, err := uc.invoiceRepo.Create(txCtx, inv)
		if err != nil {
			uc.logger.Error("CreateInvoice: failed to persist invoice: %v", err)
			return fmt.Errorf("%w: failed to persist invoice: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateInvoice: invoice id=%d created for customer=%d, total=%d",
		result.ID, result.CustomerID, result.GrandTotal)

	return &Response{Invoice: result}, nil
}
