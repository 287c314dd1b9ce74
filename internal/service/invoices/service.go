package invoices

import (
	"context"
	"errors"
	"fmt"

	"github.com/lotusspa/SPA-OrderService/internal/domain"
	invoiceRepo "github.com/lotusspa/SPA-OrderService/internal/infra/storage/invoice"
	"github.com/lotusspa/SPA-OrderService/internal/service/invoices/models"
)

// Service handles invoice retrieval and voiding.
type Service struct {
	invoiceRepo InvoiceRepository
	logger      Logger
}

func NewService(invoiceRepo InvoiceRepository, logger Logger) *Service {
	return &Service{
		invoiceRepo: invoiceRepo,
		logger:      logger,
	}
}

// GetByID fetches an invoice by ID.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.InvoiceResponse, error) {
	s.logger.Info("GetByID: fetching invoice id=%d", id)

	inv, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, invoiceRepo.ErrInvoiceNotFound) {
			s.logger.Warn("GetByID: invoice id=%d not found", id)
			return nil, ErrInvoiceNotFound
		}
		s.logger.Error("GetByID: repository error for invoice id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainInvoice(inv), nil
}

// GetCustomerInvoices lists a customer's invoices with optional filters.
func (s *Service) GetCustomerInvoices(ctx context.Context, req *models.GetCustomerInvoicesRequest) (*models.InvoiceListResponse, error) {
	s.logger.Info("GetCustomerInvoices: fetching invoices for customer=%d, status=%v, includeVoided=%v",
		req.CustomerID, req.Status, req.IncludeVoided)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetCustomerInvoices: invalid filter for customer=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	invoices, err := s.invoiceRepo.GetByCustomerWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetCustomerInvoices: repository error for customer=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: GetCustomerInvoices - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCustomerInvoices: fetched %d invoices for customer=%d", len(invoices), req.CustomerID)
	return models.FromDomainInvoiceList(invoices), nil
}

// Void voids an invoice if its status allows it.
func (s *Service) Void(ctx context.Context, invoiceID int64, req *models.VoidInvoiceRequest) error {
	s.logger.Info("Void: voiding invoice id=%d by user=%d", invoiceID, req.UserID)

	if len(req.VoidReason) > domain.MaxVoidReasonLength {
		return fmt.Errorf("%w: void reason too long", ErrInvalidInput)
	}

	inv, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, invoiceRepo.ErrInvoiceNotFound) {
			s.logger.Warn("Void: invoice id=%d not found", invoiceID)
			return ErrInvoiceNotFound
		}
		s.logger.Error("Void: repository error for invoice id=%d: %v", invoiceID, err)
		return fmt.Errorf("%w: Void - repository error: %v", ErrInternal, err)
	}

	if !inv.CanBeVoided() {
		s.logger.Warn("Void: invoice id=%d cannot be voided, status=%s", invoiceID, inv.Status)
		return ErrCannotVoid
	}

	if err := s.invoiceRepo.Void(ctx, invoiceID, req.VoidReason); err != nil {
		if errors.Is(err, invoiceRepo.ErrInvoiceNotFound) {
			return ErrInvoiceNotFound
		}
		s.logger.Error("Void: repository error for invoice id=%d: %v", invoiceID, err)
		return fmt.Errorf("%w: Void - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Void: invoice id=%d voided", invoiceID)
	return nil
}
