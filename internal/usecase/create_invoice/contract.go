package create_invoice

import (
	"context"

	"github.com/lotusspa/SPA-OrderService/internal/domain"
	"github.com/lotusspa/SPA-OrderService/internal/integrations/customerservice"
)

// InvoiceRepository persists invoices.
type InvoiceRepository interface {
	Create(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error)
}

// CatalogRepository resolves the priced catalog entries line items refer to.
type CatalogRepository interface {
	GetByIDs(ctx context.Context, ids []int64) (map[int64]*domain.CatalogService, error)
}

// CustomerServiceClient verifies the customer against the CRM.
type CustomerServiceClient interface {
	GetCustomer(ctx context.Context, customerID int64) (*customerservice.Customer, error)
}

// TransactionManager runs a function inside a serializable transaction.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging interface required by the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
