package invoices

import (
	"context"

	"github.com/lotusspa/SPA-OrderService/internal/domain"
)

// InvoiceRepository is the persistence surface the service needs.
type InvoiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Invoice, error)
	GetByCustomerWithFilter(ctx context.Context, filter domain.CustomerInvoicesFilter) ([]*domain.Invoice, error)
	Void(ctx context.Context, id int64, reason string) error
}

// Logger is the logging interface required by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
