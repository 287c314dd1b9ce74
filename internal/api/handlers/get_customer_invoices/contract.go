package get_customer_invoices

import (
	"context"

	"github.com/lotusspa/SPA-OrderService/internal/service/invoices/models"
)

type InvoicesService interface {
	GetCustomerInvoices(ctx context.Context, req *models.GetCustomerInvoicesRequest) (*models.InvoiceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
