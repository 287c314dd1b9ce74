package void_invoice

import (
	"context"

	"github.com/lotusspa/SPA-OrderService/internal/service/invoices/models"
)

type InvoicesService interface {
	Void(ctx context.Context, invoiceID int64, req *models.VoidInvoiceRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
