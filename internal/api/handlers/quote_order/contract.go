package quote_order

import (
	"context"

	quoteOrder "github.com/lotusspa/SPA-OrderService/internal/usecase/quote_order"
)

type QuoteOrderUseCase interface {
	Execute(ctx context.Context, req *quoteOrder.Request) (*quoteOrder.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
