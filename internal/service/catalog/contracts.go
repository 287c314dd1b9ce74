package catalog

import (
	"context"

	"github.com/lotusspa/SPA-OrderService/internal/domain"
)

// CatalogRepository is the persistence surface the service needs.
type CatalogRepository interface {
	ListActive(ctx context.Context) ([]*domain.CatalogService, error)
	GetByID(ctx context.Context, id int64) (*domain.CatalogService, error)
}

// Logger is the logging interface required by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
