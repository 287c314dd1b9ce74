package catalog

import (
	"context"
	"errors"
	"fmt"

	catalogRepo "github.com/lotusspa/SPA-OrderService/internal/infra/storage/catalog"
	"github.com/lotusspa/SPA-OrderService/internal/service/catalog/models"
)

// Service exposes the spa service catalog.
type Service struct {
	catalogRepo CatalogRepository
	logger      Logger
}

func NewService(catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// ListActive returns all active catalog entries.
func (s *Service) ListActive(ctx context.Context) (*models.ServiceListResponse, error) {
	services, err := s.catalogRepo.ListActive(ctx)
	if err != nil {
		s.logger.Error("ListActive: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListActive - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListActive: fetched %d catalog entries", len(services))
	return models.FromDomainServiceList(services), nil
}

// GetByID returns one catalog entry.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ServiceResponse, error) {
	svc, err := s.catalogRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("GetByID: catalog entry id=%d not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetByID: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainService(svc), nil
}
