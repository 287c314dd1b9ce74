package models

import "github.com/lotusspa/SPA-OrderService/internal/domain"

// ServiceResponse is the catalog entry DTO exposed to the booking widget
// and the admin screens.
type ServiceResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	ItemType        string `json:"itemType"`
	Price           int64  `json:"price"`
	DurationMinutes int    `json:"durationMinutes,omitempty"`
}

// ServiceListResponse wraps a list of catalog entries.
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromDomainService converts a domain catalog entry into a DTO.
func FromDomainService(svc *domain.CatalogService) *ServiceResponse {
	if svc == nil {
		return nil
	}
	return &ServiceResponse{
		ID:              svc.ID,
		Name:            svc.Name,
		ItemType:        string(svc.ItemType),
		Price:           svc.Price,
		DurationMinutes: svc.DurationMinutes,
	}
}

// FromDomainServiceList converts a list of catalog entries into a DTO.
func FromDomainServiceList(services []*domain.CatalogService) *ServiceListResponse {
	result := make([]ServiceResponse, 0, len(services))
	for _, svc := range services {
		result = append(result, *FromDomainService(svc))
	}
	return &ServiceListResponse{Services: result}
}
