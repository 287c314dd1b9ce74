package domain

import "time"

// CatalogService represents one sellable unit in the spa catalog:
// a service, a retail product or a bundled package.
type CatalogService struct {
	ID              int64
	Name            string
	ItemType        ItemType
	Price           int64 // whole VND
	DurationMinutes int   // 0 for products
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
