package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/lotusspa/SPA-OrderService/internal/domain"
	"github.com/lotusspa/SPA-OrderService/pkg/dbmetrics"
	"github.com/lotusspa/SPA-OrderService/pkg/psqlbuilder"
)

var serviceColumns = []string{
	"id",
	"name",
	"item_type",
	"price",
	"duration_minutes",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository reads the spa service catalog: the priced units (services,
// products, packages) that invoices and bookings refer to.
type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID fetches one catalog entry.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.CatalogService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var svc domain.CatalogService
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&svc.ID,
		&svc.Name,
		&svc.ItemType,
		&svc.Price,
		&svc.DurationMinutes,
		&svc.IsActive,
		&svc.CreatedAt,
		&svc.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan service: %v", ErrScanRow, err)
	}

	return &svc, nil
}

// GetByIDs fetches several catalog entries at once. Missing IDs are simply
// absent from the result; the caller decides whether that is an error.
func (r *Repository) GetByIDs(ctx context.Context, ids []int64) (map[int64]*domain.CatalogService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if len(ids) == 0 {
		return map[int64]*domain.CatalogService{}, nil
	}

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services, err := r.scanServices(rows)
	if err != nil {
		return nil, err
	}

	result := make(map[int64]*domain.CatalogService, len(services))
	for _, svc := range services {
		result[svc.ID] = svc
	}
	return result, nil
}

// ListActive returns all active catalog entries ordered by type and name.
func (r *Repository) ListActive(ctx context.Context) ([]*domain.CatalogService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("item_type ASC, name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanServices(rows)
}

func (r *Repository) scanServices(rows *sql.Rows) ([]*domain.CatalogService, error) {
	services := make([]*domain.CatalogService, 0)

	for rows.Next() {
		var svc domain.CatalogService
		err := rows.Scan(
			&svc.ID,
			&svc.Name,
			&svc.ItemType,
			&svc.Price,
			&svc.DurationMinutes,
			&svc.IsActive,
			&svc.CreatedAt,
			&svc.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanServices - scan row: %v", ErrScanRow, err)
		}
		services = append(services, &svc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}
