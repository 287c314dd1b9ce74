package invoice

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/lotusspa/SPA-OrderService/internal/domain"
	"github.com/lotusspa/SPA-OrderService/pkg/dbmetrics"
	"github.com/lotusspa/SPA-OrderService/pkg/psqlbuilder"
)

var invoiceColumns = []string{
	"id",
	"customer_id",
	"created_by_user_id",
	"status",
	"subtotal",
	"discount_total",
	"tax_amount",
	"grand_total",
	"discount_reason",
	"notes",
	"void_reason",
	"voided_at",
	"created_at",
	"updated_at",
}

// Repository persists invoices and their line items.
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts an invoice together with its line items. It is expected
// to run inside a transaction carried by ctx so that the invoice and its
// items are stored atomically; without one each insert stands alone.
func (r *Repository) Create(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("invoices").
		Columns(
			"customer_id",
			"created_by_user_id",
			"status",
			"subtotal",
			"discount_total",
			"tax_amount",
			"grand_total",
			"discount_reason",
			"notes",
		).
		Values(
			inv.CustomerID,
			inv.CreatedByUserID,
			inv.Status,
			inv.Subtotal,
			inv.DiscountTotal,
			inv.TaxAmount,
			inv.GrandTotal,
			inv.DiscountReason,
			inv.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&inv.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	inv.CreatedAt = createdAt.Time
	inv.UpdatedAt = updatedAt.Time

	for i := range inv.Items {
		if err := r.createItem(ctx, executor, inv.ID, &inv.Items[i]); err != nil {
			return nil, err
		}
	}

	return inv, nil
}

func (r *Repository) createItem(ctx context.Context, executor DBExecutor, invoiceID int64, item *domain.InvoiceItem) error {
	query, args, err := psqlbuilder.Insert("invoice_items").
		Columns(
			"invoice_id",
			"item_type",
			"item_id",
			"item_name",
			"quantity",
			"unit_price",
			"item_discount",
		).
		Values(
			invoiceID,
			item.ItemType,
			item.ItemID,
			item.ItemName,
			item.Quantity,
			item.UnitPrice,
			item.ItemDiscount,
		).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: createItem - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&item.ID); err != nil {
		return fmt.Errorf("%w: createItem - execute insert: %v", ErrExecQuery, err)
	}

	item.InvoiceID = invoiceID
	return nil
}

// GetByID fetches an invoice with its line items.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Invoice, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(invoiceColumns...).
		From("invoices").
		Where(squirrel.Eq{"id": id})

	// Lock the row when fetched inside a transaction (void path).
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	inv, err := r.scanInvoice(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, err
	}

	items, err := r.getItems(ctx, executor, inv.ID)
	if err != nil {
		return nil, err
	}
	inv.Items = items

	return inv, nil
}

// GetByCustomerWithFilter lists a customer's invoices, newest first.
// Voided invoices are excluded unless the filter requests them or names
// the voided status explicitly.
func (r *Repository) GetByCustomerWithFilter(ctx context.Context, filter domain.CustomerInvoicesFilter) ([]*domain.Invoice, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(invoiceColumns...).
		From("invoices").
		Where(squirrel.Eq{"customer_id": filter.CustomerID})

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"created_at": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"created_at": *filter.EndDate})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeVoided {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": string(domain.StatusVoided)})
	}

	selectBuilder = selectBuilder.OrderBy("created_at DESC, id DESC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	invoices, err := r.scanInvoices(rows)
	if err != nil {
		return nil, err
	}

	for _, inv := range invoices {
		items, err := r.getItems(ctx, executor, inv.ID)
		if err != nil {
			return nil, err
		}
		inv.Items = items
	}

	return invoices, nil
}

// Void marks an invoice as voided with a reason.
func (r *Repository) Void(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("invoices").
		Set("status", domain.StatusVoided).
		Set("void_reason", reason).
		Set("voided_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Void - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Void - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Void - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrInvoiceNotFound
	}

	return nil
}

func (r *Repository) getItems(ctx context.Context, executor DBExecutor, invoiceID int64) ([]domain.InvoiceItem, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"invoice_id",
		"item_type",
		"item_id",
		"item_name",
		"quantity",
		"unit_price",
		"item_discount",
	).
		From("invoice_items").
		Where(squirrel.Eq{"invoice_id": invoiceID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getItems - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getItems - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make([]domain.InvoiceItem, 0)
	for rows.Next() {
		var item domain.InvoiceItem
		err := rows.Scan(
			&item.ID,
			&item.InvoiceID,
			&item.ItemType,
			&item.ItemID,
			&item.ItemName,
			&item.Quantity,
			&item.UnitPrice,
			&item.ItemDiscount,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: getItems - scan row: %v", ErrScanRow, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getItems - rows error: %v", ErrScanRow, err)
	}

	return items, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanInvoice(row rowScanner) (*domain.Invoice, error) {
	var inv domain.Invoice
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&inv.ID,
		&inv.CustomerID,
		&inv.CreatedByUserID,
		&inv.Status,
		&inv.Subtotal,
		&inv.DiscountTotal,
		&inv.TaxAmount,
		&inv.GrandTotal,
		&inv.DiscountReason,
		&inv.Notes,
		&inv.VoidReason,
		&inv.VoidedAt,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrInvoiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanInvoice: %v", ErrScanRow, err)
	}

	inv.CreatedAt = createdAt.Time
	inv.UpdatedAt = updatedAt.Time

	return &inv, nil
}

func (r *Repository) scanInvoices(rows *sql.Rows) ([]*domain.Invoice, error) {
	invoices := make([]*domain.Invoice, 0)

	for rows.Next() {
		inv, err := r.scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanInvoices - rows error: %v", ErrScanRow, err)
	}

	return invoices, nil
}
