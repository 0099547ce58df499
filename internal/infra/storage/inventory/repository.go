package inventory

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/anuratyres/ATS-ShopService/internal/domain"
	"github.com/anuratyres/ATS-ShopService/pkg/dbmetrics"
	"github.com/anuratyres/ATS-ShopService/pkg/psqlbuilder"
)

var itemColumns = []string{
	"id",
	"reference",
	"name",
	"category",
	"stock",
	"min_stock",
	"price",
	"supplier",
	"description",
	"created_at",
	"updated_at",
}

// Repository persists inventory items. The table has no status column:
// stock status is derived from stock and min_stock at read time.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates an inventory repository over db.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts an item with its sequential reference (INV-001, ...) in a
// single statement, so the row never exists without its final reference.
func (r *Repository) Create(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := insertItemQuery(item)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&item.ID, &item.Reference, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	item.CreatedAt = createdAt.Time
	item.UpdatedAt = updatedAt.Time
	return item, nil
}

// insertItemQuery builds the item insert. The id and the reference derived
// from it come from one sequence draw, so concurrent creates cannot collide
// on the unique reference column.
func insertItemQuery(item *domain.InventoryItem) (string, []interface{}, error) {
	refExpr := fmt.Sprintf("'%s' || lpad(s.id::text, greatest(3, length(s.id::text)), '0')",
		domain.InventoryRefPrefix)

	row := squirrel.Select("s.id", refExpr).
		Column(squirrel.Expr("?", item.Name)).
		Column(squirrel.Expr("?", item.Category)).
		Column(squirrel.Expr("?", item.Stock)).
		Column(squirrel.Expr("?", item.MinStock)).
		Column(squirrel.Expr("?", item.Price)).
		Column(squirrel.Expr("?", item.Supplier)).
		Column(squirrel.Expr("?", item.Description)).
		From("(SELECT nextval(pg_get_serial_sequence('inventory_items', 'id')) AS id) s")

	return psqlbuilder.Insert("inventory_items").
		Columns("id", "reference", "name", "category", "stock", "min_stock", "price", "supplier", "description").
		Select(row).
		Suffix("RETURNING id, reference, created_at, updated_at").
		ToSql()
}

// GetByReference fetches an item by its public reference.
func (r *Repository) GetByReference(ctx context.Context, reference string) (*domain.InventoryItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(itemColumns...).
		From("inventory_items").
		Where(squirrel.Eq{"reference": reference}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByReference - build select query: %v", ErrBuildQuery, err)
	}

	item, err := scanItem(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

// List fetches items matching filter, newest first.
func (r *Repository) List(ctx context.Context, filter domain.InventoryFilter) ([]*domain.InventoryItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(itemColumns...).
		From("inventory_items").
		OrderBy("id DESC")

	if filter.Category != "" {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"category": filter.Category})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"reference": pattern},
			squirrel.ILike{"supplier": pattern},
		})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make([]*domain.InventoryItem, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}
	return items, nil
}

// Update overwrites the editable fields of an item.
func (r *Repository) Update(ctx context.Context, reference string, item *domain.InventoryItem) (*domain.InventoryItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("inventory_items").
		Set("name", item.Name).
		Set("category", item.Category).
		Set("stock", item.Stock).
		Set("min_stock", item.MinStock).
		Set("price", item.Price).
		Set("supplier", item.Supplier).
		Set("description", item.Description).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"reference": reference}).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&item.ID, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	item.Reference = reference
	item.CreatedAt = createdAt.Time
	item.UpdatedAt = updatedAt.Time
	return item, nil
}

// AddStock increments the stock level atomically and returns the updated item.
func (r *Repository) AddStock(ctx context.Context, reference string, quantity int) (*domain.InventoryItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("inventory_items").
		Set("stock", squirrel.Expr("stock + ?", quantity)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"reference": reference}).
		Suffix("RETURNING " + joinColumns(itemColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: AddStock - build update query: %v", ErrBuildQuery, err)
	}

	item, err := scanItem(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes an item permanently.
func (r *Repository) Delete(ctx context.Context, reference string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("inventory_items").
		Where(squirrel.Eq{"reference": reference}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanItem(row rowScanner) (*domain.InventoryItem, error) {
	var item domain.InventoryItem
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&item.ID,
		&item.Reference,
		&item.Name,
		&item.Category,
		&item.Stock,
		&item.MinStock,
		&item.Price,
		&item.Supplier,
		&item.Description,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scan item: %v", ErrScanRow, err)
	}

	item.CreatedAt = createdAt.Time
	item.UpdatedAt = updatedAt.Time
	return &item, nil
}

func joinColumns(columns []string) string {
	out := ""
	for i, c := range columns {
		if i > 0 {
			out += ", "
		}
		out += c
	}
	return out
}
