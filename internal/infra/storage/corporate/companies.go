package corporate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/anuratyres/ATS-ShopService/internal/domain"
	"github.com/anuratyres/ATS-ShopService/pkg/dbmetrics"
	"github.com/anuratyres/ATS-ShopService/pkg/psqlbuilder"
)

var companyColumns = []string{
	"id",
	"company_name",
	"contact_person",
	"email",
	"phone",
	"business_type",
	"tax_id",
	"address",
	"employees",
	"corporate_code",
	"discount",
	"status",
	"registered_date",
	"booking_count",
	"created_at",
	"updated_at",
}

// uniqueViolation is the PostgreSQL error code for unique constraint breaks.
const uniqueViolation = "23505"

// Repository persists corporate companies and their employees.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a corporate repository over db.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateCompany inserts a company and fills in the generated id and
// timestamps. A clash on the unique corporate code maps to ErrDuplicateCode.
func (r *Repository) CreateCompany(ctx context.Context, c *domain.CorporateCompany) (*domain.CorporateCompany, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("corporate_companies").
		Columns(
			"company_name",
			"contact_person",
			"email",
			"phone",
			"business_type",
			"tax_id",
			"address",
			"employees",
			"corporate_code",
			"discount",
			"status",
			"registered_date",
		).
		Values(
			c.CompanyName,
			c.ContactPerson,
			c.Email,
			c.Phone,
			c.BusinessType,
			c.TaxID,
			c.Address,
			c.Employees,
			c.CorporateCode,
			c.Discount,
			c.Status,
			c.RegisteredDate,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateCompany - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&c.ID, &createdAt, &updatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrDuplicateCode
		}
		return nil, fmt.Errorf("%w: CreateCompany - execute insert: %v", ErrExecQuery, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return c, nil
}

// GetCompanyByID fetches a company by id.
func (r *Repository) GetCompanyByID(ctx context.Context, id int64) (*domain.CorporateCompany, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(companyColumns...).
		From("corporate_companies").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetCompanyByID - build select query: %v", ErrBuildQuery, err)
	}

	c, err := scanCompany(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrCompanyNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// GetCompanyByCode fetches a company by its unique corporate code.
func (r *Repository) GetCompanyByCode(ctx context.Context, code string) (*domain.CorporateCompany, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(companyColumns...).
		From("corporate_companies").
		Where(squirrel.Eq{"corporate_code": code}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetCompanyByCode - build select query: %v", ErrBuildQuery, err)
	}

	c, err := scanCompany(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrCompanyNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ListCompanies fetches companies matching filter, newest first. The search
// term matches company name, corporate code and contact person
// case-insensitively.
func (r *Repository) ListCompanies(ctx context.Context, filter domain.CompanyFilter) ([]*domain.CorporateCompany, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(companyColumns...).From("corporate_companies")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.ILike{"company_name": pattern},
			squirrel.ILike{"corporate_code": pattern},
			squirrel.ILike{"contact_person": pattern},
		})
	}

	query, args, err := selectBuilder.OrderBy("id DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListCompanies - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCompanies - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var companies []*domain.CorporateCompany
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCompanies - rows error: %v", ErrScanRow, err)
	}

	return companies, nil
}

// UpdateCompany overwrites the editable fields of a company.
func (r *Repository) UpdateCompany(ctx context.Context, c *domain.CorporateCompany) (*domain.CorporateCompany, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("corporate_companies").
		Set("company_name", c.CompanyName).
		Set("contact_person", c.ContactPerson).
		Set("email", c.Email).
		Set("phone", c.Phone).
		Set("business_type", c.BusinessType).
		Set("tax_id", c.TaxID).
		Set("address", c.Address).
		Set("employees", c.Employees).
		Set("discount", c.Discount).
		Set("status", c.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": c.ID}).
		Suffix("RETURNING " + joinColumns(companyColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateCompany - build update query: %v", ErrBuildQuery, err)
	}

	updated, err := scanCompany(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrCompanyNotFound
	}
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// UpdateCompanyStatus overwrites the company status only.
func (r *Repository) UpdateCompanyStatus(ctx context.Context, id int64, status domain.CompanyStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("corporate_companies").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateCompanyStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateCompanyStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateCompanyStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrCompanyNotFound
	}
	return nil
}

// IncrementCompanyBookings bumps the running booking counter for the company
// owning code.
func (r *Repository) IncrementCompanyBookings(ctx context.Context, code string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("corporate_companies").
		Set("booking_count", squirrel.Expr("booking_count + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"corporate_code": code}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: IncrementCompanyBookings - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: IncrementCompanyBookings - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: IncrementCompanyBookings - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrCompanyNotFound
	}
	return nil
}

// DeleteCompany removes a company permanently.
func (r *Repository) DeleteCompany(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("corporate_companies").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteCompany - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteCompany - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteCompany - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrCompanyNotFound
	}
	return nil
}

// StatsSummary computes the aggregate corporate figures in three queries:
// company counts, employee counts and the top companies by employee count.
func (r *Repository) StatsSummary(ctx context.Context, topLimit uint64) (*domain.CorporateStats, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	stats := &domain.CorporateStats{}

	query, args, err := psqlbuilder.Select(
		"COUNT(*)",
		"COUNT(*) FILTER (WHERE status = 'active')",
		"COALESCE(SUM(booking_count), 0)",
	).From("corporate_companies").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: StatsSummary - build company query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).
		Scan(&stats.TotalCompanies, &stats.ActiveCompanies, &stats.TotalBookings)
	if err != nil {
		return nil, fmt.Errorf("%w: StatsSummary - scan company counts: %v", ErrScanRow, err)
	}

	query, args, err = psqlbuilder.Select(
		"COUNT(*)",
		"COUNT(*) FILTER (WHERE status = 'active')",
		"COALESCE(SUM(usage_count * discount), 0)",
	).From("corporate_employees").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: StatsSummary - build employee query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).
		Scan(&stats.TotalEmployees, &stats.ActiveEmployees, &stats.TotalDiscountGiven)
	if err != nil {
		return nil, fmt.Errorf("%w: StatsSummary - scan employee counts: %v", ErrScanRow, err)
	}

	query, args, err = psqlbuilder.Select(
		"c.company_name",
		"COUNT(e.id)",
		"c.booking_count",
	).
		From("corporate_companies c").
		LeftJoin("corporate_employees e ON e.corporate_code = c.corporate_code").
		GroupBy("c.id", "c.company_name", "c.booking_count").
		OrderBy("COUNT(e.id) DESC", "c.company_name ASC").
		Limit(topLimit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: StatsSummary - build top companies query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: StatsSummary - execute top companies query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var top domain.TopCompany
		if err := rows.Scan(&top.CompanyName, &top.EmployeeCount, &top.BookingCount); err != nil {
			return nil, fmt.Errorf("%w: StatsSummary - scan top company: %v", ErrScanRow, err)
		}
		stats.TopCompanies = append(stats.TopCompanies, top)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: StatsSummary - rows error: %v", ErrScanRow, err)
	}

	return stats, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCompany(row rowScanner) (*domain.CorporateCompany, error) {
	var c domain.CorporateCompany
	var registeredDate, createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&c.ID,
		&c.CompanyName,
		&c.ContactPerson,
		&c.Email,
		&c.Phone,
		&c.BusinessType,
		&c.TaxID,
		&c.Address,
		&c.Employees,
		&c.CorporateCode,
		&c.Discount,
		&c.Status,
		&registeredDate,
		&c.BookingCount,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scan company: %v", ErrScanRow, err)
	}

	c.RegisteredDate = registeredDate.Time
	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return &c, nil
}

func joinColumns(columns []string) string {
	out := columns[0]
	for _, c := range columns[1:] {
		out += ", " + c
	}
	return out
}
