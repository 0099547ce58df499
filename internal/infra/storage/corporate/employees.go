package corporate

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/anuratyres/ATS-ShopService/internal/domain"
	"github.com/anuratyres/ATS-ShopService/pkg/dbmetrics"
	"github.com/anuratyres/ATS-ShopService/pkg/psqlbuilder"
)

var employeeColumns = []string{
	"id",
	"employee_name",
	"employee_email",
	"employee_phone",
	"corporate_code",
	"company_name",
	"vehicle_no",
	"department",
	"employee_id",
	"employee_discount_id",
	"discount",
	"status",
	"registered_date",
	"usage_count",
	"created_at",
	"updated_at",
}

// CreateEmployee inserts an employee and fills in the generated id and
// timestamps.
func (r *Repository) CreateEmployee(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("corporate_employees").
		Columns(
			"employee_name",
			"employee_email",
			"employee_phone",
			"corporate_code",
			"company_name",
			"vehicle_no",
			"department",
			"employee_id",
			"employee_discount_id",
			"discount",
			"status",
			"registered_date",
		).
		Values(
			e.EmployeeName,
			e.EmployeeEmail,
			e.EmployeePhone,
			e.CorporateCode,
			e.CompanyName,
			e.VehicleNo,
			e.Department,
			e.EmployeeID,
			e.EmployeeDiscountID,
			e.Discount,
			e.Status,
			e.RegisteredDate,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateEmployee - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&e.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateEmployee - execute insert: %v", ErrExecQuery, err)
	}

	e.CreatedAt = createdAt.Time
	e.UpdatedAt = updatedAt.Time

	return e, nil
}

// GetEmployeeByID fetches an employee by id.
func (r *Repository) GetEmployeeByID(ctx context.Context, id int64) (*domain.Employee, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(employeeColumns...).
		From("corporate_employees").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetEmployeeByID - build select query: %v", ErrBuildQuery, err)
	}

	e, err := scanEmployee(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrEmployeeNotFound
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

// GetEmployeeByDiscountID fetches an employee by the server-assigned
// discount id used at the counter.
func (r *Repository) GetEmployeeByDiscountID(ctx context.Context, discountID string) (*domain.Employee, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(employeeColumns...).
		From("corporate_employees").
		Where(squirrel.Eq{"employee_discount_id": discountID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetEmployeeByDiscountID - build select query: %v", ErrBuildQuery, err)
	}

	e, err := scanEmployee(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrEmployeeNotFound
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

// ListEmployees fetches employees matching filter, newest first. The
// corporate-code filter is an exact match; the search term matches
// employee name, discount id and vehicle number case-insensitively.
func (r *Repository) ListEmployees(ctx context.Context, filter domain.EmployeeFilter) ([]*domain.Employee, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(employeeColumns...).From("corporate_employees")

	if filter.CorporateCode != "" {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"corporate_code": filter.CorporateCode})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.ILike{"employee_name": pattern},
			squirrel.ILike{"employee_discount_id": pattern},
			squirrel.ILike{"vehicle_no": pattern},
		})
	}

	query, args, err := selectBuilder.OrderBy("id DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListEmployees - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListEmployees - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var employees []*domain.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListEmployees - rows error: %v", ErrScanRow, err)
	}

	return employees, nil
}

// UpdateEmployee overwrites the editable fields of an employee.
func (r *Repository) UpdateEmployee(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("corporate_employees").
		Set("employee_name", e.EmployeeName).
		Set("employee_email", e.EmployeeEmail).
		Set("employee_phone", e.EmployeePhone).
		Set("vehicle_no", e.VehicleNo).
		Set("department", e.Department).
		Set("employee_id", e.EmployeeID).
		Set("status", e.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": e.ID}).
		Suffix("RETURNING " + joinColumns(employeeColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateEmployee - build update query: %v", ErrBuildQuery, err)
	}

	updated, err := scanEmployee(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrEmployeeNotFound
	}
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// UpdateEmployeeStatus overwrites the employee status only.
func (r *Repository) UpdateEmployeeStatus(ctx context.Context, id int64, status domain.EmployeeStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("corporate_employees").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateEmployeeStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateEmployeeStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateEmployeeStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}

// IncrementEmployeeUsage bumps the discount usage counter for an employee.
func (r *Repository) IncrementEmployeeUsage(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("corporate_employees").
		Set("usage_count", squirrel.Expr("usage_count + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: IncrementEmployeeUsage - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: IncrementEmployeeUsage - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: IncrementEmployeeUsage - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}

// DeleteEmployee removes an employee permanently.
func (r *Repository) DeleteEmployee(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("corporate_employees").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteEmployee - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteEmployee - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteEmployee - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}

func scanEmployee(row rowScanner) (*domain.Employee, error) {
	var e domain.Employee
	var registeredDate, createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&e.ID,
		&e.EmployeeName,
		&e.EmployeeEmail,
		&e.EmployeePhone,
		&e.CorporateCode,
		&e.CompanyName,
		&e.VehicleNo,
		&e.Department,
		&e.EmployeeID,
		&e.EmployeeDiscountID,
		&e.Discount,
		&e.Status,
		&registeredDate,
		&e.UsageCount,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scan employee: %v", ErrScanRow, err)
	}

	e.RegisteredDate = registeredDate.Time
	e.CreatedAt = createdAt.Time
	e.UpdatedAt = updatedAt.Time

	return &e, nil
}
