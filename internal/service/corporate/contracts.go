package corporate

import (
	"context"

	"github.com/anuratyres/ATS-ShopService/internal/domain"
)

// CorporateRepository is the companies/employees storage surface the
// service needs.
type CorporateRepository interface {
	CreateCompany(ctx context.Context, c *domain.CorporateCompany) (*domain.CorporateCompany, error)
	GetCompanyByID(ctx context.Context, id int64) (*domain.CorporateCompany, error)
	GetCompanyByCode(ctx context.Context, code string) (*domain.CorporateCompany, error)
	ListCompanies(ctx context.Context, filter domain.CompanyFilter) ([]*domain.CorporateCompany, error)
	UpdateCompany(ctx context.Context, c *domain.CorporateCompany) (*domain.CorporateCompany, error)
	UpdateCompanyStatus(ctx context.Context, id int64, status domain.CompanyStatus) error
	DeleteCompany(ctx context.Context, id int64) error
	StatsSummary(ctx context.Context, topLimit uint64) (*domain.CorporateStats, error)

	IncrementCompanyBookings(ctx context.Context, corporateCode string) error

	CreateEmployee(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
	GetEmployeeByID(ctx context.Context, id int64) (*domain.Employee, error)
	GetEmployeeByDiscountID(ctx context.Context, discountID string) (*domain.Employee, error)
	IncrementEmployeeUsage(ctx context.Context, id int64) error
	ListEmployees(ctx context.Context, filter domain.EmployeeFilter) ([]*domain.Employee, error)
	UpdateEmployee(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
	UpdateEmployeeStatus(ctx context.Context, id int64, status domain.EmployeeStatus) error
	DeleteEmployee(ctx context.Context, id int64) error
}

// TransactionManager runs a discount redemption's increments atomically.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging surface the service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
