package corporate

import (
	"context"
	"encoding/csv"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anuratyres/ATS-ShopService/internal/domain"
	corporateRepo "github.com/anuratyres/ATS-ShopService/internal/infra/storage/corporate"
	"github.com/anuratyres/ATS-ShopService/internal/service/corporate/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// fakeCorporateRepo is an in-memory CorporateRepository.
type fakeCorporateRepo struct {
	companies      map[int64]*domain.CorporateCompany
	employees      map[int64]*domain.Employee
	nextCompanyID  int64
	nextEmployeeID int64

	failCompanyIncrement bool
}

func newFakeCorporateRepo() *fakeCorporateRepo {
	return &fakeCorporateRepo{
		companies:      map[int64]*domain.CorporateCompany{},
		employees:      map[int64]*domain.Employee{},
		nextCompanyID:  1,
		nextEmployeeID: 1,
	}
}

func (r *fakeCorporateRepo) CreateCompany(_ context.Context, c *domain.CorporateCompany) (*domain.CorporateCompany, error) {
	for _, existing := range r.companies {
		if existing.CorporateCode == c.CorporateCode {
			return nil, corporateRepo.ErrDuplicateCode
		}
	}
	out := *c
	out.ID = r.nextCompanyID
	out.CreatedAt = time.Now()
	out.UpdatedAt = out.CreatedAt
	r.companies[out.ID] = &out
	r.nextCompanyID++
	return &out, nil
}

func (r *fakeCorporateRepo) GetCompanyByID(_ context.Context, id int64) (*domain.CorporateCompany, error) {
	c, ok := r.companies[id]
	if !ok {
		return nil, corporateRepo.ErrCompanyNotFound
	}
	return c, nil
}

func (r *fakeCorporateRepo) GetCompanyByCode(_ context.Context, code string) (*domain.CorporateCompany, error) {
	for _, c := range r.companies {
		if c.CorporateCode == code {
			return c, nil
		}
	}
	return nil, corporateRepo.ErrCompanyNotFound
}

func (r *fakeCorporateRepo) ListCompanies(_ context.Context, _ domain.CompanyFilter) ([]*domain.CorporateCompany, error) {
	out := make([]*domain.CorporateCompany, 0, len(r.companies))
	for id := int64(1); id < r.nextCompanyID; id++ {
		if c, ok := r.companies[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCorporateRepo) UpdateCompany(_ context.Context, c *domain.CorporateCompany) (*domain.CorporateCompany, error) {
	if _, ok := r.companies[c.ID]; !ok {
		return nil, corporateRepo.ErrCompanyNotFound
	}
	r.companies[c.ID] = c
	return c, nil
}

func (r *fakeCorporateRepo) UpdateCompanyStatus(_ context.Context, id int64, status domain.CompanyStatus) error {
	c, ok := r.companies[id]
	if !ok {
		return corporateRepo.ErrCompanyNotFound
	}
	c.Status = status
	return nil
}

func (r *fakeCorporateRepo) IncrementCompanyBookings(_ context.Context, code string) error {
	if r.failCompanyIncrement {
		return errors.New("connection reset")
	}
	for _, c := range r.companies {
		if c.CorporateCode == code {
			c.BookingCount++
			return nil
		}
	}
	return corporateRepo.ErrCompanyNotFound
}

func (r *fakeCorporateRepo) DeleteCompany(_ context.Context, id int64) error {
	if _, ok := r.companies[id]; !ok {
		return corporateRepo.ErrCompanyNotFound
	}
	delete(r.companies, id)
	return nil
}

func (r *fakeCorporateRepo) StatsSummary(_ context.Context, _ uint64) (*domain.CorporateStats, error) {
	return &domain.CorporateStats{}, nil
}

func (r *fakeCorporateRepo) CreateEmployee(_ context.Context, e *domain.Employee) (*domain.Employee, error) {
	out := *e
	out.ID = r.nextEmployeeID
	out.CreatedAt = time.Now()
	out.UpdatedAt = out.CreatedAt
	r.employees[out.ID] = &out
	r.nextEmployeeID++
	return &out, nil
}

func (r *fakeCorporateRepo) GetEmployeeByID(_ context.Context, id int64) (*domain.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return nil, corporateRepo.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *fakeCorporateRepo) GetEmployeeByDiscountID(_ context.Context, discountID string) (*domain.Employee, error) {
	for _, e := range r.employees {
		if e.EmployeeDiscountID == discountID {
			return e, nil
		}
	}
	return nil, corporateRepo.ErrEmployeeNotFound
}

func (r *fakeCorporateRepo) ListEmployees(_ context.Context, filter domain.EmployeeFilter) ([]*domain.Employee, error) {
	out := make([]*domain.Employee, 0, len(r.employees))
	for id := int64(1); id < r.nextEmployeeID; id++ {
		e, ok := r.employees[id]
		if !ok {
			continue
		}
		if filter.CorporateCode != "" && e.CorporateCode != filter.CorporateCode {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeCorporateRepo) UpdateEmployee(_ context.Context, e *domain.Employee) (*domain.Employee, error) {
	if _, ok := r.employees[e.ID]; !ok {
		return nil, corporateRepo.ErrEmployeeNotFound
	}
	r.employees[e.ID] = e
	return e, nil
}

func (r *fakeCorporateRepo) UpdateEmployeeStatus(_ context.Context, id int64, status domain.EmployeeStatus) error {
	e, ok := r.employees[id]
	if !ok {
		return corporateRepo.ErrEmployeeNotFound
	}
	e.Status = status
	return nil
}

func (r *fakeCorporateRepo) IncrementEmployeeUsage(_ context.Context, id int64) error {
	e, ok := r.employees[id]
	if !ok {
		return corporateRepo.ErrEmployeeNotFound
	}
	e.UsageCount++
	return nil
}

func (r *fakeCorporateRepo) DeleteEmployee(_ context.Context, id int64) error {
	if _, ok := r.employees[id]; !ok {
		return corporateRepo.ErrEmployeeNotFound
	}
	delete(r.employees, id)
	return nil
}

// fakeTxManager mimics rollback: it snapshots the fake repo's state before
// running fn and restores it when fn fails. Writes issued outside the
// transaction callback are therefore not undone, which is exactly what the
// tests need to catch.
type fakeTxManager struct {
	repo *fakeCorporateRepo
}

func (m fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	companies := make(map[int64]*domain.CorporateCompany, len(m.repo.companies))
	for id, c := range m.repo.companies {
		copied := *c
		companies[id] = &copied
	}
	employees := make(map[int64]*domain.Employee, len(m.repo.employees))
	for id, e := range m.repo.employees {
		copied := *e
		employees[id] = &copied
	}

	if err := fn(ctx); err != nil {
		m.repo.companies = companies
		m.repo.employees = employees
		return err
	}
	return nil
}

func newTestService(repo *fakeCorporateRepo) *Service {
	return NewService(repo, fakeTxManager{repo: repo}, nopLogger{})
}

func registerCompany(t *testing.T, svc *Service, name, code string, discount int) *models.CompanyResponse {
	t.Helper()
	res, err := svc.RegisterCompany(context.Background(), &models.RegisterCompanyRequest{
		CompanyName:   name,
		ContactPerson: "Contact Person",
		Phone:         "0112345678",
		CorporateCode: code,
		Discount:      discount,
	})
	require.NoError(t, err)
	return res
}

func registerEmployee(t *testing.T, svc *Service, name, code string) *models.EmployeeResponse {
	t.Helper()
	res, err := svc.RegisterEmployee(context.Background(), &models.RegisterEmployeeRequest{
		EmployeeName:  name,
		EmployeePhone: "0770000000",
		CorporateCode: code,
	})
	require.NoError(t, err)
	return res
}

func TestRegisterCompanyGeneratesCode(t *testing.T) {
	svc := newTestService(newFakeCorporateRepo())

	res := registerCompany(t, svc, "Lanka Logistics", "", 10)

	assert.True(t, strings.HasPrefix(res.CorporateCode, "CORP-"), res.CorporateCode)
	assert.Len(t, strings.TrimPrefix(res.CorporateCode, "CORP-"), 6)
	assert.Equal(t, string(domain.CompanyActive), res.Status)
}

func TestRegisterCompanyKeepsGivenCode(t *testing.T) {
	svc := newTestService(newFakeCorporateRepo())

	res := registerCompany(t, svc, "Lanka Logistics", "CORP-LANKA1", 10)
	assert.Equal(t, "CORP-LANKA1", res.CorporateCode)

	_, err := svc.RegisterCompany(context.Background(), &models.RegisterCompanyRequest{
		CompanyName:   "Other Company",
		ContactPerson: "Contact Person",
		Phone:         "0112345678",
		CorporateCode: "CORP-LANKA1",
	})
	assert.ErrorIs(t, err, ErrDuplicateCode)
}

func TestRegisterCompanyDiscountBounds(t *testing.T) {
	svc := newTestService(newFakeCorporateRepo())

	_, err := svc.RegisterCompany(context.Background(), &models.RegisterCompanyRequest{
		CompanyName:   "Lanka Logistics",
		ContactPerson: "Contact Person",
		Phone:         "0112345678",
		Discount:      120,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRegisterEmployeeSnapshotsCompany(t *testing.T) {
	svc := newTestService(newFakeCorporateRepo())
	registerCompany(t, svc, "Lanka Logistics", "CORP-LANKA1", 15)

	res := registerEmployee(t, svc, "Kasun Perera", "CORP-LANKA1")

	assert.Equal(t, "Lanka Logistics", res.CompanyName)
	assert.Equal(t, 15, res.Discount, "discount copied from the company")
	assert.True(t, strings.HasPrefix(res.EmployeeDiscountID, "EMPD-"), res.EmployeeDiscountID)
	assert.Len(t, strings.TrimPrefix(res.EmployeeDiscountID, "EMPD-"), 8)
	assert.Equal(t, string(domain.EmployeeActive), res.Status)
}

func TestRegisterEmployeeUnknownCompany(t *testing.T) {
	svc := newTestService(newFakeCorporateRepo())

	_, err := svc.RegisterEmployee(context.Background(), &models.RegisterEmployeeRequest{
		EmployeeName:  "Kasun Perera",
		EmployeePhone: "0770000000",
		CorporateCode: "CORP-GHOST1",
	})
	assert.ErrorIs(t, err, ErrCompanyNotFound)
}

func TestCompleteJoinsEmployeesByCode(t *testing.T) {
	svc := newTestService(newFakeCorporateRepo())
	registerCompany(t, svc, "Lanka Logistics", "CORP-LANKA1", 10)
	registerCompany(t, svc, "Ceylon Traders", "CORP-CEYLO1", 5)
	registerEmployee(t, svc, "Kasun Perera", "CORP-LANKA1")
	registerEmployee(t, svc, "Nimal Silva", "CORP-LANKA1")

	res, err := svc.Complete(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Companies, 2)

	assert.Len(t, res.Companies[0].EmployeeList, 2)
	assert.NotNil(t, res.Companies[1].EmployeeList, "company without employees gets an empty list, not null")
	assert.Empty(t, res.Companies[1].EmployeeList)
}

func TestValidateDiscount(t *testing.T) {
	svc := newTestService(newFakeCorporateRepo())
	registerCompany(t, svc, "Lanka Logistics", "CORP-LANKA1", 15)
	employee := registerEmployee(t, svc, "Kasun Perera", "CORP-LANKA1")

	res, err := svc.ValidateDiscount(context.Background(), employee.EmployeeDiscountID)
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Equal(t, "Kasun Perera", res.EmployeeName)
	assert.Equal(t, 15, res.Discount)

	_, err = svc.ValidateDiscount(context.Background(), "EMPD-UNKNOWN1")
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestValidateDiscountInactive(t *testing.T) {
	svc := newTestService(newFakeCorporateRepo())
	company := registerCompany(t, svc, "Lanka Logistics", "CORP-LANKA1", 15)
	employee := registerEmployee(t, svc, "Kasun Perera", "CORP-LANKA1")

	// Inactive employee.
	require.NoError(t, svc.UpdateEmployeeStatus(context.Background(), employee.ID,
		&models.UpdateEmployeeStatusRequest{Status: string(domain.EmployeeInactive)}))
	_, err := svc.ValidateDiscount(context.Background(), employee.EmployeeDiscountID)
	assert.ErrorIs(t, err, ErrDiscountNotActive)

	// Active employee, suspended company.
	require.NoError(t, svc.UpdateEmployeeStatus(context.Background(), employee.ID,
		&models.UpdateEmployeeStatusRequest{Status: string(domain.EmployeeActive)}))
	require.NoError(t, svc.UpdateCompanyStatus(context.Background(), company.ID,
		&models.UpdateCompanyStatusRequest{Status: string(domain.CompanySuspended)}))
	_, err = svc.ValidateDiscount(context.Background(), employee.EmployeeDiscountID)
	assert.ErrorIs(t, err, ErrDiscountNotActive)
}

func TestRedeemDiscountIncrementsCounters(t *testing.T) {
	repo := newFakeCorporateRepo()
	svc := newTestService(repo)
	registerCompany(t, svc, "Lanka Logistics", "CORP-LANKA1", 15)
	employee := registerEmployee(t, svc, "Kasun Perera", "CORP-LANKA1")

	_, err := svc.RedeemDiscount(context.Background(), employee.EmployeeDiscountID)
	require.NoError(t, err)

	stored := repo.employees[employee.ID]
	assert.Equal(t, 1, stored.UsageCount)

	company, err := repo.GetCompanyByCode(context.Background(), "CORP-LANKA1")
	require.NoError(t, err)
	assert.Equal(t, 1, company.BookingCount)
}

func TestRedeemDiscountFailedRedemptionLeavesCountersUntouched(t *testing.T) {
	repo := newFakeCorporateRepo()
	svc := newTestService(repo)
	registerCompany(t, svc, "Lanka Logistics", "CORP-LANKA1", 15)
	employee := registerEmployee(t, svc, "Kasun Perera", "CORP-LANKA1")

	repo.failCompanyIncrement = true

	_, err := svc.RedeemDiscount(context.Background(), employee.EmployeeDiscountID)
	require.ErrorIs(t, err, ErrInternal)

	// The company increment failed, so the earlier employee increment must
	// have been rolled back with it.
	stored := repo.employees[employee.ID]
	assert.Equal(t, 0, stored.UsageCount)

	company, err := repo.GetCompanyByCode(context.Background(), "CORP-LANKA1")
	require.NoError(t, err)
	assert.Equal(t, 0, company.BookingCount)
}

func TestExportCompaniesCSV(t *testing.T) {
	svc := newTestService(newFakeCorporateRepo())
	registerCompany(t, svc, "Lanka Logistics", "CORP-LANKA1", 15)
	registerCompany(t, svc, "Ceylon Traders", "CORP-CEYLO1", 5)

	data, err := svc.ExportCompaniesCSV(context.Background())
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "header plus one row per company")

	assert.Equal(t, []string{
		"Company Name", "Contact Person", "Email", "Phone", "Business Type",
		"Corporate Code", "Discount (%)", "Status", "Registered Date", "Booking Count",
	}, records[0])
	assert.Equal(t, "Lanka Logistics", records[1][0])
	assert.Equal(t, "CORP-LANKA1", records[1][5])
	assert.Equal(t, "15", records[1][6])
}

func TestExportEmployeesCSV(t *testing.T) {
	svc := newTestService(newFakeCorporateRepo())
	registerCompany(t, svc, "Lanka Logistics", "CORP-LANKA1", 15)
	employee := registerEmployee(t, svc, "Kasun Perera", "CORP-LANKA1")

	data, err := svc.ExportEmployeesCSV(context.Background())
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Kasun Perera", records[1][0])
	assert.Equal(t, "Lanka Logistics", records[1][3])
	assert.Equal(t, employee.EmployeeDiscountID, records[1][7])
}
