package corporate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/anuratyres/ATS-ShopService/internal/domain"
	corporateRepo "github.com/anuratyres/ATS-ShopService/internal/infra/storage/corporate"
	"github.com/anuratyres/ATS-ShopService/internal/service/corporate/models"
)

// topCompaniesLimit bounds the stats ranking.
const topCompaniesLimit = 5

// Service handles corporate partner companies and their employees.
type Service struct {
	corporateRepo CorporateRepository
	txManager     TransactionManager
	logger        Logger
}

// NewService creates a new corporate service.
func NewService(corporateRepo CorporateRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		corporateRepo: corporateRepo,
		txManager:     txManager,
		logger:        logger,
	}
}

// RegisterCompany registers a partner company. When the form omits a
// corporate code one is generated; either way the code must be unique.
func (s *Service) RegisterCompany(ctx context.Context, req *models.RegisterCompanyRequest) (*models.CompanyResponse, error) {
	s.logger.Info("RegisterCompany: registering %q", req.CompanyName)

	if err := validateCompanyRequest(req); err != nil {
		s.logger.Warn("RegisterCompany: validation failed: %v", err)
		return nil, err
	}

	code := strings.TrimSpace(req.CorporateCode)
	if code == "" {
		code = newCorporateCode()
	}

	company := &domain.CorporateCompany{
		CompanyName:    strings.TrimSpace(req.CompanyName),
		ContactPerson:  req.ContactPerson,
		Email:          req.Email,
		Phone:          req.Phone,
		BusinessType:   req.BusinessType,
		TaxID:          req.TaxID,
		Address:        req.Address,
		Employees:      req.Employees,
		CorporateCode:  code,
		Discount:       req.Discount,
		Status:         domain.CompanyActive,
		RegisteredDate: todayUTC(),
	}

	created, err := s.corporateRepo.CreateCompany(ctx, company)
	if err != nil {
		if errors.Is(err, corporateRepo.ErrDuplicateCode) {
			s.logger.Warn("RegisterCompany: corporate code %q already exists", code)
			return nil, ErrDuplicateCode
		}
		s.logger.Error("RegisterCompany: repository error: %v", err)
		return nil, fmt.Errorf("%w: RegisterCompany - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("RegisterCompany: company %q registered with code %s", created.CompanyName, created.CorporateCode)
	return models.FromDomainCompany(created), nil
}

// ListCompanies fetches companies with optional status and search filters.
func (s *Service) ListCompanies(ctx context.Context, req *models.ListCompaniesRequest) (*models.CompanyListResponse, error) {
	filter := domain.CompanyFilter{Search: req.Search}

	if req.Status != "" {
		status := domain.CompanyStatus(req.Status)
		if !domain.IsValidCompanyStatus(status) {
			s.logger.Warn("ListCompanies: invalid status filter %q", req.Status)
			return nil, ErrInvalidStatus
		}
		filter.Status = &status
	}

	companies, err := s.corporateRepo.ListCompanies(ctx, filter)
	if err != nil {
		s.logger.Error("ListCompanies: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCompanies - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCompanyList(companies), nil
}

// UpdateCompanyStatus sets a company's status.
func (s *Service) UpdateCompanyStatus(ctx context.Context, id int64, req *models.UpdateCompanyStatusRequest) error {
	s.logger.Info("UpdateCompanyStatus: company id=%d -> %s", id, req.Status)

	status := domain.CompanyStatus(req.Status)
	if !domain.IsValidCompanyStatus(status) {
		s.logger.Warn("UpdateCompanyStatus: invalid status %q for company id=%d", req.Status, id)
		return ErrInvalidStatus
	}

	if err := s.corporateRepo.UpdateCompanyStatus(ctx, id, status); err != nil {
		if errors.Is(err, corporateRepo.ErrCompanyNotFound) {
			s.logger.Warn("UpdateCompanyStatus: company id=%d not found", id)
			return ErrCompanyNotFound
		}
		s.logger.Error("UpdateCompanyStatus: repository error for company id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateCompanyStatus - repository error: %v", ErrInternal, err)
	}

	return nil
}

// RegisterEmployee registers an employee under an existing company. The
// company lookup snapshots the company name and discount onto the employee
// and assigns the counter discount id.
func (s *Service) RegisterEmployee(ctx context.Context, req *models.RegisterEmployeeRequest) (*models.EmployeeResponse, error) {
	s.logger.Info("RegisterEmployee: registering %q under %s", req.EmployeeName, req.CorporateCode)

	if err := validateEmployeeRequest(req); err != nil {
		s.logger.Warn("RegisterEmployee: validation failed: %v", err)
		return nil, err
	}

	company, err := s.corporateRepo.GetCompanyByCode(ctx, req.CorporateCode)
	if err != nil {
		if errors.Is(err, corporateRepo.ErrCompanyNotFound) {
			s.logger.Warn("RegisterEmployee: company code %q not found", req.CorporateCode)
			return nil, ErrCompanyNotFound
		}
		s.logger.Error("RegisterEmployee: company lookup error: %v", err)
		return nil, fmt.Errorf("%w: RegisterEmployee - company lookup error: %v", ErrInternal, err)
	}

	employee := &domain.Employee{
		EmployeeName:       strings.TrimSpace(req.EmployeeName),
		EmployeeEmail:      req.EmployeeEmail,
		EmployeePhone:      req.EmployeePhone,
		CorporateCode:      company.CorporateCode,
		CompanyName:        company.CompanyName,
		VehicleNo:          req.VehicleNo,
		Department:         req.Department,
		EmployeeID:         req.EmployeeID,
		EmployeeDiscountID: newDiscountID(),
		Discount:           company.Discount,
		Status:             domain.EmployeeActive,
		RegisteredDate:     todayUTC(),
	}

	created, err := s.corporateRepo.CreateEmployee(ctx, employee)
	if err != nil {
		s.logger.Error("RegisterEmployee: repository error: %v", err)
		return nil, fmt.Errorf("%w: RegisterEmployee - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("RegisterEmployee: employee %s registered under %s", created.EmployeeDiscountID, created.CorporateCode)
	return models.FromDomainEmployee(created), nil
}

// ListEmployees fetches employees with optional corporate-code, status and
// search filters.
func (s *Service) ListEmployees(ctx context.Context, req *models.ListEmployeesRequest) (*models.EmployeeListResponse, error) {
	filter := domain.EmployeeFilter{
		CorporateCode: req.CorporateCode,
		Search:        req.Search,
	}

	if req.Status != "" {
		status := domain.EmployeeStatus(req.Status)
		if !domain.IsValidEmployeeStatus(status) {
			s.logger.Warn("ListEmployees: invalid status filter %q", req.Status)
			return nil, ErrInvalidStatus
		}
		filter.Status = &status
	}

	employees, err := s.corporateRepo.ListEmployees(ctx, filter)
	if err != nil {
		s.logger.Error("ListEmployees: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListEmployees - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainEmployeeList(employees), nil
}

// UpdateEmployeeStatus sets an employee's status.
func (s *Service) UpdateEmployeeStatus(ctx context.Context, id int64, req *models.UpdateEmployeeStatusRequest) error {
	s.logger.Info("UpdateEmployeeStatus: employee id=%d -> %s", id, req.Status)

	status := domain.EmployeeStatus(req.Status)
	if !domain.IsValidEmployeeStatus(status) {
		s.logger.Warn("UpdateEmployeeStatus: invalid status %q for employee id=%d", req.Status, id)
		return ErrInvalidStatus
	}

	if err := s.corporateRepo.UpdateEmployeeStatus(ctx, id, status); err != nil {
		if errors.Is(err, corporateRepo.ErrEmployeeNotFound) {
			s.logger.Warn("UpdateEmployeeStatus: employee id=%d not found", id)
			return ErrEmployeeNotFound
		}
		s.logger.Error("UpdateEmployeeStatus: repository error for employee id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateEmployeeStatus - repository error: %v", ErrInternal, err)
	}

	return nil
}

// Complete returns every company with its employees attached. The employees
// are indexed by corporate code once, so the join is linear instead of a
// per-company scan.
func (s *Service) Complete(ctx context.Context) (*models.CompleteResponse, error) {
	companies, err := s.corporateRepo.ListCompanies(ctx, domain.CompanyFilter{})
	if err != nil {
		s.logger.Error("Complete: company repository error: %v", err)
		return nil, fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
	}

	employees, err := s.corporateRepo.ListEmployees(ctx, domain.EmployeeFilter{})
	if err != nil {
		s.logger.Error("Complete: employee repository error: %v", err)
		return nil, fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
	}

	byCode := make(map[string][]*models.EmployeeResponse, len(companies))
	for _, e := range employees {
		byCode[e.CorporateCode] = append(byCode[e.CorporateCode], models.FromDomainEmployee(e))
	}

	out := make([]*models.CompanyWithEmployees, 0, len(companies))
	for _, c := range companies {
		entry := &models.CompanyWithEmployees{
			CompanyResponse: *models.FromDomainCompany(c),
			EmployeeList:    byCode[c.CorporateCode],
		}
		if entry.EmployeeList == nil {
			entry.EmployeeList = []*models.EmployeeResponse{}
		}
		out = append(out, entry)
	}

	return &models.CompleteResponse{Companies: out, Total: len(out)}, nil
}

// ValidateDiscount resolves an employee discount id for the booking form.
// The id only validates when both the employee and the company are active.
func (s *Service) ValidateDiscount(ctx context.Context, discountID string) (*models.DiscountValidationResponse, error) {
	employee, err := s.corporateRepo.GetEmployeeByDiscountID(ctx, discountID)
	if err != nil {
		if errors.Is(err, corporateRepo.ErrEmployeeNotFound) {
			s.logger.Warn("ValidateDiscount: discount id %q not found", discountID)
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("ValidateDiscount: repository error for %q: %v", discountID, err)
		return nil, fmt.Errorf("%w: ValidateDiscount - repository error: %v", ErrInternal, err)
	}

	if employee.Status != domain.EmployeeActive {
		s.logger.Warn("ValidateDiscount: employee id=%d is %s", employee.ID, employee.Status)
		return nil, ErrDiscountNotActive
	}

	company, err := s.corporateRepo.GetCompanyByCode(ctx, employee.CorporateCode)
	if err != nil {
		if errors.Is(err, corporateRepo.ErrCompanyNotFound) {
			s.logger.Warn("ValidateDiscount: company %q for discount %q gone", employee.CorporateCode, discountID)
			return nil, ErrDiscountNotActive
		}
		s.logger.Error("ValidateDiscount: repository error for company %q: %v", employee.CorporateCode, err)
		return nil, fmt.Errorf("%w: ValidateDiscount - repository error: %v", ErrInternal, err)
	}
	if company.Status != domain.CompanyActive {
		s.logger.Warn("ValidateDiscount: company %q is %s", company.CorporateCode, company.Status)
		return nil, ErrDiscountNotActive
	}

	return &models.DiscountValidationResponse{
		Valid:        true,
		EmployeeName: employee.EmployeeName,
		CompanyName:  company.CompanyName,
		Discount:     employee.Discount,
	}, nil
}

// RedeemDiscount records one use of a discount id: the employee's usage
// count and the company's booking count both go up by one.
func (s *Service) RedeemDiscount(ctx context.Context, discountID string) (*models.DiscountValidationResponse, error) {
	var result *models.DiscountValidationResponse

	// Both counters move inside one transaction so a failed redemption
	// leaves neither of them bumped.
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		var err error
		result, err = s.ValidateDiscount(txCtx, discountID)
		if err != nil {
			return err
		}

		employee, err := s.corporateRepo.GetEmployeeByDiscountID(txCtx, discountID)
		if err != nil {
			s.logger.Error("RedeemDiscount: repository error for %q: %v", discountID, err)
			return fmt.Errorf("%w: RedeemDiscount - repository error: %v", ErrInternal, err)
		}

		if err := s.corporateRepo.IncrementEmployeeUsage(txCtx, employee.ID); err != nil {
			s.logger.Error("RedeemDiscount: failed to increment usage for employee id=%d: %v", employee.ID, err)
			return fmt.Errorf("%w: RedeemDiscount - repository error: %v", ErrInternal, err)
		}
		if err := s.corporateRepo.IncrementCompanyBookings(txCtx, employee.CorporateCode); err != nil {
			s.logger.Error("RedeemDiscount: failed to increment bookings for %q: %v", employee.CorporateCode, err)
			return fmt.Errorf("%w: RedeemDiscount - repository error: %v", ErrInternal, err)
		}

		s.logger.Info("RedeemDiscount: discount %s redeemed (employee id=%d)", discountID, employee.ID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Stats returns the aggregate corporate figures.
func (s *Service) Stats(ctx context.Context) (*models.StatsResponse, error) {
	stats, err := s.corporateRepo.StatsSummary(ctx, topCompaniesLimit)
	if err != nil {
		s.logger.Error("Stats: repository error: %v", err)
		return nil, fmt.Errorf("%w: Stats - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainStats(stats), nil
}

func validateCompanyRequest(req *models.RegisterCompanyRequest) error {
	if strings.TrimSpace(req.CompanyName) == "" {
		return fmt.Errorf("%w: companyName is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.ContactPerson) == "" {
		return fmt.Errorf("%w: contactPerson is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if req.Discount < 0 || req.Discount > 100 {
		return fmt.Errorf("%w: discount must be between 0 and 100", ErrInvalidInput)
	}
	return nil
}

func validateEmployeeRequest(req *models.RegisterEmployeeRequest) error {
	if strings.TrimSpace(req.EmployeeName) == "" {
		return fmt.Errorf("%w: employeeName is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.EmployeePhone) == "" {
		return fmt.Errorf("%w: employeePhone is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.CorporateCode) == "" {
		return fmt.Errorf("%w: corporateCode is required", ErrInvalidInput)
	}
	return nil
}

// todayUTC truncates the current time to a calendar date.
func todayUTC() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// newCorporateCode builds a code like "CORP-3F9A21".
func newCorporateCode() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "CORP-" + id[:6]
}

// newDiscountID builds a counter discount id like "EMPD-7B3C91D4".
func newDiscountID() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return domain.DiscountIDPrefix + id[:8]
}
