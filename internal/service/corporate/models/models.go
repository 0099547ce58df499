package models

import (
	"time"

	"github.com/anuratyres/ATS-ShopService/internal/domain"
)

// Request models

// RegisterCompanyRequest carries the partner registration form.
type RegisterCompanyRequest struct {
	CompanyName   string `json:"companyName"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	BusinessType  string `json:"businessType,omitempty"`
	TaxID         string `json:"taxId,omitempty"`
	Address       string `json:"address,omitempty"`
	Employees     string `json:"employees,omitempty"` // headcount band
	CorporateCode string `json:"corporateCode,omitempty"`
	Discount      int    `json:"discount"`
}

// RegisterEmployeeRequest carries the employee registration form.
type RegisterEmployeeRequest struct {
	EmployeeName  string `json:"employeeName"`
	EmployeeEmail string `json:"employeeEmail,omitempty"`
	EmployeePhone string `json:"employeePhone"`
	CorporateCode string `json:"corporateCode"`
	VehicleNo     string `json:"vehicleNo,omitempty"`
	Department    string `json:"department,omitempty"`
	EmployeeID    string `json:"employeeId,omitempty"`
}

// UpdateCompanyStatusRequest carries a company status change.
type UpdateCompanyStatusRequest struct {
	Status string `json:"status"`
}

// UpdateEmployeeStatusRequest carries an employee status change.
type UpdateEmployeeStatusRequest struct {
	Status string `json:"status"`
}

// ListCompaniesRequest carries the list filters from the query string.
type ListCompaniesRequest struct {
	Status string `json:"status,omitempty"`
	Search string `json:"search,omitempty"`
}

// ListEmployeesRequest carries the list filters from the query string.
type ListEmployeesRequest struct {
	CorporateCode string `json:"corporateCode,omitempty"`
	Status        string `json:"status,omitempty"`
	Search        string `json:"search,omitempty"`
}

// Response models

// CompanyResponse is the public company representation.
type CompanyResponse struct {
	ID             int64     `json:"id"`
	CompanyName    string    `json:"companyName"`
	ContactPerson  string    `json:"contactPerson"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	BusinessType   string    `json:"businessType,omitempty"`
	TaxID          string    `json:"taxId,omitempty"`
	Address        string    `json:"address,omitempty"`
	Employees      string    `json:"employees,omitempty"`
	CorporateCode  string    `json:"corporateCode"`
	Discount       int       `json:"discount"`
	Status         string    `json:"status"`
	RegisteredDate string    `json:"registeredDate"`
	BookingCount   int       `json:"bookingCount"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// EmployeeResponse is the public employee representation.
type EmployeeResponse struct {
	ID                 int64     `json:"id"`
	EmployeeName       string    `json:"employeeName"`
	EmployeeEmail      string    `json:"employeeEmail,omitempty"`
	EmployeePhone      string    `json:"employeePhone"`
	CorporateCode      string    `json:"corporateCode"`
	CompanyName        string    `json:"companyName"`
	VehicleNo          string    `json:"vehicleNo,omitempty"`
	Department         string    `json:"department,omitempty"`
	EmployeeID         string    `json:"employeeId,omitempty"`
	EmployeeDiscountID string    `json:"employeeDiscountId"`
	Discount           int       `json:"discount"`
	Status             string    `json:"status"`
	RegisteredDate     string    `json:"registeredDate"`
	UsageCount         int       `json:"usageCount"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// CompanyListResponse wraps a company list.
type CompanyListResponse struct {
	Companies []*CompanyResponse `json:"companies"`
	Total     int                `json:"total"`
}

// EmployeeListResponse wraps an employee list.
type EmployeeListResponse struct {
	Employees []*EmployeeResponse `json:"employees"`
	Total     int                 `json:"total"`
}

// CompanyWithEmployees is one entry of the complete corporate view.
type CompanyWithEmployees struct {
	CompanyResponse
	EmployeeList []*EmployeeResponse `json:"employeeList"`
}

// CompleteResponse is the companies-with-employees view.
type CompleteResponse struct {
	Companies []*CompanyWithEmployees `json:"companies"`
	Total     int                     `json:"total"`
}

// DiscountValidationResponse answers a discount id lookup from the booking
// form.
type DiscountValidationResponse struct {
	Valid        bool   `json:"valid"`
	EmployeeName string `json:"employeeName"`
	CompanyName  string `json:"companyName"`
	Discount     int    `json:"discount"`
}

// TopCompanyResponse ranks one company in the stats panel.
type TopCompanyResponse struct {
	CompanyName   string `json:"companyName"`
	EmployeeCount int    `json:"employeeCount"`
	BookingCount  int    `json:"bookingCount"`
}

// StatsResponse is the aggregate corporate view.
type StatsResponse struct {
	TotalCompanies     int                   `json:"totalCompanies"`
	ActiveCompanies    int                   `json:"activeCompanies"`
	TotalEmployees     int                   `json:"totalEmployees"`
	ActiveEmployees    int                   `json:"activeEmployees"`
	TotalBookings      int                   `json:"totalBookings"`
	TotalDiscountGiven int                   `json:"totalDiscountGiven"`
	TopCompanies       []*TopCompanyResponse `json:"topCompanies"`
}

// FromDomainCompany converts a domain company to the response model.
func FromDomainCompany(c *domain.CorporateCompany) *CompanyResponse {
	return &CompanyResponse{
		ID:             c.ID,
		CompanyName:    c.CompanyName,
		ContactPerson:  c.ContactPerson,
		Email:          c.Email,
		Phone:          c.Phone,
		BusinessType:   c.BusinessType,
		TaxID:          c.TaxID,
		Address:        c.Address,
		Employees:      c.Employees,
		CorporateCode:  c.CorporateCode,
		Discount:       c.Discount,
		Status:         string(c.Status),
		RegisteredDate: c.RegisteredDate.Format(domain.DateFormat),
		BookingCount:   c.BookingCount,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// FromDomainCompanyList converts a domain company slice to the list response.
func FromDomainCompanyList(companies []*domain.CorporateCompany) *CompanyListResponse {
	out := make([]*CompanyResponse, 0, len(companies))
	for _, c := range companies {
		out = append(out, FromDomainCompany(c))
	}
	return &CompanyListResponse{Companies: out, Total: len(out)}
}

// FromDomainEmployee converts a domain employee to the response model.
func FromDomainEmployee(e *domain.Employee) *EmployeeResponse {
	return &EmployeeResponse{
		ID:                 e.ID,
		EmployeeName:       e.EmployeeName,
		EmployeeEmail:      e.EmployeeEmail,
		EmployeePhone:      e.EmployeePhone,
		CorporateCode:      e.CorporateCode,
		CompanyName:        e.CompanyName,
		VehicleNo:          e.VehicleNo,
		Department:         e.Department,
		EmployeeID:         e.EmployeeID,
		EmployeeDiscountID: e.EmployeeDiscountID,
		Discount:           e.Discount,
		Status:             string(e.Status),
		RegisteredDate:     e.RegisteredDate.Format(domain.DateFormat),
		UsageCount:         e.UsageCount,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}

// FromDomainEmployeeList converts a domain employee slice to the list
// response.
func FromDomainEmployeeList(employees []*domain.Employee) *EmployeeListResponse {
	out := make([]*EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, FromDomainEmployee(e))
	}
	return &EmployeeListResponse{Employees: out, Total: len(out)}
}

// FromDomainStats converts domain stats to the response model.
func FromDomainStats(s *domain.CorporateStats) *StatsResponse {
	top := make([]*TopCompanyResponse, 0, len(s.TopCompanies))
	for _, t := range s.TopCompanies {
		top = append(top, &TopCompanyResponse{
			CompanyName:   t.CompanyName,
			EmployeeCount: t.EmployeeCount,
			BookingCount:  t.BookingCount,
		})
	}
	return &StatsResponse{
		TotalCompanies:     s.TotalCompanies,
		ActiveCompanies:    s.ActiveCompanies,
		TotalEmployees:     s.TotalEmployees,
		ActiveEmployees:    s.ActiveEmployees,
		TotalBookings:      s.TotalBookings,
		TotalDiscountGiven: s.TotalDiscountGiven,
		TopCompanies:       top,
	}
}
