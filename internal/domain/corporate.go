package domain

import "time"

// CompanyStatus is the state of a corporate partner account.
type CompanyStatus string

const (
	CompanyActive    CompanyStatus = "active"
	CompanyInactive  CompanyStatus = "inactive"
	CompanySuspended CompanyStatus = "suspended"
)

// IsValidCompanyStatus reports whether s is a known company status.
func IsValidCompanyStatus(s CompanyStatus) bool {
	return s == CompanyActive || s == CompanyInactive || s == CompanySuspended
}

// EmployeeStatus is the state of a corporate employee record.
type EmployeeStatus string

const (
	EmployeeActive   EmployeeStatus = "active"
	EmployeeInactive EmployeeStatus = "inactive"
)

// IsValidEmployeeStatus reports whether s is a known employee status.
func IsValidEmployeeStatus(s EmployeeStatus) bool {
	return s == EmployeeActive || s == EmployeeInactive
}

// CompanyFilter narrows corporate company listings.
type CompanyFilter struct {
	Status *CompanyStatus
	Search string
}

// EmployeeFilter narrows corporate employee listings.
type EmployeeFilter struct {
	CorporateCode string
	Status        *EmployeeStatus
	Search        string
}

// CorporateCompany is a partnered company whose employees book at a discount,
// grouped under a unique corporate code.
type CorporateCompany struct {
	ID             int64
	CompanyName    string
	ContactPerson  string
	Email          string
	Phone          string
	BusinessType   string
	TaxID          string
	Address        string
	Employees      string // declared headcount band, display string
	CorporateCode  string // unique
	Discount       int    // percent
	Status         CompanyStatus
	RegisteredDate time.Time
	BookingCount   int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Employee belongs to a corporate company, referenced by corporate code.
type Employee struct {
	ID                 int64
	EmployeeName       string
	EmployeeEmail      string
	EmployeePhone      string
	CorporateCode      string
	CompanyName        string
	VehicleNo          string
	Department         string
	EmployeeID         string // company-internal id
	EmployeeDiscountID string // server-assigned, e.g. "EMPD-7B3C91D4"
	Discount           int
	Status             EmployeeStatus
	RegisteredDate     time.Time
	UsageCount         int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// CorporateStats is the aggregate view served by the corporate stats endpoint.
type CorporateStats struct {
	TotalCompanies     int
	ActiveCompanies    int
	TotalEmployees     int
	ActiveEmployees    int
	TotalBookings      int
	TotalDiscountGiven int
	TopCompanies       []TopCompany
}

// TopCompany ranks companies by employee count for the stats panel.
type TopCompany struct {
	CompanyName   string
	EmployeeCount int
	BookingCount  int
}
