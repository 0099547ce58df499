package corporate

import (
	"context"

	"github.com/anuratyres/ATS-ShopService/internal/service/corporate/models"
)

type CorporateService interface {
	RegisterCompany(ctx context.Context, req *models.RegisterCompanyRequest) (*models.CompanyResponse, error)
	ListCompanies(ctx context.Context, req *models.ListCompaniesRequest) (*models.CompanyListResponse, error)
	UpdateCompanyStatus(ctx context.Context, id int64, req *models.UpdateCompanyStatusRequest) error
	RegisterEmployee(ctx context.Context, req *models.RegisterEmployeeRequest) (*models.EmployeeResponse, error)
	ListEmployees(ctx context.Context, req *models.ListEmployeesRequest) (*models.EmployeeListResponse, error)
	UpdateEmployeeStatus(ctx context.Context, id int64, req *models.UpdateEmployeeStatusRequest) error
	ValidateDiscount(ctx context.Context, discountID string) (*models.DiscountValidationResponse, error)
	RedeemDiscount(ctx context.Context, discountID string) (*models.DiscountValidationResponse, error)
	Complete(ctx context.Context) (*models.CompleteResponse, error)
	Stats(ctx context.Context) (*models.StatsResponse, error)
	ExportCompaniesCSV(ctx context.Context) ([]byte, error)
	ExportEmployeesCSV(ctx context.Context) ([]byte, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidID          = "invalid id"
	msgCompanyNotFound    = "company not found"
	msgEmployeeNotFound   = "employee not found"
	msgDuplicateCode      = "corporate code already exists"
	msgDiscountNotFound   = "discount id not found"
	msgDiscountNotActive  = "discount is not active"
)

type Handler struct {
	service CorporateService
	logger  Logger
}

func NewHandler(service CorporateService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}
