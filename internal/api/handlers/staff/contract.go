package staff

import (
	"context"

	"github.com/anuratyres/ATS-ShopService/internal/service/staff/models"
)

type StaffService interface {
	Create(ctx context.Context, req *models.CreateStaffRequest) (*models.StaffResponse, error)
	List(ctx context.Context, req *models.ListStaffRequest) (*models.StaffListResponse, error)
	GetByID(ctx context.Context, id int64) (*models.StaffResponse, error)
	Update(ctx context.Context, id int64, req *models.UpdateStaffRequest) (*models.StaffResponse, error)
	AssignBay(ctx context.Context, id int64, req *models.AssignBayRequest) (*models.StaffResponse, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidStaffID     = "invalid staff id"
	msgStaffNotFound      = "staff member not found"
	msgBayOccupied        = "bay is already occupied"
)

type Handler struct {
	service StaffService
	logger  Logger
}

func NewHandler(service StaffService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}
