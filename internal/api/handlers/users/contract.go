package users

import (
	"context"

	"github.com/anuratyres/ATS-ShopService/internal/service/users/models"
)

type UserService interface {
	List(ctx context.Context) (*models.UserListResponse, error)
	GetByID(ctx context.Context, id int64) (*models.UserResponse, error)
	Create(ctx context.Context, req *models.CreateUserRequest) (*models.UserResponse, error)
	Update(ctx context.Context, id int64, req *models.UpdateUserRequest) (*models.UserResponse, error)
	ChangePassword(ctx context.Context, id int64, req *models.ChangePasswordRequest) error
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidUserID      = "invalid user id"
	msgUserNotFound       = "user not found"
	msgDuplicateUsername  = "username already exists"
)

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}
