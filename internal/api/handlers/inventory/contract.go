package inventory

import (
	"context"

	"github.com/anuratyres/ATS-ShopService/internal/service/inventory/models"
)

type InventoryService interface {
	Create(ctx context.Context, req *models.CreateItemRequest) (*models.ItemResponse, error)
	List(ctx context.Context, req *models.ListItemsRequest) (*models.ItemListResponse, error)
	GetByReference(ctx context.Context, reference string) (*models.ItemResponse, error)
	Update(ctx context.Context, reference string, req *models.UpdateItemRequest) (*models.ItemResponse, error)
	Restock(ctx context.Context, reference string, req *models.RestockRequest) (*models.ItemResponse, error)
	Delete(ctx context.Context, reference string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

const (
	msgInvalidRequestBody = "invalid request body"
	msgItemNotFound       = "inventory item not found"
)

type Handler struct {
	service InventoryService
	logger  Logger
}

func NewHandler(service InventoryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}
