package inventory

import (
	"context"

	"github.com/anuratyres/ATS-ShopService/internal/domain"
)

// InventoryRepository is the inventory storage surface the service needs.
type InventoryRepository interface {
	Create(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error)
	GetByReference(ctx context.Context, reference string) (*domain.InventoryItem, error)
	List(ctx context.Context, filter domain.InventoryFilter) ([]*domain.InventoryItem, error)
	Update(ctx context.Context, reference string, item *domain.InventoryItem) (*domain.InventoryItem, error)
	AddStock(ctx context.Context, reference string, quantity int) (*domain.InventoryItem, error)
	Delete(ctx context.Context, reference string) error
}

// Logger is the logging surface the service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
