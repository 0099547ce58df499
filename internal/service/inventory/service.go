package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anuratyres/ATS-ShopService/internal/domain"
	inventoryRepo "github.com/anuratyres/ATS-ShopService/internal/infra/storage/inventory"
	"github.com/anuratyres/ATS-ShopService/internal/service/inventory/models"
)

// Service handles the inventory catalog. Stock status is derived from the
// counts on every read and never persisted.
type Service struct {
	inventoryRepo InventoryRepository
	logger        Logger
}

// NewService creates a new inventory service.
func NewService(inventoryRepo InventoryRepository, logger Logger) *Service {
	return &Service{
		inventoryRepo: inventoryRepo,
		logger:        logger,
	}
}

// Create adds an item and assigns its reference.
func (s *Service) Create(ctx context.Context, req *models.CreateItemRequest) (*models.ItemResponse, error) {
	s.logger.Info("Create: adding item %q", req.Name)

	if err := validateItemFields(req.Name, req.Category, req.Stock, req.MinStock, req.Price); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	item := &domain.InventoryItem{
		Name:        strings.TrimSpace(req.Name),
		Category:    req.Category,
		Stock:       req.Stock,
		MinStock:    req.MinStock,
		Price:       req.Price,
		Supplier:    req.Supplier,
		Description: req.Description,
	}

	created, err := s.inventoryRepo.Create(ctx, item)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: item %s created", created.Reference)
	return models.FromDomainItem(created), nil
}

// List fetches items with optional category, search and derived-status
// filters. The status filter runs here, after derivation, because the
// database never sees a status value.
func (s *Service) List(ctx context.Context, req *models.ListItemsRequest) (*models.ItemListResponse, error) {
	filter := domain.InventoryFilter{
		Category: req.Category,
		Search:   req.Search,
	}

	items, err := s.inventoryRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	if req.Status != "" {
		want := domain.InventoryStatus(req.Status)
		filtered := items[:0]
		for _, i := range items {
			if i.Status() == want {
				filtered = append(filtered, i)
			}
		}
		items = filtered
	}

	return models.FromDomainItemList(items), nil
}

// GetByReference fetches an item by its reference.
func (s *Service) GetByReference(ctx context.Context, reference string) (*models.ItemResponse, error) {
	item, err := s.inventoryRepo.GetByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, inventoryRepo.ErrItemNotFound) {
			s.logger.Warn("GetByReference: item %s not found", reference)
			return nil, ErrItemNotFound
		}
		s.logger.Error("GetByReference: repository error for item %s: %v", reference, err)
		return nil, fmt.Errorf("%w: GetByReference - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainItem(item), nil
}

// Update overwrites the editable fields of an item.
func (s *Service) Update(ctx context.Context, reference string, req *models.UpdateItemRequest) (*models.ItemResponse, error) {
	s.logger.Info("Update: editing item %s", reference)

	if err := validateItemFields(req.Name, req.Category, req.Stock, req.MinStock, req.Price); err != nil {
		s.logger.Warn("Update: validation failed for item %s: %v", reference, err)
		return nil, err
	}

	item := &domain.InventoryItem{
		Name:        strings.TrimSpace(req.Name),
		Category:    req.Category,
		Stock:       req.Stock,
		MinStock:    req.MinStock,
		Price:       req.Price,
		Supplier:    req.Supplier,
		Description: req.Description,
	}

	updated, err := s.inventoryRepo.Update(ctx, reference, item)
	if err != nil {
		if errors.Is(err, inventoryRepo.ErrItemNotFound) {
			s.logger.Warn("Update: item %s not found", reference)
			return nil, ErrItemNotFound
		}
		s.logger.Error("Update: repository error for item %s: %v", reference, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainItem(updated), nil
}

// Restock adds quantity to an item's stock. The returned item carries the
// freshly derived status, so a low item restocked past its minimum comes
// back as In Stock with no separate status write.
func (s *Service) Restock(ctx context.Context, reference string, req *models.RestockRequest) (*models.ItemResponse, error) {
	s.logger.Info("Restock: item %s +%d", reference, req.Quantity)

	if req.Quantity <= 0 {
		s.logger.Warn("Restock: rejected non-positive quantity %d for item %s", req.Quantity, reference)
		return nil, ErrInvalidQuantity
	}

	updated, err := s.inventoryRepo.AddStock(ctx, reference, req.Quantity)
	if err != nil {
		if errors.Is(err, inventoryRepo.ErrItemNotFound) {
			s.logger.Warn("Restock: item %s not found", reference)
			return nil, ErrItemNotFound
		}
		s.logger.Error("Restock: repository error for item %s: %v", reference, err)
		return nil, fmt.Errorf("%w: Restock - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Restock: item %s now at %d (%s)", reference, updated.Stock, updated.Status())
	return models.FromDomainItem(updated), nil
}

// Delete removes an item permanently.
func (s *Service) Delete(ctx context.Context, reference string) error {
	s.logger.Info("Delete: removing item %s", reference)

	if err := s.inventoryRepo.Delete(ctx, reference); err != nil {
		if errors.Is(err, inventoryRepo.ErrItemNotFound) {
			s.logger.Warn("Delete: item %s not found", reference)
			return ErrItemNotFound
		}
		s.logger.Error("Delete: repository error for item %s: %v", reference, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	return nil
}

func validateItemFields(name, category string, stock, minStock int, price float64) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(category) == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidInput)
	}
	if stock < 0 {
		return fmt.Errorf("%w: stock must not be negative", ErrInvalidInput)
	}
	if minStock < 0 {
		return fmt.Errorf("%w: minStock must not be negative", ErrInvalidInput)
	}
	if price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	return nil
}
