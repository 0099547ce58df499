package inventory

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anuratyres/ATS-ShopService/internal/domain"
	inventoryRepo "github.com/anuratyres/ATS-ShopService/internal/infra/storage/inventory"
	"github.com/anuratyres/ATS-ShopService/internal/service/inventory/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeInventoryRepo struct {
	items  map[string]*domain.InventoryItem
	nextID int64
}

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{items: make(map[string]*domain.InventoryItem)}
}

func (r *fakeInventoryRepo) Create(_ context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error) {
	r.nextID++
	stored := *item
	stored.ID = r.nextID
	stored.Reference = fmt.Sprintf("INV-%03d", r.nextID)
	r.items[stored.Reference] = &stored
	out := stored
	return &out, nil
}

func (r *fakeInventoryRepo) GetByReference(_ context.Context, reference string) (*domain.InventoryItem, error) {
	item, ok := r.items[reference]
	if !ok {
		return nil, inventoryRepo.ErrItemNotFound
	}
	out := *item
	return &out, nil
}

func (r *fakeInventoryRepo) List(_ context.Context, filter domain.InventoryFilter) ([]*domain.InventoryItem, error) {
	var out []*domain.InventoryItem
	for id := int64(1); id <= r.nextID; id++ {
		for _, item := range r.items {
			if item.ID != id {
				continue
			}
			if filter.Category != "" && item.Category != filter.Category {
				continue
			}
			if filter.Search != "" && !strings.Contains(strings.ToLower(item.Name), strings.ToLower(filter.Search)) {
				continue
			}
			copied := *item
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeInventoryRepo) Update(_ context.Context, reference string, item *domain.InventoryItem) (*domain.InventoryItem, error) {
	existing, ok := r.items[reference]
	if !ok {
		return nil, inventoryRepo.ErrItemNotFound
	}
	updated := *item
	updated.ID = existing.ID
	updated.Reference = reference
	r.items[reference] = &updated
	out := updated
	return &out, nil
}

func (r *fakeInventoryRepo) AddStock(_ context.Context, reference string, quantity int) (*domain.InventoryItem, error) {
	existing, ok := r.items[reference]
	if !ok {
		return nil, inventoryRepo.ErrItemNotFound
	}
	existing.Stock += quantity
	out := *existing
	return &out, nil
}

func (r *fakeInventoryRepo) Delete(_ context.Context, reference string) error {
	if _, ok := r.items[reference]; !ok {
		return inventoryRepo.ErrItemNotFound
	}
	delete(r.items, reference)
	return nil
}

func newTestService() (*Service, *fakeInventoryRepo) {
	repo := newFakeInventoryRepo()
	return NewService(repo, nopLogger{}), repo
}

func seedItem(t *testing.T, svc *Service, name string, stock, minStock int) *models.ItemResponse {
	t.Helper()
	created, err := svc.Create(context.Background(), &models.CreateItemRequest{
		Name:     name,
		Category: "Tyres",
		Stock:    stock,
		MinStock: minStock,
		Price:    18500,
	})
	require.NoError(t, err)
	return created
}

func TestCreateDerivesStatus(t *testing.T) {
	svc, _ := newTestService()

	created := seedItem(t, svc, "205/55R16 Radial", 4, 10)

	assert.Equal(t, "INV-001", created.Reference)
	assert.Equal(t, string(domain.StockLow), created.Status)
}

func TestCreateValidatesFields(t *testing.T) {
	svc, repo := newTestService()

	tests := []struct {
		name string
		req  *models.CreateItemRequest
	}{
		{"empty name", &models.CreateItemRequest{Name: "  ", Category: "Tyres", Stock: 1, MinStock: 1, Price: 100}},
		{"empty category", &models.CreateItemRequest{Name: "Valve caps", Stock: 1, MinStock: 1, Price: 100}},
		{"negative stock", &models.CreateItemRequest{Name: "Valve caps", Category: "Parts", Stock: -1, MinStock: 1, Price: 100}},
		{"negative min stock", &models.CreateItemRequest{Name: "Valve caps", Category: "Parts", Stock: 1, MinStock: -1, Price: 100}},
		{"negative price", &models.CreateItemRequest{Name: "Valve caps", Category: "Parts", Stock: 1, MinStock: 1, Price: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
	assert.Empty(t, repo.items)
}

func TestListFiltersOnDerivedStatus(t *testing.T) {
	svc, _ := newTestService()

	seedItem(t, svc, "195/65R15 Radial", 0, 5)  // Out of Stock
	seedItem(t, svc, "205/55R16 Radial", 5, 5)  // Low Stock
	seedItem(t, svc, "225/45R17 Radial", 20, 5) // In Stock

	out, err := svc.List(context.Background(), &models.ListItemsRequest{Status: string(domain.StockLow)})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "205/55R16 Radial", out.Items[0].Name)
	assert.Equal(t, 1, out.Total)

	all, err := svc.List(context.Background(), &models.ListItemsRequest{})
	require.NoError(t, err)
	assert.Equal(t, 3, all.Total)
}

func TestRestockFlipsStatus(t *testing.T) {
	svc, _ := newTestService()

	created := seedItem(t, svc, "205/55R16 Radial", 3, 10)
	require.Equal(t, string(domain.StockLow), created.Status)

	updated, err := svc.Restock(context.Background(), created.Reference, &models.RestockRequest{Quantity: 20})
	require.NoError(t, err)

	assert.Equal(t, 23, updated.Stock)
	assert.Equal(t, string(domain.StockOK), updated.Status)
}

func TestRestockRejectsNonPositiveQuantity(t *testing.T) {
	svc, repo := newTestService()

	created := seedItem(t, svc, "205/55R16 Radial", 3, 10)

	for _, qty := range []int{0, -5} {
		_, err := svc.Restock(context.Background(), created.Reference, &models.RestockRequest{Quantity: qty})
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	}
	assert.Equal(t, 3, repo.items[created.Reference].Stock)
}

func TestRestockUnknownItem(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Restock(context.Background(), "INV-999", &models.RestockRequest{Quantity: 1})
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestUpdateKeepsReference(t *testing.T) {
	svc, _ := newTestService()

	created := seedItem(t, svc, "205/55R16 Radial", 3, 10)

	updated, err := svc.Update(context.Background(), created.Reference, &models.UpdateItemRequest{
		Name:     "205/55R16 Radial XL",
		Category: "Tyres",
		Stock:    12,
		MinStock: 10,
		Price:    19500,
	})
	require.NoError(t, err)

	assert.Equal(t, created.Reference, updated.Reference)
	assert.Equal(t, string(domain.StockOK), updated.Status)
}

func TestDeleteRemovesItem(t *testing.T) {
	svc, _ := newTestService()

	created := seedItem(t, svc, "205/55R16 Radial", 3, 10)

	require.NoError(t, svc.Delete(context.Background(), created.Reference))

	_, err := svc.GetByReference(context.Background(), created.Reference)
	assert.ErrorIs(t, err, ErrItemNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), created.Reference), ErrItemNotFound)
}
