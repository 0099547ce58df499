package models

import (
	"time"

	"github.com/anuratyres/ATS-ShopService/internal/domain"
)

// Request models

// CreateItemRequest carries the new-item form.
type CreateItemRequest struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
	MinStock    int     `json:"minStock"`
	Price       float64 `json:"price"`
	Supplier    string  `json:"supplier,omitempty"`
	Description string  `json:"description,omitempty"`
}

// UpdateItemRequest carries the edit-item form.
type UpdateItemRequest struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
	MinStock    int     `json:"minStock"`
	Price       float64 `json:"price"`
	Supplier    string  `json:"supplier,omitempty"`
	Description string  `json:"description,omitempty"`
}

// RestockRequest carries the restock quantity.
type RestockRequest struct {
	Quantity int `json:"quantity"`
}

// ListItemsRequest carries the list filters from the query string.
type ListItemsRequest struct {
	Status   string `json:"status,omitempty"` // applied after derivation
	Category string `json:"category,omitempty"`
	Search   string `json:"search,omitempty"`
}

// Response models

// ItemResponse is the public inventory item representation. Status is
// derived on every read.
type ItemResponse struct {
	ID          int64     `json:"id"`
	Reference   string    `json:"reference"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Stock       int       `json:"stock"`
	MinStock    int       `json:"minStock"`
	Price       float64   `json:"price"`
	Supplier    string    `json:"supplier,omitempty"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ItemListResponse wraps an item list.
type ItemListResponse struct {
	Items []*ItemResponse `json:"items"`
	Total int             `json:"total"`
}

// FromDomainItem converts a domain item to the response model.
func FromDomainItem(i *domain.InventoryItem) *ItemResponse {
	return &ItemResponse{
		ID:          i.ID,
		Reference:   i.Reference,
		Name:        i.Name,
		Category:    i.Category,
		Stock:       i.Stock,
		MinStock:    i.MinStock,
		Price:       i.Price,
		Supplier:    i.Supplier,
		Description: i.Description,
		Status:      string(i.Status()),
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

// FromDomainItemList converts a domain item slice to the list response.
func FromDomainItemList(items []*domain.InventoryItem) *ItemListResponse {
	out := make([]*ItemResponse, 0, len(items))
	for _, i := range items {
		out = append(out, FromDomainItem(i))
	}
	return &ItemListResponse{Items: out, Total: len(out)}
}
