// Package get_catalog serves the static booking catalog: branches with
// their bookable categories, services, the daily time slots and the bay
// names the SPA forms render.
package get_catalog

import (
	"net/http"

	"github.com/anuratyres/ATS-ShopService/internal/api/handlers"
	"github.com/anuratyres/ATS-ShopService/internal/domain"
)

type BranchResponse struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Address            string   `json:"address"`
	Phone              string   `json:"phone"`
	Categories         []string `json:"categories"`
	MaxBookingsPerSlot int      `json:"maxBookingsPerSlot"`
}

type CategoryResponse struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

type ServiceResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

type CatalogResponse struct {
	Branches   []BranchResponse   `json:"branches"`
	Categories []CategoryResponse `json:"categories"`
	Services   []ServiceResponse  `json:"services"`
	TimeSlots  []string           `json:"timeSlots"`
	Bays       []string           `json:"bays"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Handle GET /api/v1/catalog
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	branches := make([]BranchResponse, 0, len(domain.Branches))
	for i := range domain.Branches {
		b := &domain.Branches[i]
		categories := domain.CategoriesForBranch(b)
		ids := make([]string, 0, len(categories))
		for _, c := range categories {
			ids = append(ids, c.ID)
		}
		branches = append(branches, BranchResponse{
			ID:                 b.ID,
			Name:               b.Name,
			Address:            b.Address,
			Phone:              b.Phone,
			Categories:         ids,
			MaxBookingsPerSlot: b.MaxBookingsPerSlot,
		})
	}

	categories := make([]CategoryResponse, 0, len(domain.ServiceCategories))
	for _, c := range domain.ServiceCategories {
		categories = append(categories, CategoryResponse{
			ID:          c.ID,
			Label:       c.Label,
			Description: c.Description,
		})
	}

	services := make([]ServiceResponse, 0, len(domain.Services))
	for _, s := range domain.Services {
		services = append(services, ServiceResponse{
			ID:       s.ID,
			Name:     s.Name,
			Category: s.Category,
		})
	}

	handlers.RespondJSON(w, http.StatusOK, CatalogResponse{
		Branches:   branches,
		Categories: categories,
		Services:   services,
		TimeSlots:  domain.TimeSlots,
		Bays:       domain.Bays,
	})
}
