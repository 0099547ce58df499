package models

import (
	"time"

	"github.com/anuratyres/ATS-ShopService/internal/domain"
)

// Request models

// CreateStaffRequest carries the new-member form.
type CreateStaffRequest struct {
	Name             string  `json:"name"`
	Role             string  `json:"role"`
	Status           string  `json:"status,omitempty"` // defaults to Available
	Contact          string  `json:"contact"`
	Email            string  `json:"email,omitempty"`
	Bay              *string `json:"bay,omitempty"`
	EmergencyContact string  `json:"emergencyContact,omitempty"`
}

// UpdateStaffRequest carries the edit-member form.
type UpdateStaffRequest struct {
	Name             string  `json:"name"`
	Role             string  `json:"role"`
	Status           string  `json:"status"`
	Contact          string  `json:"contact"`
	Email            string  `json:"email,omitempty"`
	Bay              *string `json:"bay,omitempty"`
	EmergencyContact string  `json:"emergencyContact,omitempty"`
}

// AssignBayRequest carries a bay assignment; a nil bay clears it.
type AssignBayRequest struct {
	Bay *string `json:"bay"`
}

// ListStaffRequest carries the list filters from the query string.
type ListStaffRequest struct {
	Status string `json:"status,omitempty"`
	Search string `json:"search,omitempty"`
}

// Response models

// StaffResponse is the public staff member representation.
type StaffResponse struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Role             string    `json:"role"`
	Status           string    `json:"status"`
	Contact          string    `json:"contact"`
	Email            string    `json:"email,omitempty"`
	Bay              *string   `json:"bay,omitempty"`
	EmergencyContact string    `json:"emergencyContact,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// StaffListResponse wraps a staff list.
type StaffListResponse struct {
	Staff []*StaffResponse `json:"staff"`
	Total int              `json:"total"`
}

// FromDomainStaff converts a domain staff member to the response model.
func FromDomainStaff(m *domain.StaffMember) *StaffResponse {
	return &StaffResponse{
		ID:               m.ID,
		Name:             m.Name,
		Role:             m.Role,
		Status:           string(m.Status),
		Contact:          m.Contact,
		Email:            m.Email,
		Bay:              m.Bay,
		EmergencyContact: m.EmergencyContact,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// FromDomainStaffList converts a domain staff slice to the list response.
func FromDomainStaffList(members []*domain.StaffMember) *StaffListResponse {
	out := make([]*StaffResponse, 0, len(members))
	for _, m := range members {
		out = append(out, FromDomainStaff(m))
	}
	return &StaffListResponse{Staff: out, Total: len(out)}
}
