package models

import (
	"time"

	"github.com/anuratyres/ATS-ShopService/internal/domain"
)

// Request models

// LoginRequest carries the login form.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateUserRequest carries the new-account form.
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// UpdateUserRequest carries the edit-account form.
type UpdateUserRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// ChangePasswordRequest carries a password reset.
type ChangePasswordRequest struct {
	Password string `json:"password"`
}

// Response models

// UserResponse is the public account representation. The password hash
// never appears in any response.
type UserResponse struct {
	ID          int64      `json:"id"`
	Username    string     `json:"username"`
	Name        string     `json:"name"`
	Role        string     `json:"role"`
	Permissions []string   `json:"permissions"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastLogin   *time.Time `json:"lastLogin,omitempty"`
}

// LoginResponse carries the session token and the profile.
type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// UserListResponse wraps a user list.
type UserListResponse struct {
	Users []*UserResponse `json:"users"`
	Total int             `json:"total"`
}

// FromDomainUser converts a domain user to the response model.
func FromDomainUser(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Name:        u.Name,
		Role:        string(u.Role),
		Permissions: domain.PermissionsForRole(u.Role),
		CreatedAt:   u.CreatedAt,
		LastLogin:   u.LastLogin,
	}
}

// FromDomainUserList converts a domain user slice to the list response.
func FromDomainUserList(users []*domain.User) *UserListResponse {
	out := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, FromDomainUser(u))
	}
	return &UserListResponse{Users: out, Total: len(out)}
}
