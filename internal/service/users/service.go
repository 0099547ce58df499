package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/anuratyres/ATS-ShopService/internal/domain"
	userRepo "github.com/anuratyres/ATS-ShopService/internal/infra/storage/users"
	"github.com/anuratyres/ATS-ShopService/internal/service/users/models"
)

const minPasswordLength = 6

// Bootstrap credentials seeded when the users table is empty, so a fresh
// install can log in and create real accounts.
const (
	bootstrapUsername = "admin"
	bootstrapPassword = "admin123"
)

// Service handles authentication and account management. Passwords are
// bcrypt-hashed; plaintext exists only inside a request.
type Service struct {
	userRepo UserRepository
	tokens   TokenIssuer
	logger   Logger
}

// NewService creates a new users service.
func NewService(userRepo UserRepository, tokens TokenIssuer, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// Login authenticates a user and issues a session token. Field validation
// runs before any store access, and credential failures are reported with
// one generic error regardless of which part was wrong.
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	if strings.TrimSpace(req.Username) == "" {
		return nil, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	if req.Password == "" {
		return nil, fmt.Errorf("%w: password is required", ErrInvalidInput)
	}

	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: unknown username %q", req.Username)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for username %q: %v", req.Username, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: password mismatch for username %q", req.Username)
		return nil, ErrInvalidCredentials
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		// Login still succeeds; the stamp is best-effort.
		s.logger.Error("Login: failed to stamp last login for user id=%d: %v", user.ID, err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		s.logger.Error("Login: failed to issue token for user id=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: Login - token error: %v", ErrInternal, err)
	}

	s.logger.Info("Login: user %q (id=%d) logged in", user.Username, user.ID)
	return &models.LoginResponse{
		Token: token,
		User:  models.FromDomainUser(user),
	}, nil
}

// GetByID fetches a user by id.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetByID: repository error for user id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainUser(user), nil
}

// List fetches all accounts.
func (s *Service) List(ctx context.Context) (*models.UserListResponse, error) {
	usersList, err := s.userRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainUserList(usersList), nil
}

// Create adds an account with a hashed password.
func (s *Service) Create(ctx context.Context, req *models.CreateUserRequest) (*models.UserResponse, error) {
	s.logger.Info("Create: adding user %q", req.Username)

	if err := validateUserFields(req.Username, req.Name, req.Role); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}
	if len(req.Password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Create: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Create - hash error: %v", ErrInternal, err)
	}

	user := &domain.User{
		Username:     strings.TrimSpace(req.Username),
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(req.Name),
		Role:         domain.Role(req.Role),
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, userRepo.ErrDuplicateUsername) {
			s.logger.Warn("Create: username %q already exists", req.Username)
			return nil, ErrDuplicateUsername
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: user %q (id=%d) created", created.Username, created.ID)
	return models.FromDomainUser(created), nil
}

// Update overwrites the profile fields of an account.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateUserRequest) (*models.UserResponse, error) {
	s.logger.Info("Update: editing user id=%d", id)

	if err := validateUserFields(req.Username, req.Name, req.Role); err != nil {
		s.logger.Warn("Update: validation failed for user id=%d: %v", id, err)
		return nil, err
	}

	user := &domain.User{
		ID:       id,
		Username: strings.TrimSpace(req.Username),
		Name:     strings.TrimSpace(req.Name),
		Role:     domain.Role(req.Role),
	}

	updated, err := s.userRepo.Update(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, userRepo.ErrUserNotFound):
			return nil, ErrUserNotFound
		case errors.Is(err, userRepo.ErrDuplicateUsername):
			s.logger.Warn("Update: username %q already exists", req.Username)
			return nil, ErrDuplicateUsername
		}
		s.logger.Error("Update: repository error for user id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainUser(updated), nil
}

// ChangePassword replaces an account's password.
func (s *Service) ChangePassword(ctx context.Context, id int64, req *models.ChangePasswordRequest) error {
	s.logger.Info("ChangePassword: user id=%d", id)

	if len(req.Password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("ChangePassword: failed to hash password: %v", err)
		return fmt.Errorf("%w: ChangePassword - hash error: %v", ErrInternal, err)
	}

	if err := s.userRepo.UpdatePassword(ctx, id, string(hash)); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return ErrUserNotFound
		}
		s.logger.Error("ChangePassword: repository error for user id=%d: %v", id, err)
		return fmt.Errorf("%w: ChangePassword - repository error: %v", ErrInternal, err)
	}

	return nil
}

// Delete removes an account permanently.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: removing user id=%d", id)

	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return ErrUserNotFound
		}
		s.logger.Error("Delete: repository error for user id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	return nil
}

// Bootstrap seeds the default admin account when the users table is empty.
// Called once at startup.
func (s *Service) Bootstrap(ctx context.Context) error {
	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("%w: Bootstrap - count error: %v", ErrInternal, err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(bootstrapPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("%w: Bootstrap - hash error: %v", ErrInternal, err)
	}

	_, err = s.userRepo.Create(ctx, &domain.User{
		Username:     bootstrapUsername,
		PasswordHash: string(hash),
		Name:         "Administrator",
		Role:         domain.RoleSuperAdmin,
	})
	if err != nil {
		// A concurrent instance may have seeded first.
		if errors.Is(err, userRepo.ErrDuplicateUsername) {
			return nil
		}
		return fmt.Errorf("%w: Bootstrap - create error: %v", ErrInternal, err)
	}

	s.logger.Warn("Bootstrap: seeded default admin account, change its password")
	return nil
}

func validateUserFields(username, name, role string) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !domain.IsValidRole(domain.Role(role)) {
		return ErrInvalidRole
	}
	return nil
}
