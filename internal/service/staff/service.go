package staff

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anuratyres/ATS-ShopService/internal/domain"
	staffRepo "github.com/anuratyres/ATS-ShopService/internal/infra/storage/staff"
	"github.com/anuratyres/ATS-ShopService/internal/service/staff/models"
)

// Service handles the staff roster and bay assignments.
type Service struct {
	staffRepo StaffRepository
	txManager TransactionManager
	logger    Logger
}

// NewService creates a new staff service.
func NewService(staffRepo StaffRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		staffRepo: staffRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Create adds a staff member. An initial bay assignment goes through the
// same occupancy check as AssignBay.
func (s *Service) Create(ctx context.Context, req *models.CreateStaffRequest) (*models.StaffResponse, error) {
	s.logger.Info("Create: adding staff member %q", req.Name)

	status := domain.StaffAvailable
	if req.Status != "" {
		status = domain.StaffStatus(req.Status)
		if !domain.IsValidStaffStatus(status) {
			s.logger.Warn("Create: invalid status %q", req.Status)
			return nil, ErrInvalidStatus
		}
	}

	if err := validateStaffFields(req.Name, req.Role, req.Contact); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}
	if err := validateBay(req.Bay); err != nil {
		s.logger.Warn("Create: invalid bay: %v", err)
		return nil, err
	}

	member := &domain.StaffMember{
		Name:             strings.TrimSpace(req.Name),
		Role:             req.Role,
		Status:           status,
		Contact:          req.Contact,
		Email:            req.Email,
		Bay:              req.Bay,
		EmergencyContact: req.EmergencyContact,
	}

	var created *domain.StaffMember
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if member.Bay != nil {
			if err := s.checkBayFree(txCtx, *member.Bay, 0); err != nil {
				return err
			}
		}

		var err error
		created, err = s.staffRepo.Create(txCtx, member)
		if err != nil {
			s.logger.Error("Create: repository error: %v", err)
			return fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Create: staff member id=%d created", created.ID)
	return models.FromDomainStaff(created), nil
}

// List fetches staff members with optional status and search filters.
func (s *Service) List(ctx context.Context, req *models.ListStaffRequest) (*models.StaffListResponse, error) {
	filter := domain.StaffFilter{Search: req.Search}

	if req.Status != "" {
		status := domain.StaffStatus(req.Status)
		if !domain.IsValidStaffStatus(status) {
			s.logger.Warn("List: invalid status filter %q", req.Status)
			return nil, ErrInvalidStatus
		}
		filter.Status = &status
	}

	members, err := s.staffRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainStaffList(members), nil
}

// GetByID fetches a staff member by id.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.StaffResponse, error) {
	member, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			s.logger.Warn("GetByID: staff member id=%d not found", id)
			return nil, ErrStaffNotFound
		}
		s.logger.Error("GetByID: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainStaff(member), nil
}

// Update overwrites the editable fields of a staff member. A changed bay
// goes through the occupancy check.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateStaffRequest) (*models.StaffResponse, error) {
	s.logger.Info("Update: editing staff member id=%d", id)

	status := domain.StaffStatus(req.Status)
	if !domain.IsValidStaffStatus(status) {
		s.logger.Warn("Update: invalid status %q for id=%d", req.Status, id)
		return nil, ErrInvalidStatus
	}
	if err := validateStaffFields(req.Name, req.Role, req.Contact); err != nil {
		s.logger.Warn("Update: validation failed for id=%d: %v", id, err)
		return nil, err
	}
	if err := validateBay(req.Bay); err != nil {
		s.logger.Warn("Update: invalid bay for id=%d: %v", id, err)
		return nil, err
	}

	var updated *domain.StaffMember
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if req.Bay != nil {
			if err := s.checkBayFree(txCtx, *req.Bay, id); err != nil {
				return err
			}
		}

		member := &domain.StaffMember{
			ID:               id,
			Name:             strings.TrimSpace(req.Name),
			Role:             req.Role,
			Status:           status,
			Contact:          req.Contact,
			Email:            req.Email,
			Bay:              req.Bay,
			EmergencyContact: req.EmergencyContact,
		}

		var err error
		updated, err = s.staffRepo.Update(txCtx, member)
		if err != nil {
			if errors.Is(err, staffRepo.ErrStaffNotFound) {
				return ErrStaffNotFound
			}
			s.logger.Error("Update: repository error for id=%d: %v", id, err)
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return models.FromDomainStaff(updated), nil
}

// AssignBay assigns a bay to a staff member or, with a nil bay, frees the
// current one. The occupancy check and the write run in one serializable
// transaction so two members cannot end up in the same bay.
func (s *Service) AssignBay(ctx context.Context, id int64, req *models.AssignBayRequest) (*models.StaffResponse, error) {
	if req.Bay != nil {
		s.logger.Info("AssignBay: staff member id=%d -> %s", id, *req.Bay)
	} else {
		s.logger.Info("AssignBay: staff member id=%d -> none", id)
	}

	if err := validateBay(req.Bay); err != nil {
		s.logger.Warn("AssignBay: invalid bay for id=%d: %v", id, err)
		return nil, err
	}

	var updated *domain.StaffMember
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if req.Bay != nil {
			if err := s.checkBayFree(txCtx, *req.Bay, id); err != nil {
				return err
			}
		}

		var err error
		updated, err = s.staffRepo.UpdateBay(txCtx, id, req.Bay)
		if err != nil {
			if errors.Is(err, staffRepo.ErrStaffNotFound) {
				return ErrStaffNotFound
			}
			s.logger.Error("AssignBay: repository error for id=%d: %v", id, err)
			return fmt.Errorf("%w: AssignBay - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return models.FromDomainStaff(updated), nil
}

// Delete removes a staff member permanently, freeing their bay.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: removing staff member id=%d", id)

	if err := s.staffRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			s.logger.Warn("Delete: staff member id=%d not found", id)
			return ErrStaffNotFound
		}
		s.logger.Error("Delete: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	return nil
}

// checkBayFree fails with ErrBayOccupied when bay is held by a member other
// than selfID. Reassigning a member their own bay is allowed.
func (s *Service) checkBayFree(ctx context.Context, bay string, selfID int64) error {
	holder, err := s.staffRepo.GetByBay(ctx, bay)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			return nil
		}
		s.logger.Error("checkBayFree: repository error for bay %q: %v", bay, err)
		return fmt.Errorf("%w: checkBayFree - repository error: %v", ErrInternal, err)
	}

	if holder.ID != selfID {
		s.logger.Warn("checkBayFree: bay %q held by staff member id=%d", bay, holder.ID)
		return ErrBayOccupied
	}
	return nil
}

func validateStaffFields(name, role, contact string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}
	if strings.TrimSpace(role) == "" {
		return fmt.Errorf("%w: role is required", ErrInvalidInput)
	}
	if strings.TrimSpace(contact) == "" {
		return fmt.Errorf("%w: contact is required", ErrInvalidInput)
	}
	return nil
}

func validateBay(bay *string) error {
	if bay == nil {
		return nil
	}
	if !domain.IsValidBay(*bay) {
		return fmt.Errorf("%w: %q", ErrInvalidBay, *bay)
	}
	return nil
}
