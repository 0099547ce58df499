package staff

import (
	"context"

	"github.com/anuratyres/ATS-ShopService/internal/domain"
)

// StaffRepository is the staff storage surface the service needs.
type StaffRepository interface {
	Create(ctx context.Context, m *domain.StaffMember) (*domain.StaffMember, error)
	GetByID(ctx context.Context, id int64) (*domain.StaffMember, error)
	GetByBay(ctx context.Context, bay string) (*domain.StaffMember, error)
	List(ctx context.Context, filter domain.StaffFilter) ([]*domain.StaffMember, error)
	Update(ctx context.Context, m *domain.StaffMember) (*domain.StaffMember, error)
	UpdateBay(ctx context.Context, id int64, bay *string) (*domain.StaffMember, error)
	Delete(ctx context.Context, id int64) error
}

// TransactionManager runs the bay occupancy check and assignment atomically.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging surface the service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
