package staff

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anuratyres/ATS-ShopService/internal/domain"
	staffRepo "github.com/anuratyres/ATS-ShopService/internal/infra/storage/staff"
	"github.com/anuratyres/ATS-ShopService/internal/service/staff/models"
	"github.com/anuratyres/ATS-ShopService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fakeStaffRepo is an in-memory StaffRepository.
type fakeStaffRepo struct {
	members map[int64]*domain.StaffMember
	nextID  int64
}

func newFakeStaffRepo() *fakeStaffRepo {
	return &fakeStaffRepo{members: map[int64]*domain.StaffMember{}, nextID: 1}
}

func (r *fakeStaffRepo) Create(_ context.Context, m *domain.StaffMember) (*domain.StaffMember, error) {
	out := *m
	out.ID = r.nextID
	out.CreatedAt = time.Now()
	out.UpdatedAt = out.CreatedAt
	r.members[out.ID] = &out
	r.nextID++
	return &out, nil
}

func (r *fakeStaffRepo) GetByID(_ context.Context, id int64) (*domain.StaffMember, error) {
	m, ok := r.members[id]
	if !ok {
		return nil, staffRepo.ErrStaffNotFound
	}
	return m, nil
}

func (r *fakeStaffRepo) GetByBay(_ context.Context, bay string) (*domain.StaffMember, error) {
	for _, m := range r.members {
		if m.Bay != nil && *m.Bay == bay {
			return m, nil
		}
	}
	return nil, staffRepo.ErrStaffNotFound
}

func (r *fakeStaffRepo) List(_ context.Context, _ domain.StaffFilter) ([]*domain.StaffMember, error) {
	out := make([]*domain.StaffMember, 0, len(r.members))
	for _, m := range r.members {
		out = append(out, m)
	}
	return out, nil
}

func (r *fakeStaffRepo) Update(_ context.Context, m *domain.StaffMember) (*domain.StaffMember, error) {
	existing, ok := r.members[m.ID]
	if !ok {
		return nil, staffRepo.ErrStaffNotFound
	}
	updated := *m
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now()
	r.members[m.ID] = &updated
	return &updated, nil
}

func (r *fakeStaffRepo) UpdateBay(_ context.Context, id int64, bay *string) (*domain.StaffMember, error) {
	m, ok := r.members[id]
	if !ok {
		return nil, staffRepo.ErrStaffNotFound
	}
	m.Bay = bay
	m.UpdatedAt = time.Now()
	return m, nil
}

func (r *fakeStaffRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.members[id]; !ok {
		return staffRepo.ErrStaffNotFound
	}
	delete(r.members, id)
	return nil
}

func newTestService(repo *fakeStaffRepo) *Service {
	return NewService(repo, fakeTxManager{}, nopLogger{})
}

func createMember(t *testing.T, svc *Service, name string, bay *string) *models.StaffResponse {
	t.Helper()
	res, err := svc.Create(context.Background(), &models.CreateStaffRequest{
		Name:    name,
		Role:    "Technician",
		Contact: "0771234567",
		Bay:     bay,
	})
	require.NoError(t, err)
	return res
}

func TestCreateDefaultsToAvailable(t *testing.T) {
	svc := newTestService(newFakeStaffRepo())

	res := createMember(t, svc, "Sunil Fernando", nil)
	assert.Equal(t, string(domain.StaffAvailable), res.Status)
	assert.Nil(t, res.Bay)
}

func TestCreateWithOccupiedBay(t *testing.T) {
	svc := newTestService(newFakeStaffRepo())
	createMember(t, svc, "Sunil Fernando", ptr.Ptr("Bay 1"))

	_, err := svc.Create(context.Background(), &models.CreateStaffRequest{
		Name:    "Ruwan Jayasuriya",
		Role:    "Technician",
		Contact: "0779876543",
		Bay:     ptr.Ptr("Bay 1"),
	})
	assert.ErrorIs(t, err, ErrBayOccupied)
}

func TestAssignBayConflict(t *testing.T) {
	svc := newTestService(newFakeStaffRepo())
	createMember(t, svc, "Sunil Fernando", ptr.Ptr("Bay 2"))
	second := createMember(t, svc, "Ruwan Jayasuriya", nil)

	_, err := svc.AssignBay(context.Background(), second.ID, &models.AssignBayRequest{Bay: ptr.Ptr("Bay 2")})
	assert.ErrorIs(t, err, ErrBayOccupied)
}

func TestAssignBayOwnBayIsIdempotent(t *testing.T) {
	svc := newTestService(newFakeStaffRepo())
	member := createMember(t, svc, "Sunil Fernando", ptr.Ptr("Bay 3"))

	res, err := svc.AssignBay(context.Background(), member.ID, &models.AssignBayRequest{Bay: ptr.Ptr("Bay 3")})
	require.NoError(t, err)
	require.NotNil(t, res.Bay)
	assert.Equal(t, "Bay 3", *res.Bay)
}

func TestAssignBayNilClears(t *testing.T) {
	repo := newFakeStaffRepo()
	svc := newTestService(repo)
	member := createMember(t, svc, "Sunil Fernando", ptr.Ptr("Bay 4"))

	res, err := svc.AssignBay(context.Background(), member.ID, &models.AssignBayRequest{Bay: nil})
	require.NoError(t, err)
	assert.Nil(t, res.Bay)

	// The freed bay is assignable again.
	second := createMember(t, svc, "Ruwan Jayasuriya", ptr.Ptr("Bay 4"))
	require.NotNil(t, second.Bay)
}

func TestAssignBayUnknownBay(t *testing.T) {
	svc := newTestService(newFakeStaffRepo())
	member := createMember(t, svc, "Sunil Fernando", nil)

	_, err := svc.AssignBay(context.Background(), member.ID, &models.AssignBayRequest{Bay: ptr.Ptr("Bay 9")})
	assert.ErrorIs(t, err, ErrInvalidBay)
}

func TestAssignBayUnknownMember(t *testing.T) {
	svc := newTestService(newFakeStaffRepo())

	_, err := svc.AssignBay(context.Background(), 404, &models.AssignBayRequest{Bay: ptr.Ptr("Bay 1")})
	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestUpdateKeepsBayCheck(t *testing.T) {
	svc := newTestService(newFakeStaffRepo())
	createMember(t, svc, "Sunil Fernando", ptr.Ptr("Bay 5"))
	second := createMember(t, svc, "Ruwan Jayasuriya", nil)

	_, err := svc.Update(context.Background(), second.ID, &models.UpdateStaffRequest{
		Name:    "Ruwan Jayasuriya",
		Role:    "Senior Technician",
		Status:  string(domain.StaffBusy),
		Contact: "0779876543",
		Bay:     ptr.Ptr("Bay 5"),
	})
	assert.ErrorIs(t, err, ErrBayOccupied)
}

func TestListInvalidStatusFilter(t *testing.T) {
	svc := newTestService(newFakeStaffRepo())

	_, err := svc.List(context.Background(), &models.ListStaffRequest{Status: "Sleeping"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
