package create_booking

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anuratyres/ATS-ShopService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// fakeTxManager runs the function inline, no transaction involved.
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct {
	now time.Time
}

func (p fixedTime) Now() time.Time { return p.now }

type fakeBookingRepo struct {
	existing []*domain.Booking
	created  *domain.Booking
	nextID   int64
}

func (r *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	out := *b
	out.ID = r.nextID
	out.CreatedAt = time.Now()
	out.UpdatedAt = out.CreatedAt
	r.created = &out
	return &out, nil
}

func (r *fakeBookingRepo) List(_ context.Context, _ domain.BookingFilter) ([]*domain.Booking, error) {
	return r.existing, nil
}

func newTestUseCase(repo *fakeBookingRepo, now time.Time) *UseCase {
	uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func validRequest() *Request {
	return &Request{
		BranchID:   "1",
		Category:   domain.CategoryAnuraTyres,
		ServiceIDs: []string{"t1", "t3"},
		Date:       time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		TimeSlot:   "09:00",
		Customer: domain.Customer{
			Name:      "Kasun Perera",
			Phone:     "0771234567",
			Email:     "kasun@example.com",
			VehicleNo: "CAB-1234",
		},
		Amount: 12500,
	}
}

var testNow = time.Date(2026, 3, 10, 11, 30, 0, 0, time.UTC)

func TestExecuteCreatesBooking(t *testing.T) {
	repo := &fakeBookingRepo{nextID: 42}
	uc := newTestUseCase(repo, testNow)

	res, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), res.ID)
	assert.True(t, strings.HasPrefix(res.Reference, "BK-"), res.Reference)
	assert.Len(t, strings.TrimPrefix(res.Reference, "BK-"), 8)
	assert.Equal(t, domain.StatusPending, res.Status)
	assert.Equal(t, "Pannipitiya Branch", res.BranchName)
	require.Len(t, res.Services, 2)
	assert.Equal(t, "Wheel Alignment", res.Services[0].Name)
}

func TestExecuteRejectsFullSlot(t *testing.T) {
	// Pannipitiya allows 3 per slot; fill all three.
	repo := &fakeBookingRepo{
		existing: []*domain.Booking{
			{TimeSlot: "09:00", Status: domain.StatusPending},
			{TimeSlot: "09:00", Status: domain.StatusWaiting},
			{TimeSlot: "09:00", Status: domain.StatusCompleted},
		},
		nextID: 1,
	}
	uc := newTestUseCase(repo, testNow)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, repo.created, "no insert after a failed capacity check")
}

func TestExecuteCancelledBookingFreesSpot(t *testing.T) {
	repo := &fakeBookingRepo{
		existing: []*domain.Booking{
			{TimeSlot: "09:00", Status: domain.StatusPending},
			{TimeSlot: "09:00", Status: domain.StatusPending},
			{TimeSlot: "09:00", Status: domain.StatusCancelled},
		},
		nextID: 1,
	}
	uc := newTestUseCase(repo, testNow)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecuteUnknownBranch(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, testNow)

	req := validRequest()
	req.BranchID = "99"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrBranchNotFound)
}

func TestExecuteCategoryNotAtBranch(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, testNow)

	// Maharagama has no full service, so only tyre work is bookable there.
	req := validRequest()
	req.BranchID = "2"
	req.Category = "Mechanix"
	req.ServiceIDs = []string{"m1"}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrCategoryNotAvailable)
}

func TestExecuteServiceFromWrongCategory(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, testNow)

	req := validRequest()
	req.ServiceIDs = []string{"t1", "m1"}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecutePastDate(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, testNow)

	req := validRequest()
	req.Date = testNow.AddDate(0, 0, -1)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecuteSameDayIsBookable(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{nextID: 1}, testNow)

	req := validRequest()
	req.Date = time.Date(testNow.Year(), testNow.Month(), testNow.Day(), 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecuteInvalidTimeSlot(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, testNow)

	req := validRequest()
	req.TimeSlot = "12:30"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecuteValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing branch", func(r *Request) { r.BranchID = "" }},
		{"missing category", func(r *Request) { r.Category = "" }},
		{"no services", func(r *Request) { r.ServiceIDs = nil }},
		{"missing date", func(r *Request) { r.Date = time.Time{} }},
		{"missing slot", func(r *Request) { r.TimeSlot = "" }},
		{"missing customer name", func(r *Request) { r.Customer.Name = "  " }},
		{"missing customer phone", func(r *Request) { r.Customer.Phone = "" }},
		{"malformed email", func(r *Request) { r.Customer.Email = "not-an-email" }},
		{"negative amount", func(r *Request) { r.Amount = -1 }},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeBookingRepo{}, testNow)
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecuteDeduplicatesServices(t *testing.T) {
	repo := &fakeBookingRepo{nextID: 1}
	uc := newTestUseCase(repo, testNow)

	req := validRequest()
	req.ServiceIDs = []string{"t1", "t1", "t2"}

	res, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, res.Services, 2)
}
