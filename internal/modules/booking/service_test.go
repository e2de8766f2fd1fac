package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"glamourstudio/internal/domain"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil {
		b.ID = 42 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockRepository) List(ctx context.Context, status string) ([]domain.Booking, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockRepository) UpdateStatus(ctx context.Context, id int64, status string) (int64, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func validRequest() CreateBookingRequest {
	return CreateBookingRequest{
		Name:    "Asha",
		Phone:   "9876543210",
		Service: "Bridal Makeup",
		Date:    "2025-03-01",
		Time:    "10:00 AM",
	}
}

func TestService_CreateBooking_Success(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(repo)

	b, err := service.CreateBooking(context.Background(), validRequest())

	assert.NoError(t, err)
	assert.NotNil(t, b)
	assert.Equal(t, int64(42), b.ID)
	assert.Equal(t, domain.BookingPending, b.Status)
	repo.AssertCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_CreateBooking_TrimsAndStrips(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(repo)

	req := validRequest()
	req.Name = "  Asha  "
	req.Phone = "98 765 432 10"
	req.Service = " Bridal Makeup "
	req.Notes = "  please call after 6  "

	b, err := service.CreateBooking(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, "Asha", b.Name)
	assert.Equal(t, "9876543210", b.Phone)
	assert.Equal(t, "Bridal Makeup", b.Service)
	assert.Equal(t, "please call after 6", b.Notes)
}

func TestService_CreateBooking_InvalidPhone(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo)

	for _, phone := range []string{"", "123456789", "12345678901", "98765abcde"} {
		req := validRequest()
		req.Phone = phone

		b, err := service.CreateBooking(context.Background(), req)

		assert.Nil(t, b)
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Messages, "Valid 10-digit phone number is required")
	}

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_CreateBooking_CollectsAllViolations(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo)

	b, err := service.CreateBooking(context.Background(), CreateBookingRequest{})

	assert.Nil(t, b)
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{
		"Name is required",
		"Valid 10-digit phone number is required",
		"Service is required",
		"Date is required",
		"Time is required",
	}, vErr.Messages)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_CreateBooking_BlankName(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo)

	req := validRequest()
	req.Name = "   "

	_, err := service.CreateBooking(context.Background(), req)

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"Name is required"}, vErr.Messages)
}

func TestService_CreateBooking_EmailOptional(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	service := NewService(repo)

	// absent email is fine
	_, err := service.CreateBooking(context.Background(), validRequest())
	assert.NoError(t, err)

	// present but malformed email is not
	req := validRequest()
	req.Email = "not-an-email"
	_, err = service.CreateBooking(context.Background(), req)

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"Invalid email format"}, vErr.Messages)
}

func TestService_ListBookings_TotalCountsWholeTable(t *testing.T) {
	repo := new(MockRepository)
	repo.On("List", mock.Anything, "pending").Return([]domain.Booking{{ID: 1, Status: domain.BookingPending}}, nil)
	repo.On("Count", mock.Anything).Return(int64(5), nil)

	service := NewService(repo)

	rows, total, err := service.ListBookings(context.Background(), "pending")

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	// total deliberately ignores the status filter
	assert.Equal(t, int64(5), total)
}

func TestService_UpdateStatus_AnyTransitionAllowed(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo)

	for _, status := range []string{"confirmed", "pending", "cancelled", "completed"} {
		repo.On("UpdateStatus", mock.Anything, int64(7), status).Return(int64(1), nil).Once()
		assert.NoError(t, service.UpdateStatus(context.Background(), 7, status))
	}
	repo.AssertExpectations(t)
}

func TestService_UpdateStatus_InvalidValue(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo)

	err := service.UpdateStatus(context.Background(), 7, "archived")

	assert.ErrorIs(t, err, ErrInvalidStatus)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}
