package booking

import (
	"context"
	"strings"

	"glamourstudio/internal/domain"
	"glamourstudio/internal/pkg/validator"
)

var validationMessages = map[string]string{
	"Name":    "Name is required",
	"Phone":   "Valid 10-digit phone number is required",
	"Email":   "Invalid email format",
	"Service": "Service is required",
	"Date":    "Date is required",
	"Time":    "Time is required",
}

type Service struct {
	bookings Repository
}

func NewService(bookings Repository) *Service {
	return &Service{bookings: bookings}
}

// CreateBooking validates the form, inserts the row with status pending,
// and returns it with the store-assigned id and created_at.
func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	if errs := validator.Check(req, validationMessages); len(errs) > 0 {
		return nil, &ValidationError{Messages: errs}
	}

	b := &domain.Booking{
		Name:    strings.TrimSpace(req.Name),
		Phone:   validator.StripWhitespace(req.Phone),
		Email:   strings.TrimSpace(req.Email),
		Service: strings.TrimSpace(req.Service),
		Date:    req.Date,
		Time:    req.Time,
		Notes:   strings.TrimSpace(req.Notes),
		Status:  domain.BookingPending,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// ListBookings returns bookings newest first, optionally filtered by
// status. The total is always the whole-table count, so with a status
// filter it can exceed the number of rows returned.
func (s *Service) ListBookings(ctx context.Context, status string) ([]domain.Booking, int64, error) {
	rows, err := s.bookings.List(ctx, status)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.bookings.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// UpdateStatus sets a booking's status. Any of the four statuses may
// follow any other; there is no transition rule and no existence check on
// the id.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) error {
	if !domain.IsValidBookingStatus(status) {
		return ErrInvalidStatus
	}
	_, err := s.bookings.UpdateStatus(ctx, id, status)
	return err
}
