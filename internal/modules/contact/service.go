package contact

import (
	"context"
	"strings"

	"glamourstudio/internal/domain"
	"glamourstudio/internal/pkg/validator"
)

var validationMessages = map[string]string{
	"Name":    "Name is required",
	"Email":   "Valid email is required",
	"Message": "Message is required",
}

type Service struct {
	messages Repository
}

func NewService(messages Repository) *Service {
	return &Service{messages: messages}
}

// SubmitMessage validates the form and inserts the row with status unread.
func (s *Service) SubmitMessage(ctx context.Context, req SubmitMessageRequest) (*domain.ContactMessage, error) {
	if errs := validator.Check(req, validationMessages); len(errs) > 0 {
		return nil, &ValidationError{Messages: errs}
	}

	m := &domain.ContactMessage{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   strings.TrimSpace(req.Phone),
		Message: strings.TrimSpace(req.Message),
		Status:  domain.ContactUnread,
	}

	if err := s.messages.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// ListMessages mirrors booking listing: newest first, optional status
// filter, and a total that always counts the whole table.
func (s *Service) ListMessages(ctx context.Context, status string) ([]domain.ContactMessage, int64, error) {
	rows, err := s.messages.List(ctx, status)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.messages.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) error {
	if !domain.IsValidContactStatus(status) {
		return ErrInvalidStatus
	}
	_, err := s.messages.UpdateStatus(ctx, id, status)
	return err
}
