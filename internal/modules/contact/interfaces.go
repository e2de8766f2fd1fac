package contact

import (
	"context"

	"glamourstudio/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, m *domain.ContactMessage) error
	List(ctx context.Context, status string) ([]domain.ContactMessage, error)
	UpdateStatus(ctx context.Context, id int64, status string) (int64, error)
	Count(ctx context.Context) (int64, error)
}
