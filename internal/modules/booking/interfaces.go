package booking

import (
	"context"

	"glamourstudio/internal/domain"
)

// Repository defines the storage operations the booking module needs.
type Repository interface {
	Create(ctx context.Context, b *domain.Booking) error
	List(ctx context.Context, status string) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status string) (int64, error)
	Count(ctx context.Context) (int64, error)
}
