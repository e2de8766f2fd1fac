package catalog

import (
	"context"

	"glamourstudio/internal/domain"
)

type ServiceRepository interface {
	List(ctx context.Context, category string) ([]domain.Service, error)
	Categories(ctx context.Context) ([]string, error)
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

type GalleryRepository interface {
	List(ctx context.Context, category string) ([]domain.GalleryItem, error)
	Categories(ctx context.Context) ([]string, error)
}

type TestimonialRepository interface {
	List(ctx context.Context, limit int) ([]domain.Testimonial, error)
}
