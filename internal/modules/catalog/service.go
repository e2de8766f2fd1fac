package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"glamourstudio/internal/domain"
)

// GalleryAllCategory is the sentinel the front-end sends to mean "no
// category filter".
const GalleryAllCategory = "All"

// maxTestimonialLimit caps the testimonials limit query parameter.
const maxTestimonialLimit = 50

type Service struct {
	services     ServiceRepository
	gallery      GalleryRepository
	testimonials TestimonialRepository
}

func NewService(
	services ServiceRepository,
	gallery GalleryRepository,
	testimonials TestimonialRepository,
) *Service {
	return &Service{
		services:     services,
		gallery:      gallery,
		testimonials: testimonials,
	}
}

// Services returns active services ordered by id, optionally filtered by
// category.
func (s *Service) Services(ctx context.Context, category string) ([]domain.Service, error) {
	return s.services.List(ctx, category)
}

// ServiceCategories returns the distinct categories among active services.
func (s *Service) ServiceCategories(ctx context.Context) ([]string, error) {
	return s.services.Categories(ctx)
}

// ServiceByID returns the service with the given id, active or not.
func (s *Service) ServiceByID(ctx context.Context, id int64) (*domain.Service, error) {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return svc, nil
}

// Gallery returns active gallery items newest first. The "All" sentinel
// (or an empty category) means no filter.
func (s *Service) Gallery(ctx context.Context, category string) ([]domain.GalleryItem, error) {
	if category == GalleryAllCategory {
		category = ""
	}
	return s.gallery.List(ctx, category)
}

// GalleryCategories returns the distinct active categories with "All"
// prepended.
func (s *Service) GalleryCategories(ctx context.Context) ([]string, error) {
	cats, err := s.gallery.Categories(ctx)
	if err != nil {
		return nil, err
	}
	return append([]string{GalleryAllCategory}, cats...), nil
}

// Testimonials returns active testimonials newest first. A non-positive
// limit means all; anything above the cap is clamped.
func (s *Service) Testimonials(ctx context.Context, limit int) ([]domain.Testimonial, error) {
	if limit > maxTestimonialLimit {
		limit = maxTestimonialLimit
	}
	if limit < 0 {
		limit = 0
	}
	return s.testimonials.List(ctx, limit)
}
