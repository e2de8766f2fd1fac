package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"glamourstudio/internal/domain"
)

type TestimonialRepository struct {
	db *gorm.DB
}

func NewTestimonialRepository(db *gorm.DB) *TestimonialRepository {
	return &TestimonialRepository{db: db}
}

type testimonialModel struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string    `gorm:"column:name;not null"`
	Role      string    `gorm:"column:role"`
	Content   string    `gorm:"column:content;not null"`
	Rating    int       `gorm:"column:rating;default:5"`
	IsActive  bool      `gorm:"column:is_active;default:true"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (testimonialModel) TableName() string { return "testimonials" }

func toDomainTestimonial(m testimonialModel) *domain.Testimonial {
	return &domain.Testimonial{
		ID:        m.ID,
		Name:      m.Name,
		Role:      m.Role,
		Content:   m.Content,
		Rating:    m.Rating,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
	}
}

func toTestimonialModel(t *domain.Testimonial) testimonialModel {
	return testimonialModel{
		ID:        t.ID,
		Name:      t.Name,
		Role:      t.Role,
		Content:   t.Content,
		Rating:    t.Rating,
		IsActive:  t.IsActive,
		CreatedAt: t.CreatedAt,
	}
}

func (r *TestimonialRepository) Create(ctx context.Context, t *domain.Testimonial) error {
	m := toTestimonialModel(t)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*t = *toDomainTestimonial(m)
	return nil
}

// List returns active testimonials newest id first. A limit of zero or
// less means no limit; the limit is bound through the query builder, never
// interpolated into SQL text.
func (r *TestimonialRepository) List(ctx context.Context, limit int) ([]domain.Testimonial, error) {
	q := r.db.WithContext(ctx).Model(&testimonialModel{}).Where("is_active = ?", true).Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var rows []testimonialModel
	if tx := q.Find(&rows); tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Testimonial, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainTestimonial(m))
	}
	return out, nil
}

func (r *TestimonialRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	tx := r.db.WithContext(ctx).Model(&testimonialModel{}).Count(&n)
	return n, tx.Error
}
