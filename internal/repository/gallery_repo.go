package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"glamourstudio/internal/domain"
)

type GalleryRepository struct {
	db *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) *GalleryRepository {
	return &GalleryRepository{db: db}
}

type galleryItemModel struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Title     string    `gorm:"column:title;not null"`
	Category  string    `gorm:"column:category;not null"`
	ImageURL  string    `gorm:"column:image_url;not null"`
	IsActive  bool      `gorm:"column:is_active;default:true"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (galleryItemModel) TableName() string { return "gallery" }

func toDomainGalleryItem(m galleryItemModel) *domain.GalleryItem {
	return &domain.GalleryItem{
		ID:        m.ID,
		Title:     m.Title,
		Category:  m.Category,
		ImageURL:  m.ImageURL,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
	}
}

func toGalleryItemModel(g *domain.GalleryItem) galleryItemModel {
	return galleryItemModel{
		ID:        g.ID,
		Title:     g.Title,
		Category:  g.Category,
		ImageURL:  g.ImageURL,
		IsActive:  g.IsActive,
		CreatedAt: g.CreatedAt,
	}
}

func (r *GalleryRepository) Create(ctx context.Context, g *domain.GalleryItem) error {
	m := toGalleryItemModel(g)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*g = *toDomainGalleryItem(m)
	return nil
}

// List returns active gallery items newest id first. An empty category
// means no filter.
func (r *GalleryRepository) List(ctx context.Context, category string) ([]domain.GalleryItem, error) {
	q := r.db.WithContext(ctx).Model(&galleryItemModel{}).Where("is_active = ?", true).Order("id DESC")
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var rows []galleryItemModel
	if tx := q.Find(&rows); tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.GalleryItem, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainGalleryItem(m))
	}
	return out, nil
}

// Categories returns the distinct categories among active gallery items.
func (r *GalleryRepository) Categories(ctx context.Context) ([]string, error) {
	var cats []string
	tx := r.db.WithContext(ctx).
		Model(&galleryItemModel{}).
		Where("is_active = ?", true).
		Distinct().
		Pluck("category", &cats)
	return cats, tx.Error
}

func (r *GalleryRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	tx := r.db.WithContext(ctx).Model(&galleryItemModel{}).Count(&n)
	return n, tx.Error
}
