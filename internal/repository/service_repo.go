package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"glamourstudio/internal/domain"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

type serviceModel struct {
	ID          int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string `gorm:"column:name;not null"`
	Description string `gorm:"column:description"`
	Price       string `gorm:"column:price"`
	Category    string `gorm:"column:category"`
	Icon        string `gorm:"column:icon"`
	Features    string `gorm:"column:features"`
	IsActive    bool   `gorm:"column:is_active;default:true"`
}

func (serviceModel) TableName() string { return "services" }

// encodeFeatures / decodeFeatures are the storage boundary for the
// features column: a comma-joined string on disk, a list in memory.
// Known limitation: a feature label containing a literal comma will be
// split into two labels on read. There is no escaping mechanism.
func encodeFeatures(features []string) string {
	return strings.Join(features, ",")
}

func decodeFeatures(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}

func toDomainService(m serviceModel) *domain.Service {
	return &domain.Service{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Category:    m.Category,
		Icon:        m.Icon,
		Features:    decodeFeatures(m.Features),
		IsActive:    m.IsActive,
	}
}

func toServiceModel(s *domain.Service) serviceModel {
	return serviceModel{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
		Category:    s.Category,
		Icon:        s.Icon,
		Features:    encodeFeatures(s.Features),
		IsActive:    s.IsActive,
	}
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	m := toServiceModel(s)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*s = *toDomainService(m)
	return nil
}

// List returns active services ordered by id. An empty category means no
// filter.
func (r *ServiceRepository) List(ctx context.Context, category string) ([]domain.Service, error) {
	q := r.db.WithContext(ctx).Model(&serviceModel{}).Where("is_active = ?", true).Order("id ASC")
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var rows []serviceModel
	if tx := q.Find(&rows); tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Service, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainService(m))
	}
	return out, nil
}

// Categories returns the distinct categories among active services.
func (r *ServiceRepository) Categories(ctx context.Context) ([]string, error) {
	var cats []string
	tx := r.db.WithContext(ctx).
		Model(&serviceModel{}).
		Where("is_active = ?", true).
		Distinct().
		Pluck("category", &cats)
	return cats, tx.Error
}

// GetByID looks up one service by id. The active flag is deliberately not
// filtered here, unlike List.
func (r *ServiceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	var m serviceModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainService(m), nil
}

func (r *ServiceRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	tx := r.db.WithContext(ctx).Model(&serviceModel{}).Count(&n)
	return n, tx.Error
}
