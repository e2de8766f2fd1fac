package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"glamourstudio/internal/domain"
)

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

type contactMessageModel struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string    `gorm:"column:name;not null"`
	Email     string    `gorm:"column:email;not null"`
	Phone     *string   `gorm:"column:phone"`
	Message   string    `gorm:"column:message;not null"`
	Status    string    `gorm:"column:status;default:unread"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (contactMessageModel) TableName() string { return "contact_messages" }

func toDomainContactMessage(m contactMessageModel) *domain.ContactMessage {
	var phone string
	if m.Phone != nil {
		phone = *m.Phone
	}

	return &domain.ContactMessage{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     phone,
		Message:   m.Message,
		Status:    domain.ContactStatus(m.Status),
		CreatedAt: m.CreatedAt,
	}
}

func toContactMessageModel(c *domain.ContactMessage) contactMessageModel {
	var phone *string
	if c.Phone != "" {
		v := c.Phone
		phone = &v
	}

	return contactMessageModel{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     phone,
		Message:   c.Message,
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt,
	}
}

func (r *ContactRepository) Create(ctx context.Context, c *domain.ContactMessage) error {
	m := toContactMessageModel(c)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*c = *toDomainContactMessage(m)
	return nil
}

// List returns contact messages newest first. An empty status means no filter.
func (r *ContactRepository) List(ctx context.Context, status string) ([]domain.ContactMessage, error) {
	q := r.db.WithContext(ctx).Model(&contactMessageModel{}).Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var rows []contactMessageModel
	if tx := q.Find(&rows); tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.ContactMessage, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainContactMessage(m))
	}
	return out, nil
}

func (r *ContactRepository) UpdateStatus(ctx context.Context, id int64, status string) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&contactMessageModel{}).Where("id = ?", id).Update("status", status)
	return tx.RowsAffected, tx.Error
}

func (r *ContactRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	tx := r.db.WithContext(ctx).Model(&contactMessageModel{}).Count(&n)
	return n, tx.Error
}
