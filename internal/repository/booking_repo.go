package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"glamourstudio/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string    `gorm:"column:name;not null"`
	Phone     string    `gorm:"column:phone;not null"`
	Email     *string   `gorm:"column:email"`
	Service   string    `gorm:"column:service;not null"`
	Date      string    `gorm:"column:date;not null"`
	Time      string    `gorm:"column:time;not null"`
	Notes     *string   `gorm:"column:notes"`
	Status    string    `gorm:"column:status;default:pending"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var email, notes string
	if m.Email != nil {
		email = *m.Email
	}
	if m.Notes != nil {
		notes = *m.Notes
	}

	return &domain.Booking{
		ID:        m.ID,
		Name:      m.Name,
		Phone:     m.Phone,
		Email:     email,
		Service:   m.Service,
		Date:      m.Date,
		Time:      m.Time,
		Notes:     notes,
		Status:    domain.BookingStatus(m.Status),
		CreatedAt: m.CreatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	var email, notes *string
	if b.Email != "" {
		v := b.Email
		email = &v
	}
	if b.Notes != "" {
		v := b.Notes
		notes = &v
	}

	return bookingModel{
		ID:        b.ID,
		Name:      b.Name,
		Phone:     b.Phone,
		Email:     email,
		Service:   b.Service,
		Date:      b.Date,
		Time:      b.Time,
		Notes:     notes,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

// List returns bookings newest first. An empty status means no filter.
func (r *BookingRepository) List(ctx context.Context, status string) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).Model(&bookingModel{}).Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var rows []bookingModel
	if tx := q.Find(&rows); tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// UpdateStatus sets the status of one booking. Updating an id that does
// not exist is not an error; it simply affects zero rows.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status string) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).Where("id = ?", id).Update("status", status)
	return tx.RowsAffected, tx.Error
}

// Count counts the whole table, ignoring any status filter.
func (r *BookingRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).Count(&n)
	return n, tx.Error
}
