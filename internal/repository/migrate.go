package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the five tables. Safe to run on every
// startup.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&bookingModel{},
		&contactMessageModel{},
		&serviceModel{},
		&galleryItemModel{},
		&testimonialModel{},
	)
}
