package repository

import "gorm.io/gorm"

// AutoMigrate creates the record tables if they are missing.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&AnimalRecord{}, &AseoRecord{})
}
