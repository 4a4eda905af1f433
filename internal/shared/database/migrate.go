package database

import (
	"xplorium/internal/bookings"
	"xplorium/internal/content"
	"xplorium/internal/events"
	"xplorium/internal/notifications"
	"xplorium/internal/packages"
	"xplorium/internal/users"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&packages.Package{},
		&events.Event{},
		&bookings.Booking{},
		&content.Block{},
		&notifications.Preference{},
	)
}
