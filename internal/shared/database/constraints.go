package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds indexes the dashboard aggregation queries lean on.
func MigrateConstraints(db *gorm.DB) error {
	// Bookings are scanned by creation window for trend metrics
	err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_bookings_created_at
		ON bookings (created_at);
	`).Error
	if err != nil {
		return err
	}

	// Visit-date histograms group on the booking date
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_bookings_date
		ON bookings (date);
	`).Error
	if err != nil {
		return err
	}

	// Revenue joins filter on status before joining packages
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_bookings_status_package
		ON bookings (status, package_id);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
