package packages

import (
	"time"

	"github.com/google/uuid"

	"xplorium/internal/bookings"
)

// Package is a priced offering for one venue area. Bookings reference a
// package; revenue reporting joins through it for the price.
type Package struct {
	ID          uuid.UUID     `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string        `gorm:"uniqueIndex;not null;size:255" json:"name"`
	Description string        `gorm:"type:text" json:"description,omitempty"`
	BookingType bookings.Type `gorm:"type:varchar(20);not null;check:booking_type IN ('CAFE', 'SENSORY_ROOM', 'PLAYGROUND', 'PARTY', 'EVENT')" json:"booking_type"`
	Price       float64       `gorm:"type:decimal(10,2);not null;check:price >= 0" json:"price"`
	Capacity    int           `gorm:"not null;check:capacity > 0" json:"capacity"`
	Active      bool          `gorm:"default:true;index" json:"active"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// TableName sets the table name for Package
func (Package) TableName() string {
	return "packages"
}
