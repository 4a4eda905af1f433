package bookings

import (
	"time"

	"github.com/google/uuid"
)

// Booking is a reservation for one of the venue areas. Date and Time are
// immutable once the booking is created; only the status moves.
type Booking struct {
	ID            uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CustomerName  string     `gorm:"not null;size:255" json:"customer_name"`
	CustomerEmail string     `gorm:"index;not null;size:255" json:"customer_email"`
	CustomerPhone string     `gorm:"size:32" json:"customer_phone,omitempty"`
	Type          Type       `gorm:"type:varchar(20);not null;check:type IN ('CAFE', 'SENSORY_ROOM', 'PLAYGROUND', 'PARTY', 'EVENT')" json:"type"`
	Status        Status     `gorm:"type:varchar(20);default:'PENDING';check:status IN ('PENDING', 'APPROVED', 'REJECTED', 'CANCELLED', 'COMPLETED')" json:"status"`
	PackageID     *uuid.UUID `gorm:"type:uuid;index" json:"package_id,omitempty"`
	EventID       *uuid.UUID `gorm:"type:uuid;index" json:"event_id,omitempty"`
	Date          time.Time  `gorm:"type:date;not null;index" json:"date"`
	Time          string     `gorm:"type:varchar(5);not null" json:"time"` // "HH:MM"
	PartySize     int        `gorm:"not null;check:party_size > 0" json:"party_size"`
	Notes         string     `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// TableName sets the table name for Booking
func (Booking) TableName() string {
	return "bookings"
}

// IsPending reports whether the booking still awaits an admin decision
func (b *Booking) IsPending() bool {
	return b.Status == StatusPending
}

// IsActive reports whether the booking still occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusApproved
}

// Transition moves the booking to the next status, stamping UpdatedAt
func (b *Booking) Transition(next Status) bool {
	if !b.Status.CanTransitionTo(next) {
		return false
	}
	b.Status = next
	b.UpdatedAt = time.Now()
	return true
}
