package bookings

import "time"

// BookingResponse is the API shape for a single booking
type BookingResponse struct {
	ID            string    `json:"id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	CustomerPhone string    `json:"customer_phone,omitempty"`
	Type          string    `json:"type"`
	Status        string    `json:"status"`
	PackageID     string    `json:"package_id,omitempty"`
	EventID       string    `json:"event_id,omitempty"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	PartySize     int       `json:"party_size"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// PaginatedBookings wraps a booking page for the admin list
type PaginatedBookings struct {
	Bookings   []BookingResponse `json:"bookings"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}

// ToResponse converts a Booking to its API shape
func (b *Booking) ToResponse() BookingResponse {
	resp := BookingResponse{
		ID:            b.ID.String(),
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		Type:          string(b.Type),
		Status:        string(b.Status),
		Date:          b.Date.Format("2006-01-02"),
		Time:          b.Time,
		PartySize:     b.PartySize,
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
	if b.PackageID != nil {
		resp.PackageID = b.PackageID.String()
	}
	if b.EventID != nil {
		resp.EventID = b.EventID.String()
	}
	return resp
}
