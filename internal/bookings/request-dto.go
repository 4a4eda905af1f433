package bookings

// CreateBookingRequest is the public booking form payload
type CreateBookingRequest struct {
	CustomerName  string `json:"customer_name" binding:"required,min=2,max=255"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
	CustomerPhone string `json:"customer_phone" binding:"omitempty,max=32"`
	Type          string `json:"type" binding:"required,oneof=CAFE SENSORY_ROOM PLAYGROUND PARTY EVENT"`
	PackageID     string `json:"package_id" binding:"omitempty,uuid"`
	EventID       string `json:"event_id" binding:"omitempty,uuid"`
	Date          string `json:"date" binding:"required,datetime=2006-01-02"`
	Time          string `json:"time" binding:"required,datetime=15:04"`
	PartySize     int    `json:"party_size" binding:"required,min=1,max=100"`
	Notes         string `json:"notes" binding:"omitempty,max=2000"`
}

// UpdateStatusRequest is the admin status transition payload
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=APPROVED REJECTED CANCELLED COMPLETED"`
}

// ListQuery filters the admin booking list
type ListQuery struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Status   string `form:"status" binding:"omitempty,oneof=PENDING APPROVED REJECTED CANCELLED COMPLETED"`
	Type     string `form:"type" binding:"omitempty,oneof=CAFE SENSORY_ROOM PLAYGROUND PARTY EVENT"`
	DateFrom string `form:"date_from" binding:"omitempty,datetime=2006-01-02"`
	DateTo   string `form:"date_to" binding:"omitempty,datetime=2006-01-02"`
	Email    string `form:"email" binding:"omitempty,email"`
}
