package packages

// CreatePackageRequest is the admin payload for a new pricing package
type CreatePackageRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=255"`
	Description string  `json:"description" binding:"omitempty,max=2000"`
	BookingType string  `json:"booking_type" binding:"required,oneof=CAFE SENSORY_ROOM PLAYGROUND PARTY EVENT"`
	Price       float64 `json:"price" binding:"required,gte=0"`
	Capacity    int     `json:"capacity" binding:"required,min=1,max=500"`
}

// UpdatePackageRequest carries partial updates; nil fields stay unchanged
type UpdatePackageRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=2,max=255"`
	Description *string  `json:"description" binding:"omitempty,max=2000"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	Capacity    *int     `json:"capacity" binding:"omitempty,min=1,max=500"`
	Active      *bool    `json:"active"`
}
