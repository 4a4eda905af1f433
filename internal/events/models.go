package events

import (
	"time"

	"github.com/google/uuid"
)

// Status is the event lifecycle state
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// IsValid checks if the event status is valid
func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// CanTransitionTo reports whether an event may move from s to next.
// Drafts publish or cancel; published events cancel or complete.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusDraft:
		return next == StatusPublished || next == StatusCancelled
	case StatusPublished:
		return next == StatusCancelled || next == StatusCompleted
	}
	return false
}

// Event is a scheduled happening at the venue (workshop, themed day,
// birthday open house). Only published events are visible to the public.
type Event struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name        string     `json:"name" gorm:"not null;size:255"`
	Description string     `json:"description" gorm:"type:text"`
	DateTime    time.Time  `json:"date_time" gorm:"not null;index"`
	Capacity    int        `json:"capacity" gorm:"not null;check:capacity > 0"`
	Price       float64    `json:"price" gorm:"not null;check:price >= 0"`
	Status      Status     `json:"status" gorm:"type:varchar(20);default:'draft';index"`
	ImageURL    string     `json:"image_url" gorm:"size:500"`
	CreatedBy   uuid.UUID  `json:"created_by" gorm:"type:uuid;not null"`
	UpdatedBy   *uuid.UUID `json:"updated_by" gorm:"type:uuid"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName sets the table name for Event
func (Event) TableName() string {
	return "events"
}

type EventResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	DateTime    time.Time `json:"date_time"`
	Capacity    int       `json:"capacity"`
	Price       float64   `json:"price"`
	Status      Status    `json:"status"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateEventRequest struct {
	Name        string    `json:"name" binding:"required,min=3,max=255"`
	Description string    `json:"description" binding:"max=2000"`
	DateTime    time.Time `json:"date_time" binding:"required"`
	Capacity    int       `json:"capacity" binding:"required,min=1,max=10000"`
	Price       float64   `json:"price" binding:"min=0"`
	ImageURL    string    `json:"image_url" binding:"omitempty,url"`
}

type UpdateEventRequest struct {
	Name        *string    `json:"name" binding:"omitempty,min=3,max=255"`
	Description *string    `json:"description" binding:"omitempty,max=2000"`
	DateTime    *time.Time `json:"date_time"`
	Capacity    *int       `json:"capacity" binding:"omitempty,min=1,max=10000"`
	Price       *float64   `json:"price" binding:"omitempty,min=0"`
	Status      *string    `json:"status" binding:"omitempty,oneof=draft published cancelled completed"`
	ImageURL    *string    `json:"image_url" binding:"omitempty,url"`
}

type EventListQuery struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Search   string `form:"search"`
	DateFrom string `form:"date_from" binding:"omitempty,datetime=2006-01-02"`
	DateTo   string `form:"date_to" binding:"omitempty,datetime=2006-01-02"`
	Status   string `form:"status" binding:"omitempty,oneof=draft published cancelled completed"`
}

type PaginatedEvents struct {
	Events     []EventResponse `json:"events"`
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
}

// ToResponse converts an Event to its API shape
func (e *Event) ToResponse() EventResponse {
	return EventResponse{
		ID:          e.ID.String(),
		Name:        e.Name,
		Description: e.Description,
		DateTime:    e.DateTime,
		Capacity:    e.Capacity,
		Price:       e.Price,
		Status:      e.Status,
		ImageURL:    e.ImageURL,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
