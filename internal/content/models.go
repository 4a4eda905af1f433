package content

import (
	"time"

	"github.com/google/uuid"
)

// Block is a slugged, editable chunk of marketing-site copy (opening hours,
// about text, FAQ entries). The public site fetches blocks by slug.
type Block struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Slug      string     `json:"slug" gorm:"uniqueIndex;not null;size:100"`
	Title     string     `json:"title" gorm:"not null;size:255"`
	Body      string     `json:"body" gorm:"type:text;not null"`
	Published bool       `json:"published" gorm:"default:true;index"`
	CreatedBy uuid.UUID  `json:"created_by" gorm:"type:uuid;not null"`
	UpdatedBy *uuid.UUID `json:"updated_by" gorm:"type:uuid"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName sets the table name for Block
func (Block) TableName() string {
	return "content_blocks"
}

type BlockResponse struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateBlockRequest struct {
	Title string `json:"title" binding:"required,min=2,max=255"`
	Body  string `json:"body" binding:"required"`
	Slug  string `json:"slug" binding:"omitempty,min=2,max=100"`
}

type UpdateBlockRequest struct {
	Title     *string `json:"title" binding:"omitempty,min=2,max=255"`
	Body      *string `json:"body"`
	Published *bool   `json:"published"`
}

// ToResponse converts a Block to its API shape
func (b *Block) ToResponse() BlockResponse {
	return BlockResponse{
		ID:        b.ID.String(),
		Slug:      b.Slug,
		Title:     b.Title,
		Body:      b.Body,
		Published: b.Published,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
