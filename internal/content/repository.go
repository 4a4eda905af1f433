package content

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrBlockNotFound = errors.New("content block not found")

// Repository defines the content repository interface
type Repository interface {
	Create(ctx context.Context, block *Block) error
	GetByID(ctx context.Context, id uuid.UUID) (*Block, error)
	GetBySlug(ctx context.Context, slug string) (*Block, error)
	GetAll(ctx context.Context) ([]Block, error)
	Save(ctx context.Context, block *Block) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new content repository instance
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, block *Block) error {
	if err := r.db.WithContext(ctx).Create(block).Error; err != nil {
		return fmt.Errorf("failed to create content block: %w", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Block, error) {
	var block Block
	err := r.db.WithContext(ctx).First(&block, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlockNotFound
		}
		return nil, fmt.Errorf("failed to get content block: %w", err)
	}
	return &block, nil
}

func (r *repository) GetBySlug(ctx context.Context, slug string) (*Block, error) {
	var block Block
	err := r.db.WithContext(ctx).First(&block, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlockNotFound
		}
		return nil, fmt.Errorf("failed to get content block by slug: %w", err)
	}
	return &block, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Block, error) {
	var blocks []Block
	err := r.db.WithContext(ctx).Order("slug ASC").Find(&blocks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list content blocks: %w", err)
	}
	return blocks, nil
}

func (r *repository) Save(ctx context.Context, block *Block) error {
	if err := r.db.WithContext(ctx).Save(block).Error; err != nil {
		return fmt.Errorf("failed to save content block: %w", err)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&Block{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete content block: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBlockNotFound
	}
	return nil
}
