package packages

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrPackageNotFound = errors.New("package not found")

// Repository defines the packages repository interface
type Repository interface {
	Create(ctx context.Context, pkg *Package) error
	GetByID(ctx context.Context, id uuid.UUID) (*Package, error)
	GetByName(ctx context.Context, name string) (*Package, error)
	GetAll(ctx context.Context) ([]Package, error)
	GetActive(ctx context.Context) ([]Package, error)
	Save(ctx context.Context, pkg *Package) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new packages repository instance
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, pkg *Package) error {
	if err := r.db.WithContext(ctx).Create(pkg).Error; err != nil {
		return fmt.Errorf("failed to create package: %w", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Package, error) {
	var pkg Package
	err := r.db.WithContext(ctx).First(&pkg, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, fmt.Errorf("failed to get package: %w", err)
	}
	return &pkg, nil
}

func (r *repository) GetByName(ctx context.Context, name string) (*Package, error) {
	var pkg Package
	err := r.db.WithContext(ctx).First(&pkg, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, fmt.Errorf("failed to get package by name: %w", err)
	}
	return &pkg, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Package, error) {
	var pkgs []Package
	err := r.db.WithContext(ctx).Order("name ASC").Find(&pkgs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}
	return pkgs, nil
}

func (r *repository) GetActive(ctx context.Context) ([]Package, error) {
	var pkgs []Package
	err := r.db.WithContext(ctx).Where("active = ?", true).Order("name ASC").Find(&pkgs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active packages: %w", err)
	}
	return pkgs, nil
}

func (r *repository) Save(ctx context.Context, pkg *Package) error {
	if err := r.db.WithContext(ctx).Save(pkg).Error; err != nil {
		return fmt.Errorf("failed to save package: %w", err)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&Package{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete package: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrPackageNotFound
	}
	return nil
}
