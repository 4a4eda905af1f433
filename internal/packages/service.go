package packages

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"xplorium/internal/bookings"
	"xplorium/internal/shared/constants"
	"xplorium/pkg/cache"
)

var ErrDuplicateName = errors.New("package name already in use")

// Service defines the packages service interface
type Service interface {
	CreatePackage(ctx context.Context, req *CreatePackageRequest) (*Package, error)
	GetPackage(ctx context.Context, id uuid.UUID) (*Package, error)
	ListPackages(ctx context.Context) ([]Package, error)
	ListActivePackages(ctx context.Context) ([]Package, error)
	UpdatePackage(ctx context.Context, id uuid.UUID, req *UpdatePackageRequest) (*Package, error)
	DeletePackage(ctx context.Context, id uuid.UUID) error
	SetCacheService(cacheService cache.Service)
}

type service struct {
	repo         Repository
	cacheService cache.Service
}

// NewService creates a new packages service instance
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// SetCacheService injects the cache service dependency
func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

func (s *service) CreatePackage(ctx context.Context, req *CreatePackageRequest) (*Package, error) {
	existing, err := s.repo.GetByName(ctx, req.Name)
	if err != nil && !errors.Is(err, ErrPackageNotFound) {
		return nil, fmt.Errorf("failed to check package name: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateName, req.Name)
	}

	pkg := &Package{
		Name:        req.Name,
		Description: req.Description,
		BookingType: bookings.Type(req.BookingType),
		Price:       req.Price,
		Capacity:    req.Capacity,
		Active:      true,
	}
	if err := s.repo.Create(ctx, pkg); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	return pkg, nil
}

func (s *service) GetPackage(ctx context.Context, id uuid.UUID) (*Package, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListPackages(ctx context.Context) ([]Package, error) {
	return s.repo.GetAll(ctx)
}

// ListActivePackages serves the public pricing page and is cached; the
// write paths invalidate.
func (s *service) ListActivePackages(ctx context.Context) ([]Package, error) {
	if s.cacheService != nil {
		var cached []Package
		if err := s.cacheService.Get(ctx, constants.CACHE_KEY_PACKAGES_ACTIVE, &cached); err == nil {
			return cached, nil
		}
	}

	pkgs, err := s.repo.GetActive(ctx)
	if err != nil {
		return nil, err
	}

	if s.cacheService != nil {
		_ = s.cacheService.Set(ctx, constants.CACHE_KEY_PACKAGES_ACTIVE, pkgs, constants.TTL_PACKAGES)
	}
	return pkgs, nil
}

func (s *service) UpdatePackage(ctx context.Context, id uuid.UUID, req *UpdatePackageRequest) (*Package, error) {
	pkg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != pkg.Name {
		existing, err := s.repo.GetByName(ctx, *req.Name)
		if err != nil && !errors.Is(err, ErrPackageNotFound) {
			return nil, fmt.Errorf("failed to check package name: %w", err)
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, *req.Name)
		}
		pkg.Name = *req.Name
	}
	if req.Description != nil {
		pkg.Description = *req.Description
	}
	if req.Price != nil {
		pkg.Price = *req.Price
	}
	if req.Capacity != nil {
		pkg.Capacity = *req.Capacity
	}
	if req.Active != nil {
		pkg.Active = *req.Active
	}

	if err := s.repo.Save(ctx, pkg); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	return pkg, nil
}

func (s *service) DeletePackage(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *service) invalidateCache(ctx context.Context) {
	if s.cacheService == nil {
		return
	}
	_ = s.cacheService.Delete(ctx, constants.CACHE_KEY_PACKAGES_ACTIVE)
}
