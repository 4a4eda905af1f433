package content

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"xplorium/internal/shared/constants"
	"xplorium/pkg/cache"
)

var (
	ErrDuplicateSlug = errors.New("content slug already in use")
	ErrEmptySlug     = errors.New("title produces an empty slug")
)

// Service defines the content service interface
type Service interface {
	CreateBlock(ctx context.Context, req *CreateBlockRequest, createdBy uuid.UUID) (*BlockResponse, error)
	GetBlockBySlug(ctx context.Context, slug string) (*BlockResponse, error)
	ListBlocks(ctx context.Context) ([]BlockResponse, error)
	UpdateBlock(ctx context.Context, id uuid.UUID, req *UpdateBlockRequest, updatedBy uuid.UUID) (*BlockResponse, error)
	DeleteBlock(ctx context.Context, id uuid.UUID) error
	SetCacheService(cacheService cache.Service)
}

type service struct {
	repo         Repository
	cacheService cache.Service
}

// NewService creates a new content service instance
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// SetCacheService injects the cache service dependency
func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

var (
	slugStripRe    = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugCollapseRe = regexp.MustCompile(`[\s-]+`)
)

// generateSlug derives a URL-safe slug from a title
func generateSlug(title string) string {
	slug := strings.ToLower(title)
	slug = slugStripRe.ReplaceAllString(slug, "")
	slug = slugCollapseRe.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

func (s *service) CreateBlock(ctx context.Context, req *CreateBlockRequest, createdBy uuid.UUID) (*BlockResponse, error) {
	slug := req.Slug
	if slug == "" {
		slug = generateSlug(req.Title)
	} else {
		slug = generateSlug(slug)
	}
	if slug == "" {
		return nil, ErrEmptySlug
	}

	existing, err := s.repo.GetBySlug(ctx, slug)
	if err != nil && !errors.Is(err, ErrBlockNotFound) {
		return nil, fmt.Errorf("failed to check slug: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateSlug, slug)
	}

	block := &Block{
		Slug:      slug,
		Title:     req.Title,
		Body:      req.Body,
		Published: true,
		CreatedBy: createdBy,
	}
	if err := s.repo.Create(ctx, block); err != nil {
		return nil, err
	}

	s.invalidateList(ctx)
	resp := block.ToResponse()
	return &resp, nil
}

// GetBlockBySlug serves the public site and is cached per slug. Unpublished
// blocks are hidden from this path.
func (s *service) GetBlockBySlug(ctx context.Context, slug string) (*BlockResponse, error) {
	cacheKey := constants.CACHE_KEY_CONTENT_BY_SLUG + slug

	if s.cacheService != nil {
		var cached BlockResponse
		if err := s.cacheService.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	block, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !block.Published {
		return nil, ErrBlockNotFound
	}

	resp := block.ToResponse()
	if s.cacheService != nil {
		_ = s.cacheService.Set(ctx, cacheKey, resp, constants.TTL_CONTENT_BLOCK)
	}
	return &resp, nil
}

func (s *service) ListBlocks(ctx context.Context) ([]BlockResponse, error) {
	blocks, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]BlockResponse, 0, len(blocks))
	for i := range blocks {
		responses = append(responses, blocks[i].ToResponse())
	}
	return responses, nil
}

func (s *service) UpdateBlock(ctx context.Context, id uuid.UUID, req *UpdateBlockRequest, updatedBy uuid.UUID) (*BlockResponse, error) {
	block, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		block.Title = *req.Title
	}
	if req.Body != nil {
		block.Body = *req.Body
	}
	if req.Published != nil {
		block.Published = *req.Published
	}
	block.UpdatedBy = &updatedBy

	if err := s.repo.Save(ctx, block); err != nil {
		return nil, err
	}

	s.invalidateBlock(ctx, block.Slug)
	resp := block.ToResponse()
	return &resp, nil
}

func (s *service) DeleteBlock(ctx context.Context, id uuid.UUID) error {
	block, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateBlock(ctx, block.Slug)
	return nil
}

func (s *service) invalidateBlock(ctx context.Context, slug string) {
	if s.cacheService == nil {
		return
	}
	_ = s.cacheService.Delete(ctx, constants.CACHE_KEY_CONTENT_BY_SLUG+slug)
	s.invalidateList(ctx)
}

func (s *service) invalidateList(ctx context.Context) {
	if s.cacheService == nil {
		return
	}
	_ = s.cacheService.Delete(ctx, constants.CACHE_KEY_CONTENT_LIST)
}
