package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"xplorium/internal/shared/constants"
	"xplorium/pkg/cache"
)

var (
	ErrInvalidStatusChange = errors.New("event status transition not allowed")
	ErrDraftOnlyDelete     = errors.New("only draft events can be deleted")
)

const upcomingLimit = 20

// Service defines the events service interface
type Service interface {
	CreateEvent(ctx context.Context, req *CreateEventRequest, createdBy uuid.UUID) (*EventResponse, error)
	GetEvent(ctx context.Context, id uuid.UUID) (*EventResponse, error)
	ListEvents(ctx context.Context, query *EventListQuery) (*PaginatedEvents, error)
	ListUpcoming(ctx context.Context) ([]EventResponse, error)
	UpdateEvent(ctx context.Context, id uuid.UUID, req *UpdateEventRequest, updatedBy uuid.UUID) (*EventResponse, error)
	DeleteEvent(ctx context.Context, id uuid.UUID) error
	SetCacheService(cacheService cache.Service)
}

type service struct {
	repo         Repository
	cacheService cache.Service
}

// NewService creates a new events service instance
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// SetCacheService injects the cache service dependency
func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

func (s *service) CreateEvent(ctx context.Context, req *CreateEventRequest, createdBy uuid.UUID) (*EventResponse, error) {
	event := &Event{
		Name:        req.Name,
		Description: req.Description,
		DateTime:    req.DateTime,
		Capacity:    req.Capacity,
		Price:       req.Price,
		Status:      StatusDraft,
		ImageURL:    req.ImageURL,
		CreatedBy:   createdBy,
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	resp := event.ToResponse()
	return &resp, nil
}

func (s *service) GetEvent(ctx context.Context, id uuid.UUID) (*EventResponse, error) {
	if s.cacheService != nil {
		var cached EventResponse
		if err := s.cacheService.Get(ctx, constants.CACHE_KEY_EVENT_DETAIL+id.String(), &cached); err == nil {
			return &cached, nil
		}
	}

	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := event.ToResponse()
	if s.cacheService != nil {
		_ = s.cacheService.Set(ctx, constants.CACHE_KEY_EVENT_DETAIL+id.String(), resp, constants.TTL_EVENT_DETAIL)
	}
	return &resp, nil
}

func (s *service) ListEvents(ctx context.Context, query *EventListQuery) (*PaginatedEvents, error) {
	return s.repo.List(ctx, query)
}

// ListUpcoming serves the public site: published future events only, cached.
func (s *service) ListUpcoming(ctx context.Context) ([]EventResponse, error) {
	if s.cacheService != nil {
		var cached []EventResponse
		if err := s.cacheService.Get(ctx, constants.CACHE_KEY_EVENTS_PUBLISHED, &cached); err == nil {
			return cached, nil
		}
	}

	rows, err := s.repo.GetUpcomingPublished(ctx, upcomingLimit)
	if err != nil {
		return nil, err
	}

	responses := make([]EventResponse, 0, len(rows))
	for i := range rows {
		responses = append(responses, rows[i].ToResponse())
	}

	if s.cacheService != nil {
		_ = s.cacheService.Set(ctx, constants.CACHE_KEY_EVENTS_PUBLISHED, responses, constants.TTL_EVENT_LIST)
	}
	return responses, nil
}

func (s *service) UpdateEvent(ctx context.Context, id uuid.UUID, req *UpdateEventRequest, updatedBy uuid.UUID) (*EventResponse, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		next := Status(*req.Status)
		if next != event.Status && !event.Status.CanTransitionTo(next) {
			return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusChange, event.Status, next)
		}
		event.Status = next
	}
	if req.Name != nil {
		event.Name = *req.Name
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.DateTime != nil {
		event.DateTime = *req.DateTime
	}
	if req.Capacity != nil {
		event.Capacity = *req.Capacity
	}
	if req.Price != nil {
		event.Price = *req.Price
	}
	if req.ImageURL != nil {
		event.ImageURL = *req.ImageURL
	}
	event.UpdatedBy = &updatedBy

	if err := s.repo.Save(ctx, event); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	if s.cacheService != nil {
		_ = s.cacheService.Delete(ctx, constants.CACHE_KEY_EVENT_DETAIL+id.String())
	}

	resp := event.ToResponse()
	return &resp, nil
}

func (s *service) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if event.Status != StatusDraft {
		return ErrDraftOnlyDelete
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateCache(ctx)
	if s.cacheService != nil {
		_ = s.cacheService.Delete(ctx, constants.CACHE_KEY_EVENT_DETAIL+id.String())
	}
	return nil
}

func (s *service) invalidateCache(ctx context.Context) {
	if s.cacheService == nil {
		return
	}
	_ = s.cacheService.Delete(ctx, constants.CACHE_KEY_EVENTS_PUBLISHED)
	_ = s.cacheService.DeletePattern(ctx, constants.CACHE_KEY_EVENTS_LIST+"*")
}
