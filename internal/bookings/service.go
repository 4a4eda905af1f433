package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"xplorium/pkg/logger"
	"xplorium/pkg/metrics"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition = errors.New("booking status transition not allowed")
	ErrDateInPast        = errors.New("booking date must not be in the past")
	ErrTooManyBookings   = errors.New("too many booking requests for this email today")
)

// maxDailyBookingsPerEmail caps how many requests one address can submit in
// 24h. The IP-keyed gate in pkg/ratelimit does not catch a submitter who
// rotates addresses but reuses the contact email.
const maxDailyBookingsPerEmail = 5

// Notifier receives booking lifecycle events. The notifications package
// provides the concrete adapter; the interface lives here to keep the
// dependency pointing outward.
type Notifier interface {
	NotifyBookingCreated(ctx context.Context, booking *Booking) error
	NotifyBookingStatusChanged(ctx context.Context, booking *Booking) error
}

// Service defines the bookings service interface
type Service interface {
	CreateBooking(ctx context.Context, req *CreateBookingRequest) (*BookingResponse, error)
	GetBooking(ctx context.Context, id uuid.UUID) (*BookingResponse, error)
	ListBookings(ctx context.Context, query *ListQuery) (*PaginatedBookings, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, next Status) (*BookingResponse, error)
	SetNotifier(notifier Notifier)
}

type service struct {
	repo     Repository
	notifier Notifier
}

// NewService creates a new bookings service instance
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// SetNotifier injects the notification adapter
func (s *service) SetNotifier(notifier Notifier) {
	s.notifier = notifier
}

func (s *service) CreateBooking(ctx context.Context, req *CreateBookingRequest) (*BookingResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid booking date: %w", err)
	}
	if date.Before(time.Now().Truncate(24 * time.Hour)) {
		return nil, ErrDateInPast
	}

	recent, err := s.repo.CountByEmailSince(ctx, req.CustomerEmail, time.Now().Add(-24*time.Hour))
	if err != nil {
		return nil, err
	}
	if recent >= maxDailyBookingsPerEmail {
		return nil, ErrTooManyBookings
	}

	booking := &Booking{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Type:          Type(req.Type),
		Status:        StatusPending,
		Date:          date,
		Time:          req.Time,
		PartySize:     req.PartySize,
		Notes:         req.Notes,
	}

	if req.PackageID != "" {
		packageID, err := uuid.Parse(req.PackageID)
		if err != nil {
			return nil, fmt.Errorf("invalid package id: %w", err)
		}
		booking.PackageID = &packageID
	}
	if req.EventID != "" {
		eventID, err := uuid.Parse(req.EventID)
		if err != nil {
			return nil, fmt.Errorf("invalid event id: %w", err)
		}
		booking.EventID = &eventID
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, err
	}

	logger.GetDefault().LogBookingCreated(ctx, booking.ID.String(), string(booking.Type))
	metrics.BookingsCreatedTotal.WithLabelValues(string(booking.Type)).Inc()

	if s.notifier != nil {
		if err := s.notifier.NotifyBookingCreated(ctx, booking); err != nil {
			logger.GetDefault().ErrorWithContext(ctx, "failed to publish booking created notification", err,
				map[string]interface{}{"booking_id": booking.ID.String()})
		}
	}

	resp := booking.ToResponse()
	return &resp, nil
}

func (s *service) GetBooking(ctx context.Context, id uuid.UUID) (*BookingResponse, error) {
	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := booking.ToResponse()
	return &resp, nil
}

func (s *service) ListBookings(ctx context.Context, query *ListQuery) (*PaginatedBookings, error) {
	return s.repo.List(ctx, query)
}

func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, next Status) (*BookingResponse, error) {
	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	previous := booking.Status
	if !booking.Transition(next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, previous, next)
	}

	if err := s.repo.Save(ctx, booking); err != nil {
		return nil, err
	}

	logger.GetDefault().LogBookingStatusChanged(ctx, booking.ID.String(), string(previous), string(next))
	metrics.BookingStatusChangesTotal.WithLabelValues(string(next)).Inc()

	if s.notifier != nil {
		if err := s.notifier.NotifyBookingStatusChanged(ctx, booking); err != nil {
			logger.GetDefault().ErrorWithContext(ctx, "failed to publish booking status notification", err,
				map[string]interface{}{"booking_id": booking.ID.String()})
		}
	}

	resp := booking.ToResponse()
	return &resp, nil
}
