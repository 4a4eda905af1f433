package notifications

import (
	"context"

	"xplorium/internal/bookings"
)

// BookingServiceAdapter implements the bookings.Notifier interface and adapts
// booking lifecycle events to the unified notification system
type BookingServiceAdapter struct {
	unifiedService Service
}

// NewBookingServiceAdapter creates a new adapter for booking notifications
func NewBookingServiceAdapter(unifiedService Service) *BookingServiceAdapter {
	return &BookingServiceAdapter{unifiedService: unifiedService}
}

// NotifyBookingCreated acknowledges a freshly submitted booking request
func (a *BookingServiceAdapter) NotifyBookingCreated(ctx context.Context, booking *bookings.Booking) error {
	return a.unifiedService.SendBookingNotification(ctx,
		NotificationTypeBookingReceived,
		booking.CustomerEmail, booking.CustomerName,
		booking.ID, templateDataFor(booking))
}

// NotifyBookingStatusChanged informs the customer of an admin decision
func (a *BookingServiceAdapter) NotifyBookingStatusChanged(ctx context.Context, booking *bookings.Booking) error {
	notType, ok := typeForStatus(booking.Status)
	if !ok {
		return nil
	}
	return a.unifiedService.SendBookingNotification(ctx,
		notType,
		booking.CustomerEmail, booking.CustomerName,
		booking.ID, templateDataFor(booking))
}

// typeForStatus maps a booking status to the notification announcing it
func typeForStatus(status bookings.Status) (NotificationType, bool) {
	switch status {
	case bookings.StatusApproved:
		return NotificationTypeBookingApproved, true
	case bookings.StatusRejected:
		return NotificationTypeBookingRejected, true
	case bookings.StatusCancelled:
		return NotificationTypeBookingCancelled, true
	case bookings.StatusCompleted:
		return NotificationTypeBookingCompleted, true
	}
	return "", false
}

func templateDataFor(booking *bookings.Booking) map[string]interface{} {
	return map[string]interface{}{
		"booking_id":   booking.ID.String(),
		"booking_type": string(booking.Type),
		"date":         booking.Date.Format("2006-01-02"),
		"time":         booking.Time,
		"party_size":   booking.PartySize,
	}
}
