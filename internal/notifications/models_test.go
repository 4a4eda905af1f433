package notifications

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"xplorium/internal/bookings"
)

func TestNotificationBuilder(t *testing.T) {
	bookingID := uuid.New()
	notification := NewNotificationBuilder().
		WithType(NotificationTypeBookingApproved).
		WithRecipient("parent@example.com", "Sam").
		WithSubject("confirmed").
		WithBookingContext(bookingID).
		WithTemplateData(map[string]interface{}{"date": "2026-09-01"}).
		Build()

	if notification.Type != NotificationTypeBookingApproved {
		t.Errorf("type = %s, want %s", notification.Type, NotificationTypeBookingApproved)
	}
	if notification.Priority != NotificationPriorityHigh {
		t.Errorf("priority = %s, want HIGH for approval mail", notification.Priority)
	}
	if notification.Status != NotificationStatusPending {
		t.Errorf("status = %s, want PENDING", notification.Status)
	}
	if notification.BookingID == nil || *notification.BookingID != bookingID {
		t.Error("booking context not set")
	}
	if notification.GetPartitionKey() != "parent@example.com" {
		t.Errorf("partition key = %s, want recipient email", notification.GetPartitionKey())
	}
}

func TestTypeForStatus(t *testing.T) {
	tests := []struct {
		status bookings.Status
		want   NotificationType
		ok     bool
	}{
		{bookings.StatusApproved, NotificationTypeBookingApproved, true},
		{bookings.StatusRejected, NotificationTypeBookingRejected, true},
		{bookings.StatusCancelled, NotificationTypeBookingCancelled, true},
		{bookings.StatusCompleted, NotificationTypeBookingCompleted, true},
		{bookings.StatusPending, "", false},
	}

	for _, tt := range tests {
		got, ok := typeForStatus(tt.status)
		if ok != tt.ok || got != tt.want {
			t.Errorf("typeForStatus(%s) = (%s, %v), want (%s, %v)", tt.status, got, ok, tt.want, tt.ok)
		}
	}
}

func TestMarkSentAndFailed(t *testing.T) {
	notification := NewNotificationBuilder().
		WithType(NotificationTypeBookingReceived).
		WithRecipient("parent@example.com", "Sam").
		Build()

	notification.MarkSent()
	if notification.Status != NotificationStatusSent || notification.SentAt == nil {
		t.Error("MarkSent did not record sent state")
	}

	notification.MarkFailed(errTest)
	if notification.Status != NotificationStatusFailed {
		t.Errorf("status = %s, want FAILED", notification.Status)
	}
	if notification.LastError == nil || *notification.LastError != errTest.Error() {
		t.Error("MarkFailed did not record the error")
	}
}

var errTest = errors.New("smtp unreachable")
