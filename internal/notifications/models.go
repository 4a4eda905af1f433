package notifications

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// NotificationType identifies the booking lifecycle event behind an email
type NotificationType string

const (
	NotificationTypeBookingReceived  NotificationType = "BOOKING_RECEIVED"
	NotificationTypeBookingApproved  NotificationType = "BOOKING_APPROVED"
	NotificationTypeBookingRejected  NotificationType = "BOOKING_REJECTED"
	NotificationTypeBookingCancelled NotificationType = "BOOKING_CANCELLED"
	NotificationTypeBookingCompleted NotificationType = "BOOKING_COMPLETED"
)

// AllNotificationTypes lists every notification type
var AllNotificationTypes = []NotificationType{
	NotificationTypeBookingReceived,
	NotificationTypeBookingApproved,
	NotificationTypeBookingRejected,
	NotificationTypeBookingCancelled,
	NotificationTypeBookingCompleted,
}

// IsValid checks if the notification type is valid
func (t NotificationType) IsValid() bool {
	for _, known := range AllNotificationTypes {
		if t == known {
			return true
		}
	}
	return false
}

type NotificationPriority string

const (
	NotificationPriorityLow    NotificationPriority = "LOW"
	NotificationPriorityMedium NotificationPriority = "MEDIUM"
	NotificationPriorityHigh   NotificationPriority = "HIGH"
)

type NotificationStatus string

const (
	NotificationStatusPending NotificationStatus = "PENDING"
	NotificationStatusQueued  NotificationStatus = "QUEUED"
	NotificationStatusSending NotificationStatus = "SENDING"
	NotificationStatusSent    NotificationStatus = "SENT"
	NotificationStatusFailed  NotificationStatus = "FAILED"
)

// EmailNotification is the message that travels over the notification topic
type EmailNotification struct {
	ID       uuid.UUID            `json:"id"`
	Type     NotificationType     `json:"type"`
	Priority NotificationPriority `json:"priority"`

	RecipientEmail string `json:"recipient_email"`
	RecipientName  string `json:"recipient_name"`

	Subject      string                 `json:"subject"`
	TemplateData map[string]interface{} `json:"template_data"`

	BookingID *uuid.UUID `json:"booking_id,omitempty"`

	Status     NotificationStatus `json:"status"`
	RetryCount int                `json:"retry_count"`
	MaxRetries int                `json:"max_retries"`
	LastError  *string            `json:"last_error,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
	SentAt     *time.Time         `json:"sent_at,omitempty"`
}

// NotificationBuilder assembles an EmailNotification step by step
type NotificationBuilder struct {
	notification *EmailNotification
}

func NewNotificationBuilder() *NotificationBuilder {
	return &NotificationBuilder{
		notification: &EmailNotification{
			ID:           uuid.New(),
			Status:       NotificationStatusPending,
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
			MaxRetries:   3,
			TemplateData: make(map[string]interface{}),
		},
	}
}

func (nb *NotificationBuilder) WithType(notType NotificationType) *NotificationBuilder {
	nb.notification.Type = notType
	nb.notification.Priority = GetDefaultPriority(notType)
	return nb
}

func (nb *NotificationBuilder) WithRecipient(email, name string) *NotificationBuilder {
	nb.notification.RecipientEmail = email
	nb.notification.RecipientName = name
	return nb
}

func (nb *NotificationBuilder) WithSubject(subject string) *NotificationBuilder {
	nb.notification.Subject = subject
	return nb
}

func (nb *NotificationBuilder) WithTemplateData(data map[string]interface{}) *NotificationBuilder {
	nb.notification.TemplateData = data
	return nb
}

func (nb *NotificationBuilder) WithBookingContext(bookingID uuid.UUID) *NotificationBuilder {
	nb.notification.BookingID = &bookingID
	return nb
}

func (nb *NotificationBuilder) Build() *EmailNotification {
	return nb.notification
}

// GetDefaultPriority maps a notification type to its delivery priority
func GetDefaultPriority(notType NotificationType) NotificationPriority {
	switch notType {
	case NotificationTypeBookingApproved, NotificationTypeBookingRejected:
		return NotificationPriorityHigh
	case NotificationTypeBookingReceived, NotificationTypeBookingCancelled:
		return NotificationPriorityMedium
	default:
		return NotificationPriorityLow
	}
}

// GetPartitionKey keeps all mail for one recipient on one partition so a
// customer's emails arrive in order
func (en *EmailNotification) GetPartitionKey() string {
	return en.RecipientEmail
}

func (en *EmailNotification) ToJSON() ([]byte, error) {
	return json.Marshal(en)
}

func (en *EmailNotification) MarkSent() {
	now := time.Now()
	en.Status = NotificationStatusSent
	en.SentAt = &now
	en.UpdatedAt = now
}

func (en *EmailNotification) MarkFailed(err error) {
	en.Status = NotificationStatusFailed
	en.UpdatedAt = time.Now()

	errorStr := err.Error()
	en.LastError = &errorStr
}

// Preference records an opt-out: a row means the email address has declined
// the given notification type. Approval/rejection mail always goes out.
type Preference struct {
	ID        uuid.UUID        `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Email     string           `json:"email" gorm:"not null;size:255;index;uniqueIndex:idx_pref_email_type"`
	Type      NotificationType `json:"type" gorm:"type:varchar(40);not null;uniqueIndex:idx_pref_email_type"`
	CreatedAt time.Time        `json:"created_at" gorm:"autoCreateTime"`
}

// TableName sets the table name for Preference
func (Preference) TableName() string {
	return "notification_preferences"
}

// UpdatePreferenceRequest toggles an opt-out for one notification type
type UpdatePreferenceRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Type     string `json:"type" binding:"required,oneof=BOOKING_RECEIVED BOOKING_APPROVED BOOKING_REJECTED BOOKING_CANCELLED BOOKING_COMPLETED"`
	OptedOut bool   `json:"opted_out"`
}
