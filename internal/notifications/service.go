package notifications

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"xplorium/internal/shared/config"
)

// Service is the unified notification entry point: it publishes booking
// lifecycle mail to Kafka and runs the consumer workers that deliver it.
type Service interface {
	SendBookingNotification(ctx context.Context, notType NotificationType,
		email, name string, bookingID uuid.UUID, templateData map[string]interface{}) error

	UpdatePreference(ctx context.Context, req *UpdatePreferenceRequest) error
	ListPreferences(ctx context.Context, email string) ([]Preference, error)

	Start(ctx context.Context) error
	Stop() error
	HealthCheck(ctx context.Context) error
}

const numConsumerWorkers = 3

type service struct {
	producer NotificationProducer
	consumer NotificationConsumer
	repo     Repository

	isRunning bool
	mu        sync.RWMutex
	ctx       context.Context
	cancel    context.CancelFunc
}

// NewService wires the producer, consumer and preference store from the
// application config.
func NewService(cfg *config.Config, repo Repository) (Service, error) {
	smtpConfig := &SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  "Xplorium",
	}
	emailService, err := NewSMTPEmailService(smtpConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP email service: %w", err)
	}

	producerConfig := DefaultKafkaProducerConfig()
	producerConfig.Brokers = cfg.Kafka.Brokers
	producerConfig.NotificationTopic = cfg.Kafka.NotificationTopic
	producerConfig.DeadLetterTopic = cfg.Kafka.DeadLetterTopic

	producer, err := NewKafkaNotificationProducer(producerConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification producer: %w", err)
	}

	consumerConfig := DefaultConsumerConfig()
	consumerConfig.Brokers = cfg.Kafka.Brokers
	consumerConfig.Topics = []string{cfg.Kafka.NotificationTopic}
	consumerConfig.GroupID = cfg.Kafka.ConsumerGroup

	consumer, err := NewKafkaNotificationConsumer(consumerConfig, emailService, producer)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification consumer: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &service{
		producer: producer,
		consumer: consumer,
		repo:     repo,
		ctx:      ctx,
		cancel:   cancel,
	}, nil
}

func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("notification service is already running")
	}

	if err := s.consumer.StartConsumers(s.ctx, numConsumerWorkers); err != nil {
		return fmt.Errorf("failed to start consumers: %w", err)
	}

	s.isRunning = true
	log.Printf("✅ Notification service started")
	return nil
}

func (s *service) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return fmt.Errorf("notification service is not running")
	}

	s.cancel()

	if err := s.consumer.Stop(); err != nil {
		log.Printf("Error stopping consumer: %v", err)
	}
	if err := s.producer.Close(); err != nil {
		log.Printf("Error closing producer: %v", err)
	}

	s.isRunning = false
	log.Printf("✅ Notification service stopped")
	return nil
}

// SendBookingNotification publishes one booking lifecycle email, honoring the
// recipient's opt-outs. An opt-out is a silent no-op, not an error.
func (s *service) SendBookingNotification(ctx context.Context, notType NotificationType,
	email, name string, bookingID uuid.UUID, templateData map[string]interface{}) error {

	optedOut, err := s.repo.IsOptedOut(ctx, email, notType)
	if err != nil {
		return err
	}
	if optedOut {
		log.Printf("📧 Skipping %s notification for %s (opted out)", notType, email)
		return nil
	}

	notification := NewNotificationBuilder().
		WithType(notType).
		WithRecipient(email, name).
		WithSubject(subjectFor(notType)).
		WithBookingContext(bookingID).
		WithTemplateData(templateData).
		Build()

	return s.producer.PublishNotification(ctx, notification)
}

func (s *service) UpdatePreference(ctx context.Context, req *UpdatePreferenceRequest) error {
	notType := NotificationType(req.Type)
	if req.OptedOut {
		return s.repo.OptOut(ctx, req.Email, notType)
	}
	return s.repo.OptIn(ctx, req.Email, notType)
}

func (s *service) ListPreferences(ctx context.Context, email string) ([]Preference, error) {
	return s.repo.ListOptOuts(ctx, email)
}

func (s *service) HealthCheck(ctx context.Context) error {
	s.mu.RLock()
	isRunning := s.isRunning
	s.mu.RUnlock()

	if !isRunning {
		return fmt.Errorf("notification service is not running")
	}
	if err := s.producer.HealthCheck(ctx); err != nil {
		return fmt.Errorf("producer health check failed: %w", err)
	}
	if err := s.consumer.HealthCheck(ctx); err != nil {
		return fmt.Errorf("consumer health check failed: %w", err)
	}
	return nil
}

// subjectFor maps a notification type to its email subject line
func subjectFor(notType NotificationType) string {
	switch notType {
	case NotificationTypeBookingReceived:
		return "We received your booking request"
	case NotificationTypeBookingApproved:
		return "✅ Your Xplorium booking is confirmed"
	case NotificationTypeBookingRejected:
		return "About your Xplorium booking request"
	case NotificationTypeBookingCancelled:
		return "Your Xplorium booking has been cancelled"
	case NotificationTypeBookingCompleted:
		return "Thanks for visiting Xplorium!"
	default:
		return "Notification from Xplorium"
	}
}
