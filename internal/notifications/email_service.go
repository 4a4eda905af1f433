package notifications

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"net/smtp"
	"strings"
	"time"
)

// EmailService sends a single notification over email
type EmailService interface {
	SendNotification(ctx context.Context, notification *EmailNotification) error
	SendHTML(ctx context.Context, to, subject, htmlBody string) error
}

// SMTPConfig holds SMTP configuration
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
	Timeout   time.Duration
}

// SMTPEmailService is the production EmailService backed by plain SMTP
type SMTPEmailService struct {
	config    *SMTPConfig
	templates map[NotificationType]*template.Template
}

// NewSMTPEmailService creates a new SMTP email service
func NewSMTPEmailService(config *SMTPConfig) (*SMTPEmailService, error) {
	if err := validateSMTPConfig(config); err != nil {
		return nil, fmt.Errorf("invalid SMTP configuration: %w", err)
	}

	service := &SMTPEmailService{
		config:    config,
		templates: make(map[NotificationType]*template.Template),
	}
	service.loadDefaultTemplates()
	return service, nil
}

func validateSMTPConfig(config *SMTPConfig) error {
	if config == nil {
		return fmt.Errorf("SMTP config is nil")
	}
	if config.Host == "" {
		return fmt.Errorf("SMTP host is required")
	}
	if config.Port <= 0 || config.Port > 65535 {
		return fmt.Errorf("SMTP port must be between 1 and 65535")
	}
	if config.FromEmail == "" {
		return fmt.Errorf("from email is required")
	}
	return nil
}

// SendNotification renders the template for the notification type and sends it
func (s *SMTPEmailService) SendNotification(ctx context.Context, notification *EmailNotification) error {
	tmpl, ok := s.templates[notification.Type]
	if !ok {
		return fmt.Errorf("no email template for notification type %s", notification.Type)
	}

	data := map[string]interface{}{
		"RecipientName": notification.RecipientName,
	}
	for k, v := range notification.TemplateData {
		data[k] = v
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	return s.SendHTML(ctx, notification.RecipientEmail, notification.Subject, body.String())
}

// SendHTML sends a raw HTML email
func (s *SMTPEmailService) SendHTML(ctx context.Context, to, subject, htmlBody string) error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	var auth smtp.Auth
	if s.config.Username != "" {
		auth = smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)
	}

	from := s.config.FromEmail
	if s.config.FromName != "" {
		from = fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromEmail)
	}

	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("From: %s\r\n", from))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", to))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	if err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}

	log.Printf("📧 [SMTP] Email sent to %s: %s", to, subject)
	return nil
}

// loadDefaultTemplates registers the booking lifecycle email bodies
func (s *SMTPEmailService) loadDefaultTemplates() {
	bodies := map[NotificationType]string{
		NotificationTypeBookingReceived: `
<h2>Thanks, {{.RecipientName}}!</h2>
<p>We received your {{.booking_type}} booking request for {{.date}} at {{.time}}.</p>
<p>Our team will review it shortly and you will hear from us by email.</p>`,

		NotificationTypeBookingApproved: `
<h2>Great news, {{.RecipientName}}!</h2>
<p>Your {{.booking_type}} booking for {{.date}} at {{.time}} is confirmed.</p>
<p>We look forward to seeing you at Xplorium.</p>`,

		NotificationTypeBookingRejected: `
<h2>Hello {{.RecipientName}},</h2>
<p>Unfortunately we could not accommodate your {{.booking_type}} booking for {{.date}} at {{.time}}.</p>
<p>Please try another date or get in touch with us directly.</p>`,

		NotificationTypeBookingCancelled: `
<h2>Hello {{.RecipientName}},</h2>
<p>Your {{.booking_type}} booking for {{.date}} at {{.time}} has been cancelled.</p>
<p>If this was unexpected, please contact us.</p>`,

		NotificationTypeBookingCompleted: `
<h2>Thank you for visiting, {{.RecipientName}}!</h2>
<p>We hope you enjoyed your {{.booking_type}} visit on {{.date}}.</p>
<p>We would love to see you again soon.</p>`,
	}

	for notType, body := range bodies {
		s.templates[notType] = template.Must(template.New(string(notType)).Parse(body))
	}
}
