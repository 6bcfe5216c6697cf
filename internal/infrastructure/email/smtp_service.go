package email

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"portfolio-backend/internal/config"
	"portfolio-backend/pkg/logger"
)

// ContactNotification is the admin notification sent when a visitor
// submits the contact form.
type ContactNotification struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// Service sends notification emails. Callers treat delivery as
// best-effort; a failed send must never fail the originating request.
type Service interface {
	SendContactNotification(ctx context.Context, data ContactNotification) error
}

type smtpService struct {
	addr     string
	host     string
	user     string
	password string
	from     string
	to       string
}

func NewSMTPService(cfg *config.EmailConfig) Service {
	return &smtpService{
		addr:     cfg.Host + ":" + cfg.Port,
		host:     cfg.Host,
		user:     cfg.User,
		password: cfg.Password,
		from:     cfg.From,
		to:       cfg.To,
	}
}

func (s *smtpService) SendContactNotification(ctx context.Context, data ContactNotification) error {
	phone := data.Phone
	if phone == "" {
		phone = "Not provided"
	}

	subject := fmt.Sprintf("New Contact Form Submission from %s", data.Name)
	body := fmt.Sprintf(`You have a new contact form submission:

Name: %s
Email: %s
Phone: %s

Message:
%s

---
Submitted at: %s`,
		data.Name, data.Email, phone, data.Message, time.Now().Format(time.RFC1123))

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		s.from, s.to, subject, body))

	var auth smtp.Auth
	if s.user != "" {
		auth = smtp.PlainAuth("", s.user, s.password, s.host)
	}

	if err := smtp.SendMail(s.addr, auth, s.from, []string{s.to}, msg); err != nil {
		logger.Info("Failed to send contact notification", map[string]interface{}{
			"error":     err.Error(),
			"smtp_addr": s.addr,
		})
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// NoopService is used when SMTP is not configured (tests, local dev).
type NoopService struct{}

func (NoopService) SendContactNotification(ctx context.Context, data ContactNotification) error {
	logger.Debug("SMTP not configured, skipping contact notification for " + strings.TrimSpace(data.Email))
	return nil
}
