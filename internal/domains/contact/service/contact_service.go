package service

import (
	"context"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/contact"
	"portfolio-backend/internal/infrastructure/email"
	"portfolio-backend/pkg/logger"
)

type contactService struct {
	repo   contact.Repository
	mailer email.Service
}

func NewContactService(repo contact.Repository, mailer email.Service) contact.Service {
	return &contactService{repo: repo, mailer: mailer}
}

func (s *contactService) Submit(ctx context.Context, req contact.SubmitRequest, clientIP string) (*contact.Message, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	m := &contact.Message{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
		IPAddress: clientIP,
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}

	// The message is already saved; a failed notification email must not
	// fail the submission.
	if err := s.mailer.SendContactNotification(ctx, email.ContactNotification{
		Name:    m.Name,
		Email:   m.Email,
		Phone:   m.Phone,
		Message: m.Message,
	}); err != nil {
		logger.Warn("contact notification email failed", map[string]interface{}{
			"contact_id": m.ID.String(),
			"error":      err.Error(),
		})
	}

	return m, nil
}

func (s *contactService) List(ctx context.Context) ([]*contact.Message, error) {
	return s.repo.List(ctx)
}

func (s *contactService) MarkRead(ctx context.Context, id uuid.UUID) (*contact.Message, error) {
	return s.repo.MarkRead(ctx, id)
}

func (s *contactService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
