package application

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/homelyhq/homely-backend/internal/domain/entity"
	"github.com/homelyhq/homely-backend/internal/domain/repository"
	"github.com/homelyhq/homely-backend/pkg/helpers"
	"github.com/homelyhq/homely-backend/pkg/mailer"
)

type ContactService struct {
	Repo   repository.ContactRepository
	Pub    *helpers.RabbitPublisher
	Logger *logrus.Logger
}

func NewContactService(repo repository.ContactRepository, pub *helpers.RabbitPublisher, logger *logrus.Logger) *ContactService {
	return &ContactService{Repo: repo, Pub: pub, Logger: logger}
}

type SubmitContactInput struct {
	Name    string
	Email   string
	Message string
}

// Submit stores the message and enqueues an inbox notification. The enqueue
// is best effort: the message is already durable in the store.
func (s *ContactService) Submit(ctx context.Context, in SubmitContactInput) (*entity.ContactMessage, error) {
	if strings.TrimSpace(in.Message) == "" {
		return nil, ErrInvalidInput
	}
	m := &entity.ContactMessage{
		Name:    in.Name,
		Email:   in.Email,
		Message: in.Message,
	}
	if err := s.Repo.Create(ctx, m); err != nil {
		return nil, err
	}

	if s.Pub != nil {
		job := mailer.ContactJob{
			ContactID: m.ID,
			Name:      m.Name,
			Email:     m.Email,
			Message:   m.Message,
			CreatedAt: m.CreatedAt,
		}
		if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("contact_id", m.ID).Warn("failed to enqueue contact notification")
		}
	}
	return m, nil
}
