package contact

import (
	"context"
	"time"

	contactRepo "photostudio/database/repository/contact"
	"photostudio/models"
	"photostudio/services/notification"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContactService persists contact and feedback messages. No account is
// involved.
type ContactService interface {
	SubmitContact(ctx context.Context, req models.ContactRequest) (*models.ContactMessage, error)
}

type DefaultContactService struct {
	Repo     contactRepo.ContactRepository
	Notifier notification.Notifier
	Logger   *zap.Logger
	Now      func() time.Time
}

func (s *DefaultContactService) SubmitContact(ctx context.Context, req models.ContactRequest) (*models.ContactMessage, error) {
	kind := req.Kind
	if kind == "" {
		kind = models.ContactKindMessage
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	msg := &models.ContactMessage{
		ID:        uuid.New().String(),
		Kind:      kind,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
		CreatedAt: now().UTC(),
	}
	if err := s.Repo.Create(ctx, msg); err != nil {
		return nil, err
	}

	if s.Notifier != nil {
		if err := s.Notifier.Notify(ctx, models.ContactNotification(*msg)); err != nil {
			s.logger().Warn("SubmitContact: studio notification failed",
				zap.String("messageID", msg.ID), zap.Error(err))
		}
	}
	return msg, nil
}

func (s *DefaultContactService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
