package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/domain"
	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/repository/ports"
)

// ContactNotifier tells the operators about a new message.
type ContactNotifier interface {
	NotifyContactMessage(ctx context.Context, message *domain.ContactMessage) error
}

type ContactService struct {
	messages ports.ContactMessageRepository
	notifier ContactNotifier
}

// NewContactService builds the service. notifier may be nil.
func NewContactService(messages ports.ContactMessageRepository, notifier ContactNotifier) *ContactService {
	return &ContactService{messages: messages, notifier: notifier}
}

func (s *ContactService) Submit(ctx context.Context, input ContactInput) (*domain.ContactMessage, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	stored, err := s.messages.Create(ctx, &domain.ContactMessage{
		Name:    strings.TrimSpace(input.Name),
		Email:   input.Email,
		Message: input.Message,
	})
	if err != nil {
		return nil, fmt.Errorf("store contact message: %w", err)
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyContactMessage(ctx, stored); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Str("contact_id", stored.ID.String()).Msg("contact notification failed")
		}
	}
	return stored, nil
}
