package ports

import (
	"context"

	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/domain"
)

type ContactMessageRepository interface {
	Create(ctx context.Context, message *domain.ContactMessage) (*domain.ContactMessage, error)
}
