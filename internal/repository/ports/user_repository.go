package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, username, passwordHash string) (*domain.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
