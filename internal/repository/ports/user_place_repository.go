package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/domain"
)

type UserPlaceRepository interface {
	Create(ctx context.Context, userPlace *domain.UserPlace) (*domain.UserPlace, error)
	ListByUser(ctx context.Context, userID uuid.UUID, filter domain.UserPlaceListFilter) ([]domain.UserPlaceWithPlace, error)
}
