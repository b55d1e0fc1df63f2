package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/domain"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	ListByPlace(ctx context.Context, placeID uuid.UUID) ([]domain.Review, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ReviewWithPlace, error)
}
