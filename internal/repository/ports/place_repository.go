package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/domain"
)

type PlaceRepository interface {
	Create(ctx context.Context, place domain.Place) (*domain.Place, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Place, error)
	List(ctx context.Context, filter domain.PlaceListFilter) ([]domain.Place, error)
	ExistingNames(ctx context.Context, names []string) ([]string, error)
}
