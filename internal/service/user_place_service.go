package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/domain"
	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/repository/ports"
)

type UserPlaceService struct {
	userPlaces ports.UserPlaceRepository
	places     ports.PlaceRepository
}

func NewUserPlaceService(userPlaces ports.UserPlaceRepository, places ports.PlaceRepository) *UserPlaceService {
	return &UserPlaceService{userPlaces: userPlaces, places: places}
}

// AddPlace records a new explored/upcoming entry. Repeating the same request
// creates another row.
func (s *UserPlaceService) AddPlace(ctx context.Context, userID uuid.UUID, input UserPlaceCreateInput) (*domain.UserPlace, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	placeID, err := parsePlaceID(input.PlaceID)
	if err != nil {
		return nil, err
	}
	if err := ensurePlace(ctx, s.places, placeID); err != nil {
		return nil, err
	}

	userPlace, err := s.userPlaces.Create(ctx, &domain.UserPlace{
		UserID:  userID,
		PlaceID: placeID,
		Status:  domain.UserPlaceStatus(input.Status),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, ErrPlaceNotFound
		}
		return nil, fmt.Errorf("create user place: %w", err)
	}

	zerolog.Ctx(ctx).Info().
		Str("place_id", placeID.String()).
		Str("status", string(userPlace.Status)).
		Msg("user place added")
	return userPlace, nil
}

// List returns the user's entries newest first. status may be empty; any
// other value must be a valid status.
func (s *UserPlaceService) List(ctx context.Context, userID uuid.UUID, status string) ([]domain.UserPlaceWithPlace, error) {
	var filter domain.UserPlaceListFilter
	if status = strings.TrimSpace(status); status != "" {
		st := domain.UserPlaceStatus(status)
		if !st.Valid() {
			return nil, domain.NewValidationError("status", "Status must be one of: explored, upcoming")
		}
		filter.Status = &st
	}

	items, err := s.userPlaces.ListByUser(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("list user places: %w", err)
	}
	if items == nil {
		items = []domain.UserPlaceWithPlace{}
	}
	return items, nil
}
