package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/domain"
	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/repository/ports"
)

type PlaceService struct {
	places ports.PlaceRepository
}

func NewPlaceService(places ports.PlaceRepository) *PlaceService {
	return &PlaceService{places: places}
}

// List returns places in insertion order, optionally restricted to the given
// categories.
func (s *PlaceService) List(ctx context.Context, categories []string) ([]domain.Place, error) {
	filter := domain.PlaceListFilter{}
	for _, c := range categories {
		if c = strings.TrimSpace(c); c != "" {
			filter.Categories = append(filter.Categories, c)
		}
	}
	places, err := s.places.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list places: %w", err)
	}
	if places == nil {
		places = []domain.Place{}
	}
	return places, nil
}

func (s *PlaceService) Get(ctx context.Context, rawID string) (*domain.Place, error) {
	id, err := parsePlaceID(rawID)
	if err != nil {
		return nil, err
	}
	place, err := s.places.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrPlaceNotFound
		}
		return nil, fmt.Errorf("load place: %w", err)
	}
	return place, nil
}
