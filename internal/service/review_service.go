package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/domain"
	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/repository/ports"
)

type ReviewService struct {
	reviews ports.ReviewRepository
	places  ports.PlaceRepository
}

func NewReviewService(reviews ports.ReviewRepository, places ports.PlaceRepository) *ReviewService {
	return &ReviewService{reviews: reviews, places: places}
}

// CreateReview validates the input, checks that the place exists and stores
// the review under userID. A user may review the same place many times.
func (s *ReviewService) CreateReview(ctx context.Context, userID uuid.UUID, input ReviewCreateInput) (*domain.Review, error) {
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

	review, err := s.reviews.Create(ctx, &domain.Review{
		UserID:  userID,
		PlaceID: placeID,
		Rating:  input.Rating,
		Comment: input.Comment,
	})
	if err != nil {
		// the place can disappear between the check and the insert
		if isNotFound(err) {
			return nil, ErrPlaceNotFound
		}
		return nil, fmt.Errorf("create review: %w", err)
	}

	zerolog.Ctx(ctx).Info().
		Str("review_id", review.ID.String()).
		Str("place_id", placeID.String()).
		Int("rating", review.Rating).
		Msg("review created")
	return review, nil
}

func (s *ReviewService) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ReviewWithPlace, error) {
	reviews, err := s.reviews.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user reviews: %w", err)
	}
	if reviews == nil {
		reviews = []domain.ReviewWithPlace{}
	}
	return reviews, nil
}

// ListByPlace returns an empty list for unknown or malformed place ids.
func (s *ReviewService) ListByPlace(ctx context.Context, rawPlaceID string) ([]domain.Review, error) {
	placeID, err := uuid.Parse(rawPlaceID)
	if err != nil {
		return []domain.Review{}, nil
	}
	reviews, err := s.reviews.ListByPlace(ctx, placeID)
	if err != nil {
		return nil, fmt.Errorf("list place reviews: %w", err)
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}
	return reviews, nil
}

func ensurePlace(ctx context.Context, places ports.PlaceRepository, id uuid.UUID) error {
	if _, err := places.FindByID(ctx, id); err != nil {
		if isNotFound(err) {
			return ErrPlaceNotFound
		}
		return fmt.Errorf("load place: %w", err)
	}
	return nil
}
