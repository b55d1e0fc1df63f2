package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/domain"
)

// joinedPlaceColumns selects the place side of a join under the "place."
// prefix so sqlx scans it into the nested Place field.
const joinedPlaceColumns = `
			p.id AS "place.id",
			p.name AS "place.name",
			p.description AS "place.description",
			p.importance AS "place.importance",
			p.image_url AS "place.image_url",
			p.location AS "place.location",
			p.category AS "place.category"`

type ReviewRepository struct {
	db *sqlx.DB
}

func NewReviewRepo(db *sqlx.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	const query = `
		INSERT INTO reviews (user_id, place_id, rating, comment)
		VALUES (:user_id, :place_id, :rating, :comment)
		RETURNING id, user_id, place_id, rating, comment, created_at
	`
	args := map[string]any{
		"user_id":  review.UserID,
		"place_id": review.PlaceID,
		"rating":   review.Rating,
		"comment":  review.Comment,
	}

	rows, err := r.db.NamedQueryContext(ctx, query, args)
	if err != nil {
		return nil, mapError(err, "review")
	}
	defer rows.Close()

	if rows.Next() {
		var stored domain.Review
		if err := rows.StructScan(&stored); err != nil {
			return nil, mapError(err, "review")
		}
		return &stored, nil
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "review")
	}
	return nil, mapError(sql.ErrNoRows, "review")
}

// ListByPlace returns the reviews for a place, newest first.
func (r *ReviewRepository) ListByPlace(ctx context.Context, placeID uuid.UUID) ([]domain.Review, error) {
	const query = `
		SELECT id, user_id, place_id, rating, comment, created_at
		FROM reviews
		WHERE place_id = $1
		ORDER BY created_at DESC, id DESC
	`
	reviews := make([]domain.Review, 0)
	if err := r.db.SelectContext(ctx, &reviews, query, placeID); err != nil {
		return nil, mapError(err, "review")
	}
	return reviews, nil
}

// ListByUser returns the user's reviews joined with their places, newest first.
func (r *ReviewRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ReviewWithPlace, error) {
	const query = `
		SELECT
			r.id,
			r.user_id,
			r.place_id,
			r.rating,
			r.comment,
			r.created_at,` + joinedPlaceColumns + `
		FROM reviews r
		JOIN places p ON p.id = r.place_id
		WHERE r.user_id = $1
		ORDER BY r.created_at DESC, r.id DESC
	`
	reviews := make([]domain.ReviewWithPlace, 0)
	if err := r.db.SelectContext(ctx, &reviews, query, userID); err != nil {
		return nil, mapError(err, "review")
	}
	return reviews, nil
}
