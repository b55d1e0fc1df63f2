package postgres

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/domain"
)

type UserPlaceRepository struct {
	db *sqlx.DB
}

func NewUserPlaceRepo(db *sqlx.DB) *UserPlaceRepository {
	return &UserPlaceRepository{db: db}
}

func (r *UserPlaceRepository) Create(ctx context.Context, userPlace *domain.UserPlace) (*domain.UserPlace, error) {
	const query = `
        INSERT INTO user_places (user_id, place_id, status)
        VALUES ($1, $2, $3)
        RETURNING id, user_id, place_id, status, created_at
    `
	row := r.db.QueryRowxContext(ctx, query, userPlace.UserID, userPlace.PlaceID, string(userPlace.Status))
	var stored domain.UserPlace
	if err := row.StructScan(&stored); err != nil {
		return nil, mapError(err, "user place")
	}
	return &stored, nil
}

// ListByUser returns every row the user added, newest first, each joined with
// its place. Duplicate rows for the same place are all returned.
func (r *UserPlaceRepository) ListByUser(ctx context.Context, userID uuid.UUID, filter domain.UserPlaceListFilter) ([]domain.UserPlaceWithPlace, error) {
	builder := psql.
		Select(
			"up.id",
			"up.user_id",
			"up.place_id",
			"up.status",
			"up.created_at",
			`p.id AS "place.id"`,
			`p.name AS "place.name"`,
			`p.description AS "place.description"`,
			`p.importance AS "place.importance"`,
			`p.image_url AS "place.image_url"`,
			`p.location AS "place.location"`,
			`p.category AS "place.category"`,
		).
		From("user_places up").
		Join("places p ON p.id = up.place_id").
		Where(sq.Eq{"up.user_id": userID}).
		OrderBy("up.created_at DESC", "up.id DESC")

	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"up.status": string(*filter.Status)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	items := make([]domain.UserPlaceWithPlace, 0)
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, mapError(err, "user place")
	}
	return items, nil
}
