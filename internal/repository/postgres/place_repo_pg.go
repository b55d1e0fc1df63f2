package postgres

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var placeColumns = []string{"id", "name", "description", "importance", "image_url", "location", "category"}

type PlaceRepository struct {
	db *sqlx.DB
}

func NewPlaceRepo(db *sqlx.DB) *PlaceRepository {
	return &PlaceRepository{db: db}
}

func (r *PlaceRepository) Create(ctx context.Context, place domain.Place) (*domain.Place, error) {
	const query = `
        INSERT INTO places (name, description, importance, image_url, location, category)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, name, description, importance, image_url, location, category
    `
	row := r.db.QueryRowxContext(ctx, query,
		place.Name, place.Description, place.Importance, place.ImageURL, place.Location, place.Category)
	var stored domain.Place
	if err := row.StructScan(&stored); err != nil {
		return nil, mapError(err, "place")
	}
	return &stored, nil
}

func (r *PlaceRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Place, error) {
	const query = `
        SELECT id, name, description, importance, image_url, location, category
        FROM places
        WHERE id = $1
    `
	var place domain.Place
	if err := r.db.GetContext(ctx, &place, query, id); err != nil {
		return nil, mapError(err, "place")
	}
	return &place, nil
}

// List returns places in insertion order.
func (r *PlaceRepository) List(ctx context.Context, filter domain.PlaceListFilter) ([]domain.Place, error) {
	builder := psql.Select(placeColumns...).From("places").OrderBy("seq ASC")
	if len(filter.Categories) > 0 {
		builder = builder.Where(sq.Eq{"category": filter.Categories})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	places := make([]domain.Place, 0)
	if err := r.db.SelectContext(ctx, &places, query, args...); err != nil {
		return nil, mapError(err, "place")
	}
	return places, nil
}

// ExistingNames reports which of names are already stored.
func (r *PlaceRepository) ExistingNames(ctx context.Context, names []string) ([]string, error) {
	if len(names) == 0 {
		return nil, nil
	}
	const query = `
        SELECT name FROM places WHERE name = ANY($1)
    `
	var existing []string
	if err := r.db.SelectContext(ctx, &existing, query, pq.Array(names)); err != nil {
		return nil, mapError(err, "place")
	}
	return existing, nil
}
