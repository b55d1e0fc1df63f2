package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/domain"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepo(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	const query = `
        INSERT INTO users (username, password)
        VALUES ($1, $2)
        RETURNING id, username, password, created_at
    `

	row := r.db.QueryRowxContext(ctx, query, username, passwordHash)
	var user domain.User
	if err := row.StructScan(&user); err != nil {
		return nil, mapError(err, "user")
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	const query = `
        SELECT id, username, password, created_at
        FROM users
        WHERE id = $1
    `
	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		return nil, mapError(err, "user")
	}
	return &user, nil
}

// FindByUsername matches the stored username exactly.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	const query = `
        SELECT id, username, password, created_at
        FROM users
        WHERE username = $1
    `
	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, username); err != nil {
		return nil, mapError(err, "user")
	}
	return &user, nil
}
