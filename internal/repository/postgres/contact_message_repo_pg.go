package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/domain"
)

type ContactMessageRepository struct {
	db *sqlx.DB
}

func NewContactMessageRepo(db *sqlx.DB) *ContactMessageRepository {
	return &ContactMessageRepository{db: db}
}

func (r *ContactMessageRepository) Create(ctx context.Context, message *domain.ContactMessage) (*domain.ContactMessage, error) {
	const query = `
        INSERT INTO contact_messages (name, email, message)
        VALUES ($1, $2, $3)
        RETURNING id, name, email, message, created_at
    `
	row := r.db.QueryRowxContext(ctx, query, message.Name, message.Email, message.Message)
	var stored domain.ContactMessage
	if err := row.StructScan(&stored); err != nil {
		return nil, mapError(err, "contact message")
	}
	return &stored, nil
}
