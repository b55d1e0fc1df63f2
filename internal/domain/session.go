package domain

import (
	"time"

	"github.com/google/uuid"
)

const DefaultSessionTTL = 7 * 24 * time.Hour

type Session struct {
	ID        int64     `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"userId"`
	Token     string    `db:"token" json:"-"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	ExpiresAt time.Time `db:"expires_at" json:"expiresAt"`
	IsActive  bool      `db:"is_active" json:"isActive"`
}

func (s *Session) Expired(now time.Time) bool {
	return !s.IsActive || !now.Before(s.ExpiresAt)
}
