package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/domain"
)

const (
	sessionKeyPrefix = "session:"
	sessionSeqKey    = "session:seq"
)

// sessionRecord is the stored form; domain.Session hides its token from JSON.
type sessionRecord struct {
	ID        int64     `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionRepository keeps sessions as Redis keys that expire with the
// session, so there is nothing to sweep.
type SessionRepository struct {
	client goredis.UniversalClient
	now    func() time.Time
}

func NewSessionRepo(client goredis.UniversalClient) *SessionRepository {
	return &SessionRepository{client: client, now: time.Now}
}

func sessionKey(token string) string {
	return sessionKeyPrefix + token
}

func (r *SessionRepository) CreateSession(ctx context.Context, userID uuid.UUID, token string, expiresAt time.Time) (*domain.Session, error) {
	now := r.now()
	ttl := expiresAt.Sub(now)
	if ttl <= 0 {
		return nil, fmt.Errorf("session: expiry %s is not in the future", expiresAt.Format(time.RFC3339))
	}

	id, err := r.client.Incr(ctx, sessionSeqKey).Result()
	if err != nil {
		return nil, fmt.Errorf("session: next id: %w", err)
	}

	record := sessionRecord{
		ID:        id,
		UserID:    userID,
		Token:     token,
		CreatedAt: now.UTC(),
		ExpiresAt: expiresAt.UTC(),
	}
	payload, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}

	ok, err := r.client.SetNX(ctx, sessionKey(token), payload, ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("session: store: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("session: %w", domain.ErrAlreadyExists)
	}
	return record.toDomain(), nil
}

func (r *SessionRepository) DeactivateSession(ctx context.Context, token string) error {
	if err := r.client.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("session: delete: %w", err)
	}
	return nil
}

func (r *SessionRepository) FindActiveSession(ctx context.Context, token string) (*domain.Session, error) {
	payload, err := r.client.Get(ctx, sessionKey(token)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, fmt.Errorf("session: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("session: load: %w", err)
	}

	var record sessionRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, fmt.Errorf("session: decode: %w", err)
	}

	session := record.toDomain()
	if session.Expired(r.now()) {
		return nil, fmt.Errorf("session: %w", domain.ErrNotFound)
	}
	return session, nil
}

func (rec sessionRecord) toDomain() *domain.Session {
	return &domain.Session{
		ID:        rec.ID,
		UserID:    rec.UserID,
		Token:     rec.Token,
		CreatedAt: rec.CreatedAt,
		ExpiresAt: rec.ExpiresAt,
		IsActive:  true,
	}
}
