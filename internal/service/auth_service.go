package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/domain"
	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/repository/ports"
	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/util"
)

// tokenIssuer signs the session reference handed to the client.
type tokenIssuer interface {
	Generate(userID uuid.UUID, sessionToken string, expiresAt time.Time) (string, error)
	Parse(token string) (*util.Claims, error)
}

type AuthServiceConfig struct {
	SessionTTL time.Duration
}

type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionRepository
	tokens   tokenIssuer

	sessionTTL time.Duration
	now        func() time.Time
	newToken   func() (string, error)

	// dummyHash is compared against when the username is unknown so that
	// both login failure paths do the same amount of work.
	dummyHash string
}

type LoginResult struct {
	User      *domain.User
	Token     string
	ExpiresAt time.Time
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionRepository, tokens tokenIssuer, cfg AuthServiceConfig) *AuthService {
	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = domain.DefaultSessionTTL
	}
	dummy, err := util.HashPassword(uuid.NewString())
	if err != nil {
		dummy = ""
	}
	return &AuthService{
		users:      users,
		sessions:   sessions,
		tokens:     tokens,
		sessionTTL: ttl,
		now:        time.Now,
		newToken:   util.NewSessionToken,
		dummyHash:  dummy,
	}
}

func (s *AuthService) SessionTTL() time.Duration {
	return s.sessionTTL
}

// Register creates an account. The username is trimmed; the password is
// stored only as an argon2id hash.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.users.FindByUsername(ctx, input.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !isNotFound(err) {
		return nil, fmt.Errorf("lookup username: %w", err)
	}

	hash, err := util.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, input.Username, hash)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	zerolog.Ctx(ctx).Info().Str("user_id", user.ID.String()).Msg("user registered")
	return user, nil
}

// Login verifies credentials and opens a new session.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	input.Username = strings.TrimSpace(input.Username)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.FindByUsername(ctx, input.Username)
	if err != nil {
		if isNotFound(err) {
			util.VerifyPassword(input.Password, s.dummyHash)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if !util.VerifyPassword(input.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	sessionToken, err := s.newToken()
	if err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}
	expiresAt := s.now().Add(s.sessionTTL)
	session, err := s.sessions.CreateSession(ctx, user.ID, sessionToken, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	signed, err := s.tokens.Generate(user.ID, session.Token, session.ExpiresAt)
	if err != nil {
		return nil, fmt.Errorf("sign session: %w", err)
	}

	zerolog.Ctx(ctx).Info().Str("user_id", user.ID.String()).Msg("user logged in")
	return &LoginResult{User: user, Token: signed, ExpiresAt: session.ExpiresAt}, nil
}

// Authenticate resolves a cookie value to a user id. Every failure is
// reported as domain.ErrUnauthorized.
func (s *AuthService) Authenticate(ctx context.Context, token string) (uuid.UUID, *domain.Session, error) {
	if token == "" {
		return uuid.Nil, nil, domain.ErrUnauthorized
	}
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return uuid.Nil, nil, domain.ErrUnauthorized
	}
	session, err := s.sessions.FindActiveSession(ctx, claims.SessionToken())
	if err != nil {
		if !isNotFound(err) {
			zerolog.Ctx(ctx).Error().Err(err).Msg("session lookup failed")
		}
		return uuid.Nil, nil, domain.ErrUnauthorized
	}
	if session.UserID != claims.UserID || session.Expired(s.now()) {
		return uuid.Nil, nil, domain.ErrUnauthorized
	}
	return session.UserID, session, nil
}

// Logout deactivates the session behind token. A token that no longer maps
// to a session is not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil
	}
	if err := s.sessions.DeactivateSession(ctx, claims.SessionToken()); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("session teardown failed")
		return errors.Join(ErrSessionTeardown, err)
	}
	return nil
}

func (s *AuthService) CurrentUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	return user, nil
}
