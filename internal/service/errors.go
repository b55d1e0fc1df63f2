package service

import (
	"errors"

	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/domain"
)

var (
	ErrPlaceNotFound      = errors.New("place not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrMissingCredentials = errors.New("username and password required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionTeardown    = errors.New("logout failed")
)

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}

func isUniqueViolation(err error) bool {
	return errors.Is(err, domain.ErrAlreadyExists)
}
