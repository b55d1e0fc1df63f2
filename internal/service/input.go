package service

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/domain"
)

// collector accumulates field errors for a single input.
type collector struct {
	errs []domain.FieldError
}

func (c *collector) add(field, message string) {
	c.errs = append(c.errs, domain.FieldError{Field: field, Message: message})
}

func (c *collector) err() error {
	if len(c.errs) == 0 {
		return nil
	}
	return &domain.ValidationError{Errors: c.errs}
}

type RegisterInput struct {
	Username string
	Password string
}

func (i *RegisterInput) normalize() {
	i.Username = strings.TrimSpace(i.Username)
}

func (i RegisterInput) Validate() error {
	var c collector
	if strings.TrimSpace(i.Username) == "" {
		c.add("username", "Username is required")
	}
	if i.Password == "" {
		c.add("password", "Password is required")
	}
	return c.err()
}

type LoginInput struct {
	Username string
	Password string
}

// Validate reports missing fields as ErrMissingCredentials rather than a
// field-level validation error; login never says which field was wrong.
func (i LoginInput) Validate() error {
	if strings.TrimSpace(i.Username) == "" || i.Password == "" {
		return ErrMissingCredentials
	}
	return nil
}

type ReviewCreateInput struct {
	PlaceID string
	Rating  int
	Comment string
}

func (i ReviewCreateInput) Validate() error {
	var c collector
	if strings.TrimSpace(i.PlaceID) == "" {
		c.add("placeId", "Place is required")
	}
	if i.Rating < domain.MinReviewRating || i.Rating > domain.MaxReviewRating {
		c.add("rating", fmt.Sprintf("Rating must be between %d and %d", domain.MinReviewRating, domain.MaxReviewRating))
	}
	if utf8.RuneCountInString(i.Comment) < domain.MinReviewCommentLength {
		c.add("comment", fmt.Sprintf("Review must be at least %d characters", domain.MinReviewCommentLength))
	}
	return c.err()
}

type UserPlaceCreateInput struct {
	PlaceID string
	Status  string
}

func (i UserPlaceCreateInput) Validate() error {
	var c collector
	if strings.TrimSpace(i.PlaceID) == "" {
		c.add("placeId", "Place is required")
	}
	if !domain.UserPlaceStatus(i.Status).Valid() {
		c.add("status", "Status must be one of: explored, upcoming")
	}
	return c.err()
}

type ContactInput struct {
	Name    string
	Email   string
	Message string
}

func (i ContactInput) Validate() error {
	var c collector
	if strings.TrimSpace(i.Name) == "" {
		c.add("name", "Name is required")
	}
	if !validEmail(i.Email) {
		c.add("email", "Invalid email address")
	}
	if utf8.RuneCountInString(i.Message) < domain.MinContactMessageLength {
		c.add("message", fmt.Sprintf("Message must be at least %d characters", domain.MinContactMessageLength))
	}
	return c.err()
}

// validEmail accepts a bare addr-spec with a dotted domain. Display-name
// forms like "Bob <bob@example.com>" are rejected.
func validEmail(value string) bool {
	if value == "" || strings.TrimSpace(value) != value {
		return false
	}
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}
	at := strings.LastIndex(value, "@")
	domainPart := value[at+1:]
	return strings.Contains(domainPart, ".") && !strings.HasSuffix(domainPart, ".") && !strings.HasPrefix(domainPart, ".")
}

// parsePlaceID treats a malformed id the same as an unknown one.
func parsePlaceID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, ErrPlaceNotFound
	}
	return id, nil
}
