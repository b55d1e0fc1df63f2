package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinReviewRating        = 1
	MaxReviewRating        = 5
	MinReviewCommentLength = 10
)

type Review struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"userId"`
	PlaceID   uuid.UUID `db:"place_id" json:"placeId"`
	Rating    int       `db:"rating" json:"rating"`
	Comment   string    `db:"comment" json:"comment"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// ReviewWithPlace is a review joined with the place it targets. The review
// fields are flattened into the JSON object next to "place".
type ReviewWithPlace struct {
	Review
	Place Place `db:"place" json:"place"`
}
