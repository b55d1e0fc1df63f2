package domain

import (
	"time"

	"github.com/google/uuid"
)

type UserPlaceStatus string

const (
	UserPlaceStatusExplored UserPlaceStatus = "explored"
	UserPlaceStatusUpcoming UserPlaceStatus = "upcoming"
)

func (s UserPlaceStatus) Valid() bool {
	switch s {
	case UserPlaceStatusExplored, UserPlaceStatusUpcoming:
		return true
	default:
		return false
	}
}

// UserPlace records a user's relationship to a place. The status is fixed at
// creation; a change of mind is a new row.
type UserPlace struct {
	ID        uuid.UUID       `db:"id" json:"id"`
	UserID    uuid.UUID       `db:"user_id" json:"userId"`
	PlaceID   uuid.UUID       `db:"place_id" json:"placeId"`
	Status    UserPlaceStatus `db:"status" json:"status"`
	CreatedAt time.Time       `db:"created_at" json:"createdAt"`
}

type UserPlaceWithPlace struct {
	UserPlace
	Place Place `db:"place" json:"place"`
}

type UserPlaceListFilter struct {
	Status *UserPlaceStatus
}
