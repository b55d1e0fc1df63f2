package http

import (
	"github.com/google/uuid"

	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/domain"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

func newUserResponse(u *domain.User) userResponse {
	return userResponse{ID: u.ID, Username: u.Username}
}

type reviewRequest struct {
	PlaceID string `json:"placeId"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type userPlaceRequest struct {
	PlaceID string `json:"placeId"`
	Status  string `json:"status"`
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
