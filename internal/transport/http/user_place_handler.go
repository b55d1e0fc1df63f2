package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/service"
	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/util"
)

type UserPlaceHandler struct {
	userPlaces *service.UserPlaceService
}

func RegisterUserPlaces(e *echo.Echo, auth *service.AuthService, userPlaces *service.UserPlaceService) {
	h := &UserPlaceHandler{userPlaces: userPlaces}

	g := e.Group("/api/user-places", RequireAuth(auth))
	g.GET("", h.list)
	g.POST("", h.add)
}

// list accepts an optional ?status=explored|upcoming filter.
func (h *UserPlaceHandler) list(c echo.Context) error {
	userID, ok := CurrentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("Unauthorized"))
	}
	items, err := h.userPlaces.List(c.Request().Context(), userID, c.QueryParam("status"))
	if err != nil {
		return respondError(c, err, "Failed to fetch user places")
	}
	return c.JSON(http.StatusOK, items)
}

func (h *UserPlaceHandler) add(c echo.Context) error {
	userID, ok := CurrentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("Unauthorized"))
	}
	var req userPlaceRequest
	if err := c.Bind(&req); err != nil {
		return badRequestBody(c)
	}
	userPlace, err := h.userPlaces.AddPlace(c.Request().Context(), userID, service.UserPlaceCreateInput{
		PlaceID: req.PlaceID,
		Status:  req.Status,
	})
	if err != nil {
		return respondError(c, err, "Failed to add place")
	}
	return c.JSON(http.StatusOK, userPlace)
}
