package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/service"
)

type PlaceHandler struct {
	places *service.PlaceService
}

func RegisterPlaces(e *echo.Echo, places *service.PlaceService) {
	h := &PlaceHandler{places: places}
	e.GET("/api/places", h.list)
	e.GET("/api/places/:id", h.get)
}

// list accepts repeated ?category= parameters.
func (h *PlaceHandler) list(c echo.Context) error {
	places, err := h.places.List(c.Request().Context(), c.QueryParams()["category"])
	if err != nil {
		return respondError(c, err, "Failed to fetch places")
	}
	return c.JSON(http.StatusOK, places)
}

func (h *PlaceHandler) get(c echo.Context) error {
	place, err := h.places.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err, "Failed to fetch place")
	}
	return c.JSON(http.StatusOK, place)
}
