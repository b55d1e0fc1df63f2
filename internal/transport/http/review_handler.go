package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/service"
	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/util"
)

type ReviewHandler struct {
	reviews *service.ReviewService
}

func RegisterReviews(e *echo.Echo, auth *service.AuthService, reviews *service.ReviewService) {
	h := &ReviewHandler{reviews: reviews}

	g := e.Group("/api/reviews")
	g.POST("", h.create, RequireAuth(auth))
	g.GET("/user", h.listMine, RequireAuth(auth))
	g.GET("/place/:placeId", h.listForPlace)
}

func (h *ReviewHandler) create(c echo.Context) error {
	userID, ok := CurrentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("Unauthorized"))
	}
	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return badRequestBody(c)
	}
	review, err := h.reviews.CreateReview(c.Request().Context(), userID, service.ReviewCreateInput{
		PlaceID: req.PlaceID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return respondError(c, err, "Failed to create review")
	}
	return c.JSON(http.StatusOK, review)
}

func (h *ReviewHandler) listMine(c echo.Context) error {
	userID, ok := CurrentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("Unauthorized"))
	}
	reviews, err := h.reviews.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, err, "Failed to fetch reviews")
	}
	return c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) listForPlace(c echo.Context) error {
	reviews, err := h.reviews.ListByPlace(c.Request().Context(), c.Param("placeId"))
	if err != nil {
		return respondError(c, err, "Failed to fetch reviews")
	}
	return c.JSON(http.StatusOK, reviews)
}
