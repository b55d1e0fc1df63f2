package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/service"
)

type ContactHandler struct {
	contact *service.ContactService
}

func RegisterContact(e *echo.Echo, contact *service.ContactService) {
	h := &ContactHandler{contact: contact}
	e.POST("/api/contact", h.submit)
}

func (h *ContactHandler) submit(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return badRequestBody(c)
	}
	msg, err := h.contact.Submit(c.Request().Context(), service.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		return respondError(c, err, "Failed to send message")
	}
	return c.JSON(http.StatusOK, msg)
}
