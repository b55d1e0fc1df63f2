package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/service"
	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/util"
)

type AuthHandler struct {
	auth   *service.AuthService
	cookie CookieConfig
}

func RegisterAuth(e *echo.Echo, auth *service.AuthService, cookie CookieConfig) {
	if cookie.TTL <= 0 {
		cookie.TTL = auth.SessionTTL()
	}
	h := &AuthHandler{auth: auth, cookie: cookie}

	g := e.Group("/api/auth")
	g.POST("/register", h.register)
	g.POST("/login", h.login)
	g.POST("/logout", h.logout, RequireAuth(auth))
	g.GET("/me", h.me, RequireAuth(auth))
}

func (h *AuthHandler) register(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return badRequestBody(c)
	}
	user, err := h.auth.Register(c.Request().Context(), service.RegisterInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return respondError(c, err, "Registration failed")
	}
	return c.JSON(http.StatusOK, newUserResponse(user))
}

func (h *AuthHandler) login(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return badRequestBody(c)
	}
	result, err := h.auth.Login(c.Request().Context(), service.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return respondError(c, err, "Login failed")
	}
	c.SetCookie(h.cookie.issue(result.Token, result.ExpiresAt))
	return c.JSON(http.StatusOK, newUserResponse(result.User))
}

func (h *AuthHandler) logout(c echo.Context) error {
	if err := h.auth.Logout(c.Request().Context(), sessionToken(c)); err != nil {
		return respondError(c, err, "Logout failed")
	}
	c.SetCookie(h.cookie.clear())
	return c.JSON(http.StatusOK, util.Message("Logged out successfully"))
}

func (h *AuthHandler) me(c echo.Context) error {
	userID, ok := CurrentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("Unauthorized"))
	}
	user, err := h.auth.CurrentUser(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, err, "Failed to get user")
	}
	return c.JSON(http.StatusOK, newUserResponse(user))
}
