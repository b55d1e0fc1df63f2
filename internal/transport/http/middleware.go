package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/service"
	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/util"
	"github.com/njprem/ExploreIndia_APP_BackEnd/pkg/ctxutil"
)

const (
	contextUserIDKey = "auth.user_id"
	contextTokenKey  = "auth.token"

	SessionCookieName = "explore_session"
)

type CookieConfig struct {
	Secure bool
	TTL    time.Duration
}

func (cfg CookieConfig) issue(token string, expiresAt time.Time) *http.Cookie {
	maxAge := int(time.Until(expiresAt).Seconds())
	if maxAge <= 0 {
		maxAge = int(cfg.TTL.Seconds())
	}
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (cfg CookieConfig) clear() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// RequireAuth resolves the session cookie to a user id. Requests without a
// valid session get 401 with the same body whatever the reason.
func RequireAuth(auth *service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return c.JSON(http.StatusUnauthorized, util.Error("Unauthorized"))
			}

			req := c.Request()
			userID, _, err := auth.Authenticate(req.Context(), cookie.Value)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, util.Error("Unauthorized"))
			}

			logger := zerolog.Ctx(req.Context()).With().Str("user_id", userID.String()).Logger()
			ctx := logger.WithContext(ctxutil.WithUserID(req.Context(), userID))
			c.SetRequest(req.WithContext(ctx))
			c.Set(contextUserIDKey, userID)
			c.Set(contextTokenKey, cookie.Value)
			return next(c)
		}
	}
}

func CurrentUserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(contextUserIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return ctxutil.UserIDFromCtx(c.Request().Context())
	}
	return id, true
}

func sessionToken(c echo.Context) string {
	token, _ := c.Get(contextTokenKey).(string)
	return token
}

// requestLogger puts a request-scoped logger carrying the request id on the
// request context.
func requestLogger(base zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			rid := c.Response().Header().Get(echo.HeaderXRequestID)
			logger := base.With().Str("request_id", rid).Logger()
			ctx := logger.WithContext(ctxutil.WithRequestID(req.Context(), rid))
			c.SetRequest(req.WithContext(ctx))
			return next(c)
		}
	}
}
