package http

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

type RouterConfig struct {
	AllowOrigins []string
	Logger       zerolog.Logger
}

func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	allowOrigins := cfg.AllowOrigins
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"*"}
	}
	allowCredentials := true
	for _, origin := range allowOrigins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	e.Use(middleware.RequestID())
	e.Use(requestLogger(cfg.Logger))
	registerLogging(e)

	e.Use(middleware.Recover())
	e.Use(middleware.Secure())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: allowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{
			echo.HeaderContentType,
			echo.HeaderAccept,
			echo.HeaderOrigin,
			echo.HeaderXRequestedWith,
		},
		AllowCredentials: allowCredentials,
	}))

	return e
}

// Pinger reports whether the entity store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

func RegisterHealth(e *echo.Echo, db Pinger) {
	e.GET("/health", func(c echo.Context) error {
		if db == nil {
			return c.JSON(http.StatusOK, echo.Map{"ok": true})
		}
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			zerolog.Ctx(c.Request().Context()).Error().Err(err).Msg("health check: database unreachable")
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"ok": false, "db": "unreachable"})
		}
		return c.JSON(http.StatusOK, echo.Map{"ok": true, "db": "up"})
	})
}
