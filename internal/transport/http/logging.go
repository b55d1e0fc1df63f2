package http

import (
	"encoding/json"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

const (
	requestBodyLogKey  = "http.request.body.summary"
	responseBodyLogKey = "http.response.body.summary"
	maxLoggedBody      = 2048
)

func registerLogging(e *echo.Echo) {
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			userID := "anonymous"
			if id, ok := CurrentUserID(c); ok {
				userID = id.String()
			}

			logger := zerolog.Ctx(c.Request().Context())
			event := logger.Info()
			switch {
			case v.Status >= 500:
				event = logger.Error()
			case v.Status >= 400:
				event = logger.Warn()
			}

			event = event.
				Str("user_id", userID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Int64("latency_ms", v.Latency.Milliseconds())

			if summary := c.Get(requestBodyLogKey); summary != nil {
				event = event.Interface("request_body", summary)
			}
			if summary := c.Get(responseBodyLogKey); summary != nil {
				event = event.Interface("response_body", summary)
			}
			if v.Error != nil {
				event = event.Err(v.Error)
			}
			event.Msg("http request")
			return nil
		},
	}))

	e.Use(middleware.BodyDump(func(c echo.Context, reqBody, resBody []byte) {
		if summary := sanitizeBody(reqBody, c.Request().Header.Get(echo.HeaderContentType)); summary != nil {
			c.Set(requestBodyLogKey, summary)
		}
		if summary := sanitizeBody(resBody, c.Response().Header().Get(echo.HeaderContentType)); summary != nil {
			c.Set(responseBodyLogKey, summary)
		}
	}))
}

// sanitizeBody turns a request or response body into something safe to log.
// JSON is logged with secret fields redacted; anything large is reduced to
// its shape. Non-UTF-8 bodies are logged as "binary".
func sanitizeBody(body []byte, contentType string) any {
	if len(body) == 0 {
		return nil
	}

	var data any
	isJSON := strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), echo.MIMEApplicationJSON)
	if (isJSON || json.Valid(body)) && json.Unmarshal(body, &data) == nil {
		redacted := redactSecrets(data, false)
		if len(body) <= maxLoggedBody {
			return redacted
		}
		return bodyShape(redacted, len(body))
	}

	if !utf8.Valid(body) {
		return "binary"
	}
	text := string(body)
	if strings.Contains(strings.ToLower(text), "password") {
		return "redacted"
	}
	return clampString(text)
}

// redactSecrets replaces every value stored under a secret-looking key.
func redactSecrets(value any, secret bool) any {
	if secret {
		return "redacted"
	}
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, val := range v {
			out[key] = redactSecrets(val, isSecretKey(strings.ToLower(key)))
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = redactSecrets(item, false)
		}
		return out
	case string:
		return clampString(v)
	default:
		return v
	}
}

// bodyShape summarises an oversized JSON document: its size and either the
// top-level keys or the number of items.
func bodyShape(value any, size int) map[string]any {
	shape := map[string]any{"_truncated": true, "_bytes": size}
	switch v := value.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		shape["_keys"] = keys
	case []any:
		shape["_items"] = len(v)
	}
	return shape
}

func clampString(value string) string {
	if len(value) <= maxLoggedBody {
		return value
	}
	truncated := value[:maxLoggedBody]
	for !utf8.ValidString(truncated) && len(truncated) > 0 {
		truncated = truncated[:len(truncated)-1]
	}
	return truncated + "...(truncated)"
}

func isSecretKey(lowerKey string) bool {
	return strings.Contains(lowerKey, "password") || strings.Contains(lowerKey, "token") || lowerKey == SessionCookieName
}
