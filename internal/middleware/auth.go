package middleware

import (
	"errors"
	"strings"

	drepo "StockScope/internal/domain/repository"
	xhttp "StockScope/pkg/http"

	"github.com/labstack/echo/v4"
)

const userIDKey = "auth.user_id"

// Auth resolves the bearer token to a trusted user identifier and stores
// it on the request context. Handlers downstream only ever see the id;
// credential interpretation stops here.
func Auth(sessions drepo.SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)
			if token == "" {
				return xhttp.UnauthorizedResponse(c, "Missing bearer token")
			}

			userID, err := sessions.UserForToken(c.Request().Context(), token)
			if errors.Is(err, drepo.ErrNotFound) {
				return xhttp.UnauthorizedResponse(c, "Token is invalid")
			}
			if err != nil {
				return xhttp.AppErrorResponse(c, err)
			}

			c.Set(userIDKey, userID)
			return next(c)
		}
	}
}

// UserID returns the resolved user id for the request, empty when the
// request did not pass Auth.
func UserID(c echo.Context) string {
	if v, ok := c.Get(userIDKey).(string); ok {
		return v
	}
	return ""
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}
