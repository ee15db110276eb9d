package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"leasehub/internal/errors"
	"leasehub/internal/service"
)

func errUnauthorized() *echo.HTTPError {
	return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
		Error: errors.ErrUnauthorized.Error(),
		Code:  "UNAUTHORIZED",
	})
}

// SessionGuard admits only requests whose token names a confirmed session.
// It must run after the echo-jwt middleware.
func SessionGuard(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := claimsFrom(c)
			if !ok {
				return errUnauthorized()
			}
			sess, err := authService.Authenticate(c.Request().Context(), claims.SessionID)
			if err != nil {
				return errUnauthorized()
			}
			c.Set(ContextKeySession, sess)
			return next(c)
		}
	}
}
