package handler

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"leasehub/internal/auth"
	"leasehub/internal/errors"
)

// Context keys set by the middleware in this package.
const (
	ContextKeyToken   = "user"
	ContextKeySession = "session"
)

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// respondError converts a service error into an echo HTTP error with the
// standard {error, code} body.
func respondError(err error) *echo.HTTPError {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

func badRequest(message, code string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// bindAndValidate binds the request body into req and runs the echo validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return badRequest("invalid request body", "INVALID_REQUEST")
	}
	if err := c.Validate(req); err != nil {
		return badRequest(err.Error(), "VALIDATION_ERROR")
	}
	return nil
}

// claimsFrom returns the session claims echo-jwt placed on the context.
func claimsFrom(c echo.Context) (*auth.Claims, bool) {
	token, ok := c.Get(ContextKeyToken).(*jwt.Token)
	if !ok || !token.Valid {
		return nil, false
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok || claims.SessionID == "" {
		return nil, false
	}
	return claims, true
}

// sessionFrom returns the authenticated session stored by SessionGuard.
func sessionFrom(c echo.Context) *auth.Session {
	sess, _ := c.Get(ContextKeySession).(*auth.Session)
	return sess
}

// setSessionCookie hands the browser its session token.
func setSessionCookie(c echo.Context, token string, maxAge int) {
	c.SetCookie(&http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   c.Scheme() == "https",
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
