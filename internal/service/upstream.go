package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"slices"

	"leasehub/internal/auth"
	apperrors "leasehub/internal/errors"
	"leasehub/internal/model"
	"leasehub/internal/upstream"
)

// CookieScope is the URL upstream cookies are scoped to.
type CookieScope interface {
	BaseURL() *url.URL
}

// AuthAPI is the upstream authentication surface.
type AuthAPI interface {
	CookieScope
	Login(ctx context.Context, jar http.CookieJar, creds upstream.Credentials) (*upstream.AuthResult, error)
	Register(ctx context.Context, jar http.CookieJar, reg upstream.Registration) (*upstream.AuthResult, error)
	VerifyOTP(ctx context.Context, jar http.CookieJar, v upstream.OTPVerification) (*upstream.AuthResult, error)
	ResendOTP(ctx context.Context, jar http.CookieJar, email string, typ upstream.OTPType) error
	Logout(ctx context.Context, jar http.CookieJar) error
	Me(ctx context.Context, jar http.CookieJar) (*model.User, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password string) error
	OAuthURL(provider, redirectURI string) (string, error)
}

// TenantAPI is the upstream tenant surface.
type TenantAPI interface {
	CookieScope
	Preferences(ctx context.Context, jar http.CookieJar) (*model.TenantPreferences, error)
	SavePreferences(ctx context.Context, jar http.CookieJar, prefs model.TenantPreferences) error
	CreateRequest(ctx context.Context, jar http.CookieJar, req map[string]any) (string, error)
}

// PropertyAPI is the upstream public listing surface.
type PropertyAPI interface {
	CookieScope
	PublicListings(ctx context.Context, jar http.CookieJar, q url.Values) ([]model.PropertyPayload, error)
	PublicProperty(ctx context.Context, jar http.CookieJar, id string) (*model.PropertyPayload, error)
}

// SessionCleaner drops per-session state when a session ends.
type SessionCleaner interface {
	Clear(ctx context.Context, sessionID string) error
}

// withJar runs fn against the session's upstream cookie jar and persists the
// session when the upstream changed its cookies.
func withJar(ctx context.Context, sessions auth.SessionStore, scope CookieScope, sess *auth.Session, fn func(jar http.CookieJar) error) error {
	base := scope.BaseURL()
	jar, err := sess.Jar(base)
	if err != nil {
		return err
	}
	before := slices.Clone(sess.Cookies)
	callErr := fn(jar)
	sess.Capture(jar, base)
	if !slices.EqualFunc(before, sess.Cookies, auth.Cookie.Equal) {
		if err := sessions.Save(ctx, sess); err != nil && callErr == nil {
			return fmt.Errorf("save session: %w", err)
		}
	}
	return callErr
}

// upstreamError converts an upstream failure. 401/403 become onUnauthorized
// when given, other 4xx become ErrUpstreamRejected, everything else is wrapped.
func upstreamError(op string, err error, onUnauthorized error) error {
	var se *upstream.StatusError
	switch {
	case onUnauthorized != nil && upstream.IsUnauthorized(err):
		return onUnauthorized
	case errors.As(err, &se) && se.StatusCode >= 400 && se.StatusCode < 500:
		return fmt.Errorf("%s: %w: %s", op, apperrors.ErrUpstreamRejected, se.Error())
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
