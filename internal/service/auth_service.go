package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"go.uber.org/zap"

	"leasehub/internal/auth"
	"leasehub/internal/bootstrap"
	apperrors "leasehub/internal/errors"
	"leasehub/internal/model"
	"leasehub/internal/upstream"
)

// pendingOAuth marks a session that is waiting for the provider callback.
const pendingOAuth = "oauth"

// DefaultOAuthProviders are the providers offered when none are configured.
var DefaultOAuthProviders = []string{"google", "facebook", "apple"}

// AuthResponse is the outcome of an authentication step.
// Token is the browser's session token; Route is where the browser goes next.
type AuthResponse struct {
	Token string          `json:"token"`
	Route bootstrap.Route `json:"route"`
	Next  string          `json:"next"`
	User  *model.User     `json:"user,omitempty"`
}

// RegisterInput is a sign-up request.
type RegisterInput struct {
	FullName string
	Email    string
	Password string
	Role     model.Role
}

// OAuthCallback is what the provider round trip reports back.
type OAuthCallback struct {
	Success bool
	UserID  string
	Error   string
	// Cookies the browser presented on the callback. Upstream cookies shared
	// on a parent domain are adopted into the session.
	Cookies []*http.Cookie
}

// AuthService handles authentication operations.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*AuthResponse, error)
	Register(ctx context.Context, in RegisterInput) (*AuthResponse, error)
	VerifyOTP(ctx context.Context, sessionID, code string) (*AuthResponse, error)
	ResendOTP(ctx context.Context, sessionID string) error
	Logout(ctx context.Context, sessionID string) error
	Authenticate(ctx context.Context, sessionID string) (*auth.Session, error)
	CurrentUser(ctx context.Context, sessionID string) (*model.User, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password string) error
	StartOAuth(ctx context.Context, provider string) (token, redirect string, err error)
	CompleteOAuth(ctx context.Context, sessionID string, cb OAuthCallback) (*AuthResponse, error)
}

// AuthOptions configures the auth service.
type AuthOptions struct {
	// OAuthCallbackURL is this service's public callback address.
	OAuthCallbackURL string
	OAuthProviders   []string
}

type authService struct {
	api      AuthAPI
	sessions auth.SessionStore
	jwt      *auth.JWTService
	resolver *bootstrap.Resolver
	cleaners []SessionCleaner
	opts     AuthOptions
	logger   *zap.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	api AuthAPI,
	sessions auth.SessionStore,
	jwtService *auth.JWTService,
	resolver *bootstrap.Resolver,
	cleaners []SessionCleaner,
	opts AuthOptions,
	logger *zap.Logger,
) AuthService {
	if len(opts.OAuthProviders) == 0 {
		opts.OAuthProviders = DefaultOAuthProviders
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &authService{
		api:      api,
		sessions: sessions,
		jwt:      jwtService,
		resolver: resolver,
		cleaners: cleaners,
		opts:     opts,
		logger:   logger,
	}
}

// Login signs in upstream on a fresh session and resolves the landing route.
func (s *authService) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	sess, err := s.sessions.Create(ctx)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	var res *upstream.AuthResult
	err = withJar(ctx, s.sessions, s.api, sess, func(jar http.CookieJar) error {
		var err error
		res, err = s.api.Login(ctx, jar, upstream.Credentials{Email: email, Password: password})
		return err
	})
	if err != nil {
		s.discard(ctx, sess.ID)
		if upstream.HasStatus(err, http.StatusBadRequest) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, upstreamError("login", err, apperrors.ErrInvalidCredentials)
	}

	return s.settle(ctx, sess, email, res)
}

// Register creates the upstream account and continues like a login.
func (s *authService) Register(ctx context.Context, in RegisterInput) (*AuthResponse, error) {
	sess, err := s.sessions.Create(ctx)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	var res *upstream.AuthResult
	err = withJar(ctx, s.sessions, s.api, sess, func(jar http.CookieJar) error {
		var err error
		res, err = s.api.Register(ctx, jar, upstream.Registration{
			FullName: in.FullName,
			Email:    in.Email,
			Password: in.Password,
			Role:     string(in.Role),
		})
		return err
	})
	if err != nil {
		s.discard(ctx, sess.ID)
		if upstream.HasStatus(err, http.StatusConflict) {
			return nil, apperrors.ErrAccountExists
		}
		return nil, upstreamError("register", err, nil)
	}

	return s.settle(ctx, sess, in.Email, res)
}

// VerifyOTP submits the code for the session's pending verification.
func (s *authService) VerifyOTP(ctx context.Context, sessionID, code string) (*AuthResponse, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Pending == nil || sess.Pending.Type == pendingOAuth {
		return nil, apperrors.ErrNoPendingVerification
	}

	var res *upstream.AuthResult
	err = withJar(ctx, s.sessions, s.api, sess, func(jar http.CookieJar) error {
		var err error
		res, err = s.api.VerifyOTP(ctx, jar, upstream.OTPVerification{
			Email: sess.Pending.Email,
			Code:  code,
			Type:  upstream.OTPType(sess.Pending.Type),
		})
		return err
	})
	if err != nil {
		if upstream.HasStatus(err, http.StatusBadRequest) {
			return nil, apperrors.ErrInvalidOTP
		}
		return nil, upstreamError("verify otp", err, apperrors.ErrInvalidOTP)
	}

	email := sess.Pending.Email
	sess.Pending = nil
	return s.settle(ctx, sess, email, res)
}

// ResendOTP asks the upstream to send the pending code again.
func (s *authService) ResendOTP(ctx context.Context, sessionID string) error {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if sess.Pending == nil || sess.Pending.Type == pendingOAuth {
		return apperrors.ErrNoPendingVerification
	}
	err = withJar(ctx, s.sessions, s.api, sess, func(jar http.CookieJar) error {
		return s.api.ResendOTP(ctx, jar, sess.Pending.Email, upstream.OTPType(sess.Pending.Type))
	})
	if err != nil {
		return upstreamError("resend otp", err, nil)
	}
	return nil
}

// settle applies an upstream auth result to sess: it records a pending
// verification or confirms the session, then saves it and issues a token.
func (s *authService) settle(ctx context.Context, sess *auth.Session, email string, res *upstream.AuthResult) (*AuthResponse, error) {
	outcome := bootstrap.Outcome{
		RequiresEmailVerification:  res.RequiresEmailVerification,
		RequiresDeviceVerification: res.RequiresDeviceVerification,
	}

	jar, err := sess.Jar(s.api.BaseURL())
	if err != nil {
		return nil, err
	}
	result, err := s.resolver.Resolve(ctx, jar, outcome)
	if err != nil {
		if errors.Is(err, apperrors.ErrAuthenticationFailed) {
			s.logger.Warn("session not confirmed after authentication", zap.String("session_id", sess.ID))
			s.discard(ctx, sess.ID)
		}
		return nil, err
	}
	sess.Capture(jar, s.api.BaseURL())

	if result.Pending() {
		sess.Pending = &auth.Pending{Type: result.Route.Query.Get("type"), Email: email}
		sess.User = nil
	} else {
		sess.Pending = nil
		sess.User = result.User
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	token, err := s.jwt.GenerateSessionToken(sess)
	if err != nil {
		return nil, fmt.Errorf("issue session token: %w", err)
	}
	return &AuthResponse{Token: token, Route: result.Route, Next: result.Route.String(), User: result.User}, nil
}

// Logout ends the session. Upstream failures are logged and never block the local teardown.
func (s *authService) Logout(ctx context.Context, sessionID string) error {
	sess, err := s.sessions.Get(ctx, sessionID)
	switch {
	case err == nil:
		err = withJar(ctx, s.sessions, s.api, sess, func(jar http.CookieJar) error {
			return s.api.Logout(ctx, jar)
		})
		if err != nil {
			s.logger.Warn("upstream logout failed", zap.String("session_id", sessionID), zap.Error(err))
		}
	case errors.Is(err, apperrors.ErrSessionNotFound):
	default:
		s.logger.Warn("load session for logout", zap.String("session_id", sessionID), zap.Error(err))
	}

	s.discard(ctx, sessionID)
	return nil
}

// discard drops the session and everything keyed by it.
func (s *authService) discard(ctx context.Context, sessionID string) {
	for _, c := range s.cleaners {
		if err := c.Clear(ctx, sessionID); err != nil {
			s.logger.Warn("clear session state", zap.String("session_id", sessionID), zap.Error(err))
		}
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		s.logger.Warn("delete session", zap.String("session_id", sessionID), zap.Error(err))
	}
}

// Authenticate returns the session when it belongs to a confirmed user.
func (s *authService) Authenticate(ctx context.Context, sessionID string) (*auth.Session, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrSessionNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}
	if !sess.Authenticated() {
		return nil, apperrors.ErrUnauthorized
	}
	return sess, nil
}

// CurrentUser re-fetches the user from the upstream. Any failure to do so
// means the browser is not authenticated.
func (s *authService) CurrentUser(ctx context.Context, sessionID string) (*model.User, error) {
	sess, err := s.Authenticate(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	var user *model.User
	err = withJar(ctx, s.sessions, s.api, sess, func(jar http.CookieJar) error {
		var err error
		user, err = s.api.Me(ctx, jar)
		return err
	})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		s.logger.Info("current user unavailable", zap.String("session_id", sessionID), zap.Error(err))
		return nil, apperrors.ErrUnauthorized
	}

	if *user != *sess.User {
		sess.User = user
		if err := s.sessions.Save(ctx, sess); err != nil {
			return nil, fmt.Errorf("save session: %w", err)
		}
	}
	return user, nil
}

// ForgotPassword starts the reset email flow.
func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	if err := s.api.ForgotPassword(ctx, email); err != nil {
		return upstreamError("forgot password", err, nil)
	}
	return nil
}

// ResetPassword sets a new password with an emailed token.
func (s *authService) ResetPassword(ctx context.Context, token, password string) error {
	if err := s.api.ResetPassword(ctx, token, password); err != nil {
		if upstream.HasStatus(err, http.StatusBadRequest) || upstream.IsUnauthorized(err) || upstream.IsNotFound(err) {
			return apperrors.ErrInvalidResetToken
		}
		return upstreamError("reset password", err, nil)
	}
	return nil
}

// StartOAuth opens a session awaiting the provider callback and returns its
// token plus the provider URL the browser is sent to.
func (s *authService) StartOAuth(ctx context.Context, provider string) (string, string, error) {
	provider = strings.ToLower(strings.TrimSpace(provider))
	if !slices.Contains(s.opts.OAuthProviders, provider) {
		return "", "", apperrors.ErrUnsupportedProvider
	}

	sess, err := s.sessions.Create(ctx)
	if err != nil {
		return "", "", fmt.Errorf("create session: %w", err)
	}
	sess.Pending = &auth.Pending{Type: pendingOAuth}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return "", "", fmt.Errorf("save session: %w", err)
	}

	redirect, err := s.api.OAuthURL(provider, s.opts.OAuthCallbackURL)
	if err != nil {
		return "", "", fmt.Errorf("build oauth url: %w", err)
	}
	token, err := s.jwt.GenerateSessionToken(sess)
	if err != nil {
		return "", "", fmt.Errorf("issue session token: %w", err)
	}
	return token, redirect, nil
}

// CompleteOAuth finishes the provider round trip and resolves the landing route.
func (s *authService) CompleteOAuth(ctx context.Context, sessionID string, cb OAuthCallback) (*AuthResponse, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Pending == nil || sess.Pending.Type != pendingOAuth {
		return nil, apperrors.ErrNoPendingVerification
	}
	if !cb.Success {
		s.logger.Info("oauth sign-in failed", zap.String("session_id", sessionID), zap.String("reason", cb.Error))
		s.discard(ctx, sessionID)
		return nil, apperrors.ErrOAuthFailed
	}

	base := s.api.BaseURL()
	jar, err := sess.Jar(base)
	if err != nil {
		return nil, err
	}
	if len(cb.Cookies) > 0 {
		adopted := make([]*http.Cookie, 0, len(cb.Cookies))
		for _, c := range cb.Cookies {
			if c.Name == auth.CookieName {
				continue
			}
			adopted = append(adopted, &http.Cookie{Name: c.Name, Value: c.Value, Path: "/"})
		}
		jar.SetCookies(base, adopted)
		sess.Capture(jar, base)
	}

	sess.Pending = nil
	resp, err := s.settle(ctx, sess, "", &upstream.AuthResult{})
	if err != nil {
		return nil, err
	}
	if cb.UserID != "" && resp.User != nil && resp.User.UserID != cb.UserID {
		s.logger.Warn("oauth callback user mismatch", zap.String("session_id", sessionID))
		s.discard(ctx, sessionID)
		return nil, apperrors.ErrOAuthFailed
	}
	return resp, nil
}

// OAuthCallbackURL is the callback address for a service reachable at publicBase.
func OAuthCallbackURL(publicBase string) string {
	u, err := url.JoinPath(publicBase, "/api/auth/oauth/callback")
	if err != nil {
		return strings.TrimRight(publicBase, "/") + "/api/auth/oauth/callback"
	}
	return u
}
