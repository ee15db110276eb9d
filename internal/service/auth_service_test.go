package service

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"leasehub/internal/auth"
	"leasehub/internal/bootstrap"
	"leasehub/internal/cache"
	apperrors "leasehub/internal/errors"
	"leasehub/internal/filter"
	"leasehub/internal/model"
	"leasehub/internal/upstream"
)

type authFixture struct {
	api      *MockUpstream
	sessions *auth.RedisSessionStore
	jwt      *auth.JWTService
	filters  FilterService
	svc      AuthService
}

func newAuthFixture() *authFixture {
	api := &MockUpstream{}
	sessions, mem := newSessionStore()
	jwtService := auth.NewJWTService("test-secret", time.Hour)
	filters := NewFilterService(mem, time.Hour)
	svc := NewAuthService(api, sessions, jwtService, newTestResolver(api), []SessionCleaner{filters},
		AuthOptions{OAuthCallbackURL: "http://bff.test/api/auth/oauth/callback"}, nil)
	return &authFixture{api: api, sessions: sessions, jwt: jwtService, filters: filters, svc: svc}
}

// setUpstreamCookie simulates the upstream setting its session cookie.
func setUpstreamCookie(value string) func(mock.Arguments) {
	return func(args mock.Arguments) {
		jar := args.Get(1).(http.CookieJar)
		jar.SetCookies(testBaseURL, []*http.Cookie{{Name: "sid", Value: value, Path: "/"}})
	}
}

// requireUpstreamCookie matches a jar that carries the upstream cookie.
func requireUpstreamCookie(value string) interface{} {
	return mock.MatchedBy(func(jar http.CookieJar) bool {
		for _, c := range jar.Cookies(testBaseURL) {
			if c.Name == "sid" && c.Value == value {
				return true
			}
		}
		return false
	})
}

func (f *authFixture) sessionFromToken(t *testing.T, token string) *auth.Session {
	t.Helper()
	claims, err := f.jwt.ValidateToken(token)
	require.NoError(t, err)
	sess, err := f.sessions.Get(context.Background(), claims.SessionID)
	require.NoError(t, err)
	return sess
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name      string
		user      *model.User
		prefs     *model.TenantPreferences
		prefsErr  error
		wantRoute string
	}{
		{
			name:      "property manager lands on dashboard",
			user:      &model.User{UserID: "u1", Role: model.RolePropertyManager},
			wantRoute: bootstrap.PathPropertyManager,
		},
		{
			name:      "tenant without preferences goes to onboarding",
			user:      &model.User{UserID: "u2", Role: model.RoleTenant},
			prefsErr:  &upstream.StatusError{StatusCode: http.StatusNotFound},
			wantRoute: bootstrap.PathTenantOnboarding,
		},
		{
			name:      "onboarded tenant lands on dashboard",
			user:      &model.User{UserID: "u3", Role: model.RoleTenant},
			prefs:     &model.TenantPreferences{RentalTypes: []string{"apartment"}},
			wantRoute: bootstrap.PathTenantDashboard,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture()
			f.api.On("Login", mock.Anything, mock.Anything, upstream.Credentials{Email: "a@b.co", Password: "secret123"}).
				Run(setUpstreamCookie("up1")).
				Return(&upstream.AuthResult{}, nil)
			f.api.On("Me", mock.Anything, requireUpstreamCookie("up1")).Return(tt.user, nil)
			if tt.user.Role == model.RoleTenant {
				if tt.prefs != nil {
					f.api.On("Preferences", mock.Anything, mock.Anything).Return(tt.prefs, nil)
				} else {
					f.api.On("Preferences", mock.Anything, mock.Anything).Return(nil, tt.prefsErr)
				}
			}

			resp, err := f.svc.Login(context.Background(), "a@b.co", "secret123")
			require.NoError(t, err)
			assert.Equal(t, tt.wantRoute, resp.Next)
			assert.Equal(t, tt.user.UserID, resp.User.UserID)

			sess := f.sessionFromToken(t, resp.Token)
			assert.True(t, sess.Authenticated())
			assert.Equal(t, []auth.Cookie{{Name: "sid", Value: "up1", Path: "/"}}, sess.Cookies)
			f.api.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	f := newAuthFixture()
	f.api.On("Login", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &upstream.StatusError{StatusCode: http.StatusUnauthorized})

	resp, err := f.svc.Login(context.Background(), "a@b.co", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	assert.Nil(t, resp)
	f.api.AssertNotCalled(t, "Me", mock.Anything, mock.Anything)
}

func TestAuthService_Login_UpstreamDown(t *testing.T) {
	f := newAuthFixture()
	f.api.On("Login", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &upstream.StatusError{StatusCode: http.StatusServiceUnavailable})

	_, err := f.svc.Login(context.Background(), "a@b.co", "pw")
	assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
}

func TestAuthService_Login_SessionNeverConfirmed(t *testing.T) {
	f := newAuthFixture()
	f.api.On("Login", mock.Anything, mock.Anything, mock.Anything).Return(&upstream.AuthResult{}, nil)
	f.api.On("Me", mock.Anything, mock.Anything).Return(nil, &upstream.StatusError{StatusCode: http.StatusUnauthorized})

	resp, err := f.svc.Login(context.Background(), "a@b.co", "pw")
	assert.ErrorIs(t, err, apperrors.ErrAuthenticationFailed)
	assert.Nil(t, resp)
	f.api.AssertNumberOfCalls(t, "Me", 3)
}

func TestAuthService_EmailVerificationThenOTP(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()
	f.api.On("Login", mock.Anything, mock.Anything, mock.Anything).
		Run(setUpstreamCookie("pre")).
		Return(&upstream.AuthResult{RequiresEmailVerification: true}, nil)

	resp, err := f.svc.Login(ctx, "a@b.co", "pw")
	require.NoError(t, err)
	assert.Equal(t, "/verify-otp?type=email", resp.Next)
	assert.Nil(t, resp.User)
	f.api.AssertNotCalled(t, "Me", mock.Anything, mock.Anything)

	sess := f.sessionFromToken(t, resp.Token)
	require.NotNil(t, sess.Pending)
	assert.Equal(t, "email", sess.Pending.Type)

	_, err = f.svc.Authenticate(ctx, sess.ID)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	f.api.On("VerifyOTP", mock.Anything, requireUpstreamCookie("pre"), upstream.OTPVerification{Email: "a@b.co", Code: "123456", Type: upstream.OTPEmail}).
		Run(setUpstreamCookie("post")).
		Return(&upstream.AuthResult{}, nil)
	f.api.On("Me", mock.Anything, requireUpstreamCookie("post")).
		Return(&model.User{UserID: "u1", Role: model.RoleServicePro}, nil)

	resp, err = f.svc.VerifyOTP(ctx, sess.ID, "123456")
	require.NoError(t, err)
	assert.Equal(t, bootstrap.PathServiceProvider, resp.Next)

	got, err := f.svc.Authenticate(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "u1", got.User.UserID)
}

func TestAuthService_DeviceVerificationAfterEmail(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()
	f.api.On("Login", mock.Anything, mock.Anything, mock.Anything).
		Return(&upstream.AuthResult{RequiresEmailVerification: true}, nil)
	resp, err := f.svc.Login(ctx, "a@b.co", "pw")
	require.NoError(t, err)
	sess := f.sessionFromToken(t, resp.Token)

	f.api.On("VerifyOTP", mock.Anything, mock.Anything, mock.Anything).
		Return(&upstream.AuthResult{RequiresDeviceVerification: true}, nil)

	resp, err = f.svc.VerifyOTP(ctx, sess.ID, "111111")
	require.NoError(t, err)
	assert.Equal(t, "/verify-otp?type=device", resp.Next)

	sess = f.sessionFromToken(t, resp.Token)
	require.NotNil(t, sess.Pending)
	assert.Equal(t, "device", sess.Pending.Type)
	assert.Equal(t, "a@b.co", sess.Pending.Email)
}

func TestAuthService_VerifyOTP_Errors(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	_, err := f.svc.VerifyOTP(ctx, "missing", "1")
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)

	confirmed := authedSession(f.sessions, &model.User{UserID: "u1"})
	_, err = f.svc.VerifyOTP(ctx, confirmed.ID, "1")
	assert.ErrorIs(t, err, apperrors.ErrNoPendingVerification)

	pending, err := f.sessions.Create(ctx)
	require.NoError(t, err)
	pending.Pending = &auth.Pending{Type: "email", Email: "a@b.co"}
	require.NoError(t, f.sessions.Save(ctx, pending))

	f.api.On("VerifyOTP", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &upstream.StatusError{StatusCode: http.StatusBadRequest})
	_, err = f.svc.VerifyOTP(ctx, pending.ID, "000000")
	assert.ErrorIs(t, err, apperrors.ErrInvalidOTP)

	still, err := f.sessions.Get(ctx, pending.ID)
	require.NoError(t, err)
	assert.NotNil(t, still.Pending, "a wrong code keeps the verification pending")
}

func TestAuthService_Logout_BestEffort(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()
	sess := authedSession(f.sessions, &model.User{UserID: "u1", Role: model.RoleTenant})
	_, err := f.filters.Update(ctx, sess.ID, filter.Patch{Location: &model.Location{City: "Dallas"}})
	require.NoError(t, err)

	f.api.On("Logout", mock.Anything, mock.Anything).Return(&upstream.TransportError{Err: context.DeadlineExceeded})

	require.NoError(t, f.svc.Logout(ctx, sess.ID))

	_, err = f.sessions.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
	st, err := f.filters.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.False(t, st.LocationModified, "filters start over after logout")

	assert.NoError(t, f.svc.Logout(ctx, "unknown"))
}

func TestAuthService_CurrentUser(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()
	sess := authedSession(f.sessions, &model.User{UserID: "u1", Role: model.RoleTenant, FullName: "Old"})

	f.api.On("Me", mock.Anything, mock.Anything).Return(&model.User{UserID: "u1", Role: model.RoleTenant, FullName: "New"}, nil).Once()
	u, err := f.svc.CurrentUser(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", u.FullName)

	stored, err := f.sessions.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", stored.User.FullName)

	f.api.On("Me", mock.Anything, mock.Anything).Return(nil, &upstream.StatusError{StatusCode: http.StatusUnauthorized}).Once()
	_, err = f.svc.CurrentUser(ctx, sess.ID)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestAuthService_Register(t *testing.T) {
	f := newAuthFixture()
	in := RegisterInput{FullName: "Ann", Email: "a@b.co", Password: "secret123", Role: model.RoleTenant}
	f.api.On("Register", mock.Anything, mock.Anything, upstream.Registration{FullName: "Ann", Email: "a@b.co", Password: "secret123", Role: "TENANT"}).
		Return(&upstream.AuthResult{RequiresEmailVerification: true}, nil).Once()

	resp, err := f.svc.Register(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "/verify-otp?type=email", resp.Next)

	f.api.On("Register", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &upstream.StatusError{StatusCode: http.StatusConflict}).Once()
	_, err = f.svc.Register(context.Background(), in)
	assert.ErrorIs(t, err, apperrors.ErrAccountExists)
}

func TestAuthService_ResetPassword(t *testing.T) {
	f := newAuthFixture()
	f.api.On("ResetPassword", mock.Anything, "bad", "newpass123").Return(&upstream.StatusError{StatusCode: http.StatusBadRequest})
	f.api.On("ResetPassword", mock.Anything, "good", "newpass123").Return(nil)

	assert.ErrorIs(t, f.svc.ResetPassword(context.Background(), "bad", "newpass123"), apperrors.ErrInvalidResetToken)
	assert.NoError(t, f.svc.ResetPassword(context.Background(), "good", "newpass123"))
}

func TestAuthService_OAuth(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	_, _, err := f.svc.StartOAuth(ctx, "myspace")
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedProvider)

	f.api.On("OAuthURL", "google", "http://bff.test/api/auth/oauth/callback").Return("http://upstream.test/api/auth/google", nil)
	token, redirect, err := f.svc.StartOAuth(ctx, "Google")
	require.NoError(t, err)
	assert.Equal(t, "http://upstream.test/api/auth/google", redirect)

	sess := f.sessionFromToken(t, token)
	_, err = f.svc.Authenticate(ctx, sess.ID)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	_, err = f.svc.VerifyOTP(ctx, sess.ID, "1")
	assert.ErrorIs(t, err, apperrors.ErrNoPendingVerification)

	f.api.On("Me", mock.Anything, requireUpstreamCookie("oauth-sid")).
		Return(&model.User{UserID: "u9", Role: model.RolePropertyManager}, nil)

	resp, err := f.svc.CompleteOAuth(ctx, sess.ID, OAuthCallback{
		Success: true,
		UserID:  "u9",
		Cookies: []*http.Cookie{{Name: "sid", Value: "oauth-sid"}, {Name: auth.CookieName, Value: token}},
	})
	require.NoError(t, err)
	assert.Equal(t, bootstrap.PathPropertyManager, resp.Next)

	stored, err := f.svc.Authenticate(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, []auth.Cookie{{Name: "sid", Value: "oauth-sid", Path: "/"}}, stored.Cookies)
}

func TestAuthService_OAuthFailure(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()
	f.api.On("OAuthURL", mock.Anything, mock.Anything).Return("http://upstream.test/api/auth/google", nil)
	token, _, err := f.svc.StartOAuth(ctx, "google")
	require.NoError(t, err)
	sess := f.sessionFromToken(t, token)

	_, err = f.svc.CompleteOAuth(ctx, sess.ID, OAuthCallback{Success: false, Error: "access_denied"})
	assert.ErrorIs(t, err, apperrors.ErrOAuthFailed)

	_, err = f.sessions.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
}

func TestOAuthCallbackURL(t *testing.T) {
	assert.Equal(t, "http://localhost:8080/api/auth/oauth/callback", OAuthCallbackURL("http://localhost:8080/"))
}

// downStore fails every write like an unreachable redis.
type downStore struct{ *cache.Memory }

func (downStore) Set(context.Context, string, []byte, time.Duration) error {
	return fmt.Errorf("redis set: %w: connection refused", apperrors.ErrStoreUnavailable)
}

func TestAuthService_Login_SessionNotStored(t *testing.T) {
	api := &MockUpstream{}
	sessions := auth.NewSessionStore(downStore{cache.NewMemory()}, time.Hour)
	svc := NewAuthService(api, sessions, auth.NewJWTService("test-secret", time.Hour), newTestResolver(api), nil, AuthOptions{}, nil)

	resp, err := svc.Login(context.Background(), "a@b.co", "secret123")
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
	assert.Equal(t, http.StatusServiceUnavailable, apperrors.MapErrorToHTTP(err).StatusCode)
	api.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
}
