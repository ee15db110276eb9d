package service

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"leasehub/internal/auth"
	"leasehub/internal/bootstrap"
	"leasehub/internal/cache"
	"leasehub/internal/model"
	"leasehub/internal/repository"
	"leasehub/internal/retry"
	"leasehub/internal/upstream"
)

var testBaseURL, _ = url.Parse("http://upstream.test/api")

// MockUpstream is a mock implementation of the upstream API surfaces.
type MockUpstream struct {
	mock.Mock
}

func (m *MockUpstream) BaseURL() *url.URL {
	u := *testBaseURL
	return &u
}

func (m *MockUpstream) Login(ctx context.Context, jar http.CookieJar, creds upstream.Credentials) (*upstream.AuthResult, error) {
	args := m.Called(ctx, jar, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*upstream.AuthResult), args.Error(1)
}

func (m *MockUpstream) Register(ctx context.Context, jar http.CookieJar, reg upstream.Registration) (*upstream.AuthResult, error) {
	args := m.Called(ctx, jar, reg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*upstream.AuthResult), args.Error(1)
}

func (m *MockUpstream) VerifyOTP(ctx context.Context, jar http.CookieJar, v upstream.OTPVerification) (*upstream.AuthResult, error) {
	args := m.Called(ctx, jar, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*upstream.AuthResult), args.Error(1)
}

func (m *MockUpstream) ResendOTP(ctx context.Context, jar http.CookieJar, email string, typ upstream.OTPType) error {
	args := m.Called(ctx, jar, email, typ)
	return args.Error(0)
}

func (m *MockUpstream) Logout(ctx context.Context, jar http.CookieJar) error {
	args := m.Called(ctx, jar)
	return args.Error(0)
}

func (m *MockUpstream) Me(ctx context.Context, jar http.CookieJar) (*model.User, error) {
	args := m.Called(ctx, jar)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUpstream) ForgotPassword(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockUpstream) ResetPassword(ctx context.Context, token, password string) error {
	args := m.Called(ctx, token, password)
	return args.Error(0)
}

func (m *MockUpstream) OAuthURL(provider, redirectURI string) (string, error) {
	args := m.Called(provider, redirectURI)
	return args.String(0), args.Error(1)
}

func (m *MockUpstream) Preferences(ctx context.Context, jar http.CookieJar) (*model.TenantPreferences, error) {
	args := m.Called(ctx, jar)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TenantPreferences), args.Error(1)
}

func (m *MockUpstream) SavePreferences(ctx context.Context, jar http.CookieJar, prefs model.TenantPreferences) error {
	args := m.Called(ctx, jar, prefs)
	return args.Error(0)
}

func (m *MockUpstream) CreateRequest(ctx context.Context, jar http.CookieJar, req map[string]any) (string, error) {
	args := m.Called(ctx, jar, req)
	return args.String(0), args.Error(1)
}

func (m *MockUpstream) PublicListings(ctx context.Context, jar http.CookieJar, q url.Values) ([]model.PropertyPayload, error) {
	args := m.Called(ctx, jar, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PropertyPayload), args.Error(1)
}

func (m *MockUpstream) PublicProperty(ctx context.Context, jar http.CookieJar, id string) (*model.PropertyPayload, error) {
	args := m.Called(ctx, jar, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PropertyPayload), args.Error(1)
}

// MockTemplateRepository is a mock implementation of TemplateRepository.
type MockTemplateRepository struct {
	mock.Mock
}

func (m *MockTemplateRepository) Create(ctx context.Context, tpl *model.Template) error {
	args := m.Called(ctx, tpl)
	return args.Error(0)
}

func (m *MockTemplateRepository) Update(ctx context.Context, tpl *model.Template) error {
	args := m.Called(ctx, tpl)
	return args.Error(0)
}

func (m *MockTemplateRepository) FindByID(ctx context.Context, ownerID string, id uuid.UUID) (*model.Template, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Template), args.Error(1)
}

func (m *MockTemplateRepository) FindByOwner(ctx context.Context, ownerID string) ([]model.Template, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Template), args.Error(1)
}

func (m *MockTemplateRepository) Delete(ctx context.Context, ownerID string, id uuid.UUID) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

func (m *MockTemplateRepository) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

// WithTransaction runs fn against the mock itself.
func (m *MockTemplateRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo repository.TemplateRepository) error) error {
	return fn(ctx, m)
}

func noSleep() retry.Policy {
	return retry.Policy{
		Attempts: 3,
		Delay:    time.Millisecond,
		Sleeper:  retry.SleeperFunc(func(context.Context, time.Duration) error { return nil }),
	}
}

func newTestResolver(api *MockUpstream) *bootstrap.Resolver {
	return bootstrap.NewResolver(api, noSleep(), nil)
}

func newSessionStore() (*auth.RedisSessionStore, *cache.Memory) {
	mem := cache.NewMemory()
	return auth.NewSessionStore(mem, time.Hour), mem
}

// authedSession stores a confirmed session for user.
func authedSession(store auth.SessionStore, user *model.User) *auth.Session {
	sess, err := store.Create(context.Background())
	if err != nil {
		panic(err)
	}
	sess.User = user
	if err := store.Save(context.Background(), sess); err != nil {
		panic(err)
	}
	return sess
}
