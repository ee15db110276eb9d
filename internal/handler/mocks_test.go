package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"leasehub/internal/auth"
	"leasehub/internal/filter"
	"leasehub/internal/model"
	"leasehub/internal/service"
	"leasehub/internal/wizard"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) response(args mock.Arguments) (*service.AuthResponse, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AuthResponse), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*service.AuthResponse, error) {
	return m.response(m.Called(ctx, email, password))
}

func (m *MockAuthService) Register(ctx context.Context, in service.RegisterInput) (*service.AuthResponse, error) {
	return m.response(m.Called(ctx, in))
}

func (m *MockAuthService) VerifyOTP(ctx context.Context, sessionID, code string) (*service.AuthResponse, error) {
	return m.response(m.Called(ctx, sessionID, code))
}

func (m *MockAuthService) ResendOTP(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

func (m *MockAuthService) Logout(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

func (m *MockAuthService) Authenticate(ctx context.Context, sessionID string) (*auth.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Session), args.Error(1)
}

func (m *MockAuthService) CurrentUser(ctx context.Context, sessionID string) (*model.User, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) ForgotPassword(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func (m *MockAuthService) ResetPassword(ctx context.Context, token, password string) error {
	return m.Called(ctx, token, password).Error(0)
}

func (m *MockAuthService) StartOAuth(ctx context.Context, provider string) (string, string, error) {
	args := m.Called(ctx, provider)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockAuthService) CompleteOAuth(ctx context.Context, sessionID string, cb service.OAuthCallback) (*service.AuthResponse, error) {
	return m.response(m.Called(ctx, sessionID, cb))
}

// MockFilterService is a mock implementation of service.FilterService.
type MockFilterService struct {
	mock.Mock
}

func (m *MockFilterService) Get(ctx context.Context, sessionID string) (filter.State, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(filter.State), args.Error(1)
}

func (m *MockFilterService) Update(ctx context.Context, sessionID string, p filter.Patch) (filter.State, error) {
	args := m.Called(ctx, sessionID, p)
	return args.Get(0).(filter.State), args.Error(1)
}

func (m *MockFilterService) Reset(ctx context.Context, sessionID string) (filter.State, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(filter.State), args.Error(1)
}

func (m *MockFilterService) Clear(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

// MockPropertyService is a mock implementation of service.PropertyService.
type MockPropertyService struct {
	mock.Mock
}

func (m *MockPropertyService) Search(ctx context.Context, sess *auth.Session, usePreferences bool) (*service.SearchResult, error) {
	args := m.Called(ctx, sess, usePreferences)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SearchResult), args.Error(1)
}

func (m *MockPropertyService) Detail(ctx context.Context, sess *auth.Session, id string) (*model.PropertyDetail, error) {
	args := m.Called(ctx, sess, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PropertyDetail), args.Error(1)
}

func (m *MockPropertyService) Clear(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

// MockTemplateService is a mock implementation of service.TemplateService.
type MockTemplateService struct {
	mock.Mock
}

func (m *MockTemplateService) template(args mock.Arguments) (*model.Template, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Template), args.Error(1)
}

func (m *MockTemplateService) List(ctx context.Context, ownerID string) ([]model.Template, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Template), args.Error(1)
}

func (m *MockTemplateService) Get(ctx context.Context, ownerID string, id uuid.UUID) (*model.Template, error) {
	return m.template(m.Called(ctx, ownerID, id))
}

func (m *MockTemplateService) Create(ctx context.Context, ownerID string, in service.TemplateInput) (*model.Template, error) {
	return m.template(m.Called(ctx, ownerID, in))
}

func (m *MockTemplateService) Update(ctx context.Context, ownerID string, id uuid.UUID, in service.TemplateInput) (*model.Template, error) {
	return m.template(m.Called(ctx, ownerID, id, in))
}

func (m *MockTemplateService) Delete(ctx context.Context, ownerID string, id uuid.UUID) error {
	return m.Called(ctx, ownerID, id).Error(0)
}

func (m *MockTemplateService) SeedStarter(ctx context.Context, ownerID string) (int, error) {
	args := m.Called(ctx, ownerID)
	return args.Int(0), args.Error(1)
}

// MockWizardService is a mock implementation of service.WizardService.
type MockWizardService struct {
	mock.Mock
}

func (m *MockWizardService) view(args mock.Arguments) (*service.WizardView, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.WizardView), args.Error(1)
}

func (m *MockWizardService) result(args mock.Arguments) (*service.WizardResult, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.WizardResult), args.Error(1)
}

func (m *MockWizardService) Start(ctx context.Context, sess *auth.Session, kind wizard.Kind) (*service.WizardView, error) {
	return m.view(m.Called(ctx, sess, kind))
}

func (m *MockWizardService) Get(ctx context.Context, sess *auth.Session, kind wizard.Kind) (*service.WizardView, error) {
	return m.view(m.Called(ctx, sess, kind))
}

func (m *MockWizardService) Next(ctx context.Context, sess *auth.Session, kind wizard.Kind, input wizard.Data) (*service.WizardResult, error) {
	return m.result(m.Called(ctx, sess, kind, input))
}

func (m *MockWizardService) Back(ctx context.Context, sess *auth.Session, kind wizard.Kind) (*service.WizardResult, error) {
	return m.result(m.Called(ctx, sess, kind))
}

func (m *MockWizardService) Clear(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}
