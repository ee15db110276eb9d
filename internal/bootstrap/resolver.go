// Package bootstrap decides where a browser goes after an authentication event.
package bootstrap

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	apperrors "leasehub/internal/errors"
	"leasehub/internal/model"
	"leasehub/internal/retry"
	"leasehub/internal/upstream"
)

// Front-end routes the resolver can pick.
const (
	PathVerifyOTP        = "/verify-otp"
	PathServiceProvider  = "/dashboard/service-provider"
	PathTenantDashboard  = "/dashboard/tenant"
	PathPropertyManager  = "/dashboard/property-manager"
	PathTenantOnboarding = "/onboarding/tenant"
	PathLogin            = "/login"
)

// Route is a front-end path plus optional query.
type Route struct {
	Path  string     `json:"path"`
	Query url.Values `json:"query,omitempty"`
}

// String renders the route as a relative URL.
func (r Route) String() string {
	if len(r.Query) == 0 {
		return r.Path
	}
	return r.Path + "?" + r.Query.Encode()
}

// Outcome is what the upstream said about a login, registration or OTP check.
type Outcome struct {
	RequiresEmailVerification  bool
	RequiresDeviceVerification bool
}

// Result is the resolved route. User is set once the session is confirmed.
type Result struct {
	Route Route       `json:"route"`
	User  *model.User `json:"user,omitempty"`
}

// Pending reports whether the result is an OTP step rather than a landing page.
func (r Result) Pending() bool {
	return r.User == nil
}

// Client is the slice of the upstream API the resolver needs.
type Client interface {
	Me(ctx context.Context, jar http.CookieJar) (*model.User, error)
	Preferences(ctx context.Context, jar http.CookieJar) (*model.TenantPreferences, error)
}

// Resolver runs the post-authentication sequence. It issues its upstream
// calls one after another, never concurrently.
type Resolver struct {
	client Client
	policy retry.Policy
	logger *zap.Logger
}

// NewResolver creates a resolver. policy bounds both the session check and the preference check.
func NewResolver(client Client, policy retry.Policy, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{client: client, policy: policy, logger: logger}
}

// Resolve picks the next route for an authentication outcome.
// If the session cannot be confirmed it returns ErrAuthenticationFailed and no route.
func (r *Resolver) Resolve(ctx context.Context, jar http.CookieJar, o Outcome) (Result, error) {
	switch {
	case o.RequiresEmailVerification:
		return Result{Route: otpRoute(upstream.OTPEmail)}, nil
	case o.RequiresDeviceVerification:
		return Result{Route: otpRoute(upstream.OTPDevice)}, nil
	}

	user, err := retry.Value(ctx, r.policy, func(ctx context.Context) (*model.User, error) {
		return r.client.Me(ctx, jar)
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return Result{}, err
		}
		r.logger.Warn("session confirmation failed", zap.Error(err))
		return Result{}, apperrors.ErrAuthenticationFailed
	}

	return Result{Route: r.Landing(ctx, jar, user), User: user}, nil
}

// Landing is the role-specific landing page for a confirmed user.
func (r *Resolver) Landing(ctx context.Context, jar http.CookieJar, user *model.User) Route {
	switch user.Role {
	case model.RoleServicePro:
		return Route{Path: PathServiceProvider}
	case model.RoleTenant:
		if r.tenantOnboarded(ctx, jar) {
			return Route{Path: PathTenantDashboard}
		}
		return Route{Path: PathTenantOnboarding}
	default:
		return Route{Path: PathPropertyManager}
	}
}

// tenantOnboarded reports false on 404, on any fetch failure and on
// preferences that lack both a complete location and a rental type.
func (r *Resolver) tenantOnboarded(ctx context.Context, jar http.CookieJar) bool {
	prefs, err := retry.Value(ctx, r.policy, func(ctx context.Context) (*model.TenantPreferences, error) {
		p, err := r.client.Preferences(ctx, jar)
		if upstream.IsNotFound(err) {
			return nil, retry.Permanent(err)
		}
		return p, err
	})
	if err != nil {
		if !upstream.IsNotFound(err) {
			r.logger.Warn("preference check failed, sending tenant to onboarding", zap.Error(err))
		}
		return false
	}
	return prefs.OnboardingComplete()
}

func otpRoute(t upstream.OTPType) Route {
	return Route{Path: PathVerifyOTP, Query: url.Values{"type": {string(t)}}}
}
