package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"leasehub/internal/endpoint"
	"leasehub/internal/model"
)

// OTPType is the purpose of a one-time code.
type OTPType string

const (
	OTPEmail  OTPType = "email"
	OTPDevice OTPType = "device"
)

// AuthResult is the upstream answer to login, registration and OTP verification.
type AuthResult struct {
	User                       *model.UserPayload `json:"user"`
	RequiresEmailVerification  bool               `json:"requiresEmailVerification"`
	RequiresDeviceVerification bool               `json:"requiresDeviceVerification"`
	Message                    string             `json:"message,omitempty"`
}

// Credentials is the login body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the sign-up body.
type Registration struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// OTPVerification is the body of verify-otp.
type OTPVerification struct {
	Email string  `json:"email"`
	Code  string  `json:"otp"`
	Type  OTPType `json:"type"`
}

// Login posts credentials. On success the jar holds the upstream session cookie.
func (c *Client) Login(ctx context.Context, jar http.CookieJar, creds Credentials) (*AuthResult, error) {
	var res AuthResult
	if err := c.do(ctx, jar, endpoint.AuthLogin, nil, creds, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Register creates an upstream account.
func (c *Client) Register(ctx context.Context, jar http.CookieJar, reg Registration) (*AuthResult, error) {
	var res AuthResult
	if err := c.do(ctx, jar, endpoint.AuthRegister, nil, reg, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// VerifyOTP submits a one-time code for the pending verification.
func (c *Client) VerifyOTP(ctx context.Context, jar http.CookieJar, v OTPVerification) (*AuthResult, error) {
	var res AuthResult
	if err := c.do(ctx, jar, endpoint.AuthVerifyOTP, nil, v, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ResendOTP asks the upstream to send a fresh code.
func (c *Client) ResendOTP(ctx context.Context, jar http.CookieJar, email string, typ OTPType) error {
	body := map[string]string{"email": email, "type": string(typ)}
	return c.do(ctx, jar, endpoint.AuthResendOTP, nil, body, nil)
}

// Logout ends the upstream session.
func (c *Client) Logout(ctx context.Context, jar http.CookieJar) error {
	return c.do(ctx, jar, endpoint.AuthLogout, nil, nil, nil)
}

// Me fetches the current user. A missing or expired upstream session yields a 401 StatusError.
func (c *Client) Me(ctx context.Context, jar http.CookieJar) (*model.User, error) {
	var raw json.RawMessage
	if err := c.do(ctx, jar, endpoint.AuthMe, nil, nil, &raw); err != nil {
		return nil, err
	}
	var p model.UserPayload
	if err := unwrapEnvelope(raw, &p, "user", "data"); err != nil {
		return nil, fmt.Errorf("decode current user: %w", err)
	}
	u := p.ToUser()
	if u.UserID == "" {
		return nil, fmt.Errorf("decode current user: missing id")
	}
	return u, nil
}

// ForgotPassword starts the password-reset email flow.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	return c.do(ctx, nil, endpoint.AuthForgotPassword, nil, map[string]string{"email": email}, nil)
}

// ResetPassword sets a new password using the emailed token.
func (c *Client) ResetPassword(ctx context.Context, token, password string) error {
	body := map[string]string{"token": token, "password": password}
	return c.do(ctx, nil, endpoint.AuthResetPassword, nil, body, nil)
}

// OAuthURL is the provider sign-in page the browser is sent to.
// The upstream redirects back to redirectURI with success, userId and error.
func (c *Client) OAuthURL(provider, redirectURI string) (string, error) {
	q := url.Values{}
	if redirectURI != "" {
		q.Set("redirect_uri", redirectURI)
	}
	return endpoint.URL(c.base.String(), endpoint.AuthOAuth, q, "provider", provider)
}
