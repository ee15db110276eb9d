// Package endpoint maps logical upstream operations to HTTP methods and path templates.
package endpoint

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Name identifies an upstream operation.
type Name string

const (
	AuthLogin          Name = "auth.login"
	AuthLogout         Name = "auth.logout"
	AuthMe             Name = "auth.me"
	AuthRegister       Name = "auth.register"
	AuthVerifyOTP      Name = "auth.verifyOtp"
	AuthResendOTP      Name = "auth.resendOtp"
	AuthForgotPassword Name = "auth.forgotPassword"
	AuthResetPassword  Name = "auth.resetPassword"
	AuthOAuth          Name = "auth.oauth"

	TenantPreferences     Name = "tenant.preferences"
	TenantSavePreferences Name = "tenant.savePreferences"
	TenantCreateRequest   Name = "tenant.createRequest"

	PropertyPublicListings Name = "property.publicListings"
	PropertyPublicDetail   Name = "property.publicDetail"
)

// Endpoint is a method plus a path template. Path parameters are written ":name".
type Endpoint struct {
	Method string
	Path   string
}

var registry = map[Name]Endpoint{
	AuthLogin:          {http.MethodPost, "/auth/login"},
	AuthLogout:         {http.MethodPost, "/auth/logout"},
	AuthMe:             {http.MethodGet, "/auth/me"},
	AuthRegister:       {http.MethodPost, "/auth/register"},
	AuthVerifyOTP:      {http.MethodPost, "/auth/verify-otp"},
	AuthResendOTP:      {http.MethodPost, "/auth/resend-otp"},
	AuthForgotPassword: {http.MethodPost, "/auth/forgot-password"},
	AuthResetPassword:  {http.MethodPost, "/auth/reset-password"},
	AuthOAuth:          {http.MethodGet, "/auth/:provider"},

	TenantPreferences:     {http.MethodGet, "/tenant/preferences"},
	TenantSavePreferences: {http.MethodPut, "/tenant/preferences"},
	TenantCreateRequest:   {http.MethodPost, "/tenant/requests"},

	PropertyPublicListings: {http.MethodGet, "/property/public-listings"},
	PropertyPublicDetail:   {http.MethodGet, "/property/public/:id"},
}

// Lookup returns the endpoint registered under name.
func Lookup(name Name) (Endpoint, error) {
	ep, ok := registry[name]
	if !ok {
		return Endpoint{}, fmt.Errorf("endpoint %q not registered", name)
	}
	return ep, nil
}

// Path expands the path template of name. params holds alternating key/value pairs.
// Values are path-escaped; a missing or unused parameter is an error.
func Path(name Name, params ...string) (string, error) {
	ep, err := Lookup(name)
	if err != nil {
		return "", err
	}
	if len(params)%2 != 0 {
		return "", fmt.Errorf("endpoint %q: odd number of path params", name)
	}

	values := make(map[string]string, len(params)/2)
	for i := 0; i < len(params); i += 2 {
		values[params[i]] = params[i+1]
	}

	segments := strings.Split(ep.Path, "/")
	used := 0
	for i, seg := range segments {
		if !strings.HasPrefix(seg, ":") {
			continue
		}
		key := seg[1:]
		v, ok := values[key]
		if !ok || v == "" {
			return "", fmt.Errorf("endpoint %q: missing path param %q", name, key)
		}
		segments[i] = url.PathEscape(v)
		used++
	}
	if used != len(values) {
		return "", fmt.Errorf("endpoint %q: unexpected path params", name)
	}
	return strings.Join(segments, "/"), nil
}

// URL joins base with the expanded path of name and appends query when non-empty.
func URL(base string, name Name, query url.Values, params ...string) (string, error) {
	path, err := Path(name, params...)
	if err != nil {
		return "", err
	}
	u := strings.TrimRight(base, "/") + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u, nil
}
