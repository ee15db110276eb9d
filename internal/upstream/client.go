// Package upstream is the HTTP client for the property-management REST API.
// Every call runs against a caller-supplied cookie jar that carries the
// upstream session of one browser.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/publicsuffix"

	"leasehub/internal/endpoint"
	apperrors "leasehub/internal/errors"
)

const maxBodyBytes = 10 << 20

// StatusError is a non-2xx upstream response.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("upstream returned %d", e.StatusCode)
	}
	return fmt.Sprintf("upstream returned %d: %s", e.StatusCode, e.Message)
}

// Is lets errors.Is treat upstream 5xx responses as ErrUpstreamUnavailable.
func (e *StatusError) Is(target error) bool {
	return target == apperrors.ErrUpstreamUnavailable && e.StatusCode >= http.StatusInternalServerError
}

// TransportError is a failure to reach the upstream at all.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return "upstream unreachable: " + e.Err.Error() }
func (e *TransportError) Unwrap() error { return e.Err }

// Is lets errors.Is match ErrUpstreamUnavailable.
func (e *TransportError) Is(target error) bool { return target == apperrors.ErrUpstreamUnavailable }

// HasStatus reports whether err is a StatusError with the given code.
func HasStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == code
}

// IsNotFound reports an upstream 404.
func IsNotFound(err error) bool { return HasStatus(err, http.StatusNotFound) }

// IsUnauthorized reports an upstream 401 or 403.
func IsUnauthorized(err error) bool {
	return HasStatus(err, http.StatusUnauthorized) || HasStatus(err, http.StatusForbidden)
}

// NewJar returns an empty cookie jar for one upstream session.
func NewJar() (http.CookieJar, error) {
	return cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
}

// Client calls the upstream API.
type Client struct {
	base      *url.URL
	transport http.RoundTripper
	timeout   time.Duration
}

// New creates a client rooted at baseURL.
func New(baseURL string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse upstream url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("upstream url %q must be absolute", baseURL)
	}
	return &Client{base: u, transport: http.DefaultTransport, timeout: timeout}, nil
}

// BaseURL is the URL cookies are scoped to.
func (c *Client) BaseURL() *url.URL {
	u := *c.base
	return &u
}

func (c *Client) httpClient(jar http.CookieJar) *http.Client {
	return &http.Client{Transport: c.transport, Jar: jar, Timeout: c.timeout}
}

// do performs the named endpoint. body, when non-nil, is sent as JSON; out,
// when non-nil, receives the decoded 2xx response body.
func (c *Client) do(ctx context.Context, jar http.CookieJar, name endpoint.Name, query url.Values, body, out any, params ...string) error {
	ep, err := endpoint.Lookup(name)
	if err != nil {
		return err
	}
	target, err := endpoint.URL(c.base.String(), name, query, params...)
	if err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s body: %w", name, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, ep.Method, target, reader)
	if err != nil {
		return fmt.Errorf("build %s request: %w", name, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient(jar).Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return &TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{StatusCode: resp.StatusCode, Message: errorMessage(data)}
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s response: %w", name, err)
	}
	return nil
}

func errorMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(data, &body) == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return ""
}

// unwrapEnvelope decodes data into out, looking first inside the first
// present key of an enclosing object (e.g. {"data": ...}).
func unwrapEnvelope(data json.RawMessage, out any, keys ...string) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &obj); err == nil {
			for _, k := range keys {
				if inner, ok := obj[k]; ok && !bytes.Equal(bytes.TrimSpace(inner), []byte("null")) {
					return json.Unmarshal(inner, out)
				}
			}
		}
	}
	return json.Unmarshal(trimmed, out)
}
