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

// Preferences fetches the tenant's stored preferences. None stored yields a 404 StatusError.
func (c *Client) Preferences(ctx context.Context, jar http.CookieJar) (*model.TenantPreferences, error) {
	var raw json.RawMessage
	if err := c.do(ctx, jar, endpoint.TenantPreferences, nil, nil, &raw); err != nil {
		return nil, err
	}
	var prefs model.TenantPreferences
	if err := unwrapEnvelope(raw, &prefs, "preferences", "data"); err != nil {
		return nil, fmt.Errorf("decode preferences: %w", err)
	}
	return &prefs, nil
}

// SavePreferences stores the tenant's preferences.
func (c *Client) SavePreferences(ctx context.Context, jar http.CookieJar, prefs model.TenantPreferences) error {
	return c.do(ctx, jar, endpoint.TenantSavePreferences, nil, prefs, nil)
}

// CreateRequest submits a service request and returns its upstream id.
func (c *Client) CreateRequest(ctx context.Context, jar http.CookieJar, req map[string]any) (string, error) {
	var raw json.RawMessage
	if err := c.do(ctx, jar, endpoint.TenantCreateRequest, nil, req, &raw); err != nil {
		return "", err
	}
	var created struct {
		ID string `json:"id"`
	}
	if len(raw) > 0 {
		if err := unwrapEnvelope(raw, &created, "request", "data"); err != nil {
			return "", fmt.Errorf("decode created request: %w", err)
		}
	}
	return created.ID, nil
}

// PublicListings searches public listings with the reconciled filter query.
func (c *Client) PublicListings(ctx context.Context, jar http.CookieJar, q url.Values) ([]model.PropertyPayload, error) {
	var raw json.RawMessage
	if err := c.do(ctx, jar, endpoint.PropertyPublicListings, q, nil, &raw); err != nil {
		return nil, err
	}
	var out []model.PropertyPayload
	if len(raw) == 0 {
		return out, nil
	}
	if err := unwrapEnvelope(raw, &out, "properties", "listings", "data"); err != nil {
		return nil, fmt.Errorf("decode listings: %w", err)
	}
	return out, nil
}

// PublicProperty fetches one public property.
func (c *Client) PublicProperty(ctx context.Context, jar http.CookieJar, id string) (*model.PropertyPayload, error) {
	var raw json.RawMessage
	if err := c.do(ctx, jar, endpoint.PropertyPublicDetail, nil, nil, &raw, "id", id); err != nil {
		return nil, err
	}
	var p model.PropertyPayload
	if err := unwrapEnvelope(raw, &p, "property", "data"); err != nil {
		return nil, fmt.Errorf("decode property: %w", err)
	}
	return &p, nil
}
