package model

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Location is a country/state/city triple.
type Location struct {
	Country string `json:"country,omitempty"`
	State   string `json:"state,omitempty"`
	City    string `json:"city,omitempty"`
}

// Complete reports whether all three parts are set.
func (l Location) Complete() bool {
	return strings.TrimSpace(l.Country) != "" &&
		strings.TrimSpace(l.State) != "" &&
		strings.TrimSpace(l.City) != ""
}

// IsZero reports whether no part is set.
func (l Location) IsZero() bool {
	return l.Country == "" && l.State == "" && l.City == ""
}

// FlexString decodes a JSON string or number into a string.
// Upstream sends beds and baths either way.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

// Criteria holds the tenant's default search criteria.
type Criteria struct {
	Beds        FlexString          `json:"beds,omitempty"`
	Baths       FlexString          `json:"baths,omitempty"`
	MinPrice    decimal.NullDecimal `json:"minPrice"`
	MaxPrice    decimal.NullDecimal `json:"maxPrice"`
	PetsAllowed *bool               `json:"petsAllowed,omitempty"`
}

// TenantPreferences are created once during onboarding and stored upstream.
type TenantPreferences struct {
	Location    Location `json:"location"`
	RentalTypes []string `json:"rentalTypes"`
	Criteria    Criteria `json:"criteria"`
}

// OnboardingComplete reports whether the preferences carry enough to skip onboarding:
// a complete location or at least one rental type.
func (p *TenantPreferences) OnboardingComplete() bool {
	if p == nil {
		return false
	}
	if p.Location.Complete() {
		return true
	}
	for _, t := range p.RentalTypes {
		if strings.TrimSpace(t) != "" {
			return true
		}
	}
	return false
}
