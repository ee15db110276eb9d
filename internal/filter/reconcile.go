package filter

import (
	"net/url"
	"strconv"
	"strings"

	"leasehub/internal/model"
)

// Query parameter names understood by the public listing endpoint.
const (
	ParamSearch       = "search"
	ParamPropertyType = "propertyType"
	ParamRegion       = "region"
	ParamCountry      = "country"
	ParamState        = "state"
	ParamCity         = "city"
	ParamMinPrice     = "minPrice"
	ParamMaxPrice     = "maxPrice"
	ParamBedrooms     = "bedrooms"
	ParamBathrooms    = "bathrooms"
	ParamPetsAllowed  = "petsAllowed"
	ParamAvailability = "availability"
	ParamAmenities    = "amenities"
)

// unset reports whether a select value means "no constraint".
func unset(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || strings.EqualFold(v, "all") || strings.EqualFold(v, "any")
}

// priceExplicit reports whether the filter's price range overrides preferences.
func (s State) priceExplicit() bool {
	return s.PriceModified || s.MinPrice != DefaultMinPrice || s.MaxPrice != DefaultMaxPrice
}

// Reconcile builds the listing query from the filter state and, when
// usePreferences is set and prefs is non-nil, the tenant's stored preferences.
// Empty values are omitted. The result depends only on its arguments.
func Reconcile(s State, prefs *model.TenantPreferences, usePreferences bool) url.Values {
	q := url.Values{}
	set := func(key, value string) {
		if value = strings.TrimSpace(value); value != "" {
			q.Set(key, value)
		}
	}
	if !usePreferences {
		prefs = nil
	}

	set(ParamSearch, s.Search)
	if !unset(s.PropertyType) {
		set(ParamPropertyType, s.PropertyType)
	}
	if !unset(s.Region) {
		set(ParamRegion, s.Region)
	}

	loc := s.Location
	if prefs != nil && !s.LocationModified {
		loc = prefs.Location
	}
	set(ParamCountry, loc.Country)
	set(ParamState, loc.State)
	set(ParamCity, loc.City)

	switch {
	case s.priceExplicit():
		set(ParamMinPrice, strconv.Itoa(s.MinPrice))
		set(ParamMaxPrice, strconv.Itoa(s.MaxPrice))
	case prefs != nil:
		if prefs.Criteria.MinPrice.Valid {
			set(ParamMinPrice, prefs.Criteria.MinPrice.Decimal.String())
		}
		if prefs.Criteria.MaxPrice.Valid {
			set(ParamMaxPrice, prefs.Criteria.MaxPrice.Decimal.String())
		}
	}

	switch {
	case !unset(s.Bedrooms):
		set(ParamBedrooms, s.Bedrooms)
	case prefs != nil && !unset(string(prefs.Criteria.Beds)):
		set(ParamBedrooms, string(prefs.Criteria.Beds))
	}

	if prefs != nil {
		if !unset(string(prefs.Criteria.Baths)) {
			set(ParamBathrooms, string(prefs.Criteria.Baths))
		}
		if prefs.Criteria.PetsAllowed != nil {
			set(ParamPetsAllowed, strconv.FormatBool(*prefs.Criteria.PetsAllowed))
		}
	} else if s.PetsAllowed {
		set(ParamPetsAllowed, "true")
	}

	if !unset(s.Availability) {
		set(ParamAvailability, s.Availability)
	}
	if len(s.SelectedAmenities) > 0 {
		set(ParamAmenities, strings.Join(s.SelectedAmenities, ","))
	}
	return q
}
