package model

import (
	"github.com/shopspring/decimal"
)

// Address is the upstream postal address of a property.
type Address struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
	ZipCode string `json:"zipCode,omitempty"`
}

// ListingPayload is one active listing of a property.
type ListingPayload struct {
	ID           string              `json:"id"`
	MonthlyRent  decimal.NullDecimal `json:"monthlyRent"`
	ListingPrice decimal.NullDecimal `json:"listingPrice"`
	Currency     string              `json:"currency,omitempty"`
	Status       string              `json:"status,omitempty"`
	ListingType  string              `json:"listingType,omitempty"`
}

// PropertyPayload is a public property as returned by the listing endpoints.
// Depending on the endpoint it carries several listings, a single listing, or none.
type PropertyPayload struct {
	ID           string              `json:"id"`
	PropertyID   string              `json:"propertyId"`
	Title        string              `json:"title"`
	Name         string              `json:"name"`
	Address      Address             `json:"address"`
	PropertyType string              `json:"propertyType"`
	Type         string              `json:"type"`
	MarketRent   decimal.NullDecimal `json:"marketRent"`
	Currency     string              `json:"currency,omitempty"`
	CoverImage   string              `json:"coverImage,omitempty"`
	Images       []string            `json:"images,omitempty"`
	Bedrooms     FlexString          `json:"bedrooms,omitempty"`
	Bathrooms    FlexString          `json:"bathrooms,omitempty"`
	Amenities    []string            `json:"amenities,omitempty"`
	Description  string              `json:"description,omitempty"`
	Listings     []ListingPayload    `json:"listings,omitempty"`
	Listing      *ListingPayload     `json:"listing,omitempty"`
}

// PropertyCard is the uniform view model rendered in search results.
type PropertyCard struct {
	ID       string          `json:"id"`
	Key      string          `json:"key"`
	Title    string          `json:"title"`
	Address  string          `json:"address"`
	Type     string          `json:"type"`
	Price    decimal.Decimal `json:"price"`
	Rent     string          `json:"rent"`
	Currency string          `json:"currency"`
	Tag      string          `json:"tag"`
	Image    string          `json:"image"`
	Images   []string        `json:"images"`
}

// PropertyDetail is the public detail view of one property.
type PropertyDetail struct {
	PropertyCard
	Bedrooms    string           `json:"bedrooms,omitempty"`
	Bathrooms   string           `json:"bathrooms,omitempty"`
	Amenities   []string         `json:"amenities,omitempty"`
	Description string           `json:"description,omitempty"`
	Location    Location         `json:"location"`
	Listings    []ListingPayload `json:"listings,omitempty"`
}
