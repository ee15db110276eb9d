// Package filter holds the property-search filter state and its reconciliation
// with stored tenant preferences.
package filter

import (
	"strings"

	"leasehub/internal/model"
)

const (
	// DefaultMinPrice and DefaultMaxPrice are the untouched slider positions.
	DefaultMinPrice = 0
	DefaultMaxPrice = 50000
)

// State is the filter panel of one browser session.
//
// LocationModified and PriceModified record that the user set those fields by
// hand; once set, preference defaults never overwrite them.
type State struct {
	Search            string         `json:"search"`
	PropertyType      string         `json:"propertyType"`
	Region            string         `json:"region"`
	Location          model.Location `json:"locationFilter"`
	MinPrice          int            `json:"minPrice"`
	MaxPrice          int            `json:"maxPrice"`
	PriceModified     bool           `json:"priceModified"`
	Bedrooms          string         `json:"bedrooms"`
	Availability      string         `json:"availability"`
	SelectedAmenities []string       `json:"selectedAmenities"`
	PetsAllowed       bool           `json:"petsAllowed"`
	LocationModified  bool           `json:"locationModified"`
}

// Default returns the state of a freshly opened filter panel.
func Default() State {
	return State{
		MinPrice:          DefaultMinPrice,
		MaxPrice:          DefaultMaxPrice,
		SelectedAmenities: []string{},
	}
}

// Reset restores the default state, clearing the modified flags.
func (s *State) Reset() {
	*s = Default()
}

// SetLocation stores a hand-picked location and makes it sticky.
func (s *State) SetLocation(loc model.Location) {
	s.Location = model.Location{
		Country: strings.TrimSpace(loc.Country),
		State:   strings.TrimSpace(loc.State),
		City:    strings.TrimSpace(loc.City),
	}
	s.LocationModified = true
}

// ResetLocation clears the location and lets preferences supply it again.
func (s *State) ResetLocation() {
	s.Location = model.Location{}
	s.LocationModified = false
}

// SetMinPrice sets the lower bound, clamped to [0, MaxPrice].
func (s *State) SetMinPrice(v int) {
	if v < 0 {
		v = 0
	}
	if v > s.MaxPrice {
		v = s.MaxPrice
	}
	s.MinPrice = v
	s.PriceModified = true
}

// SetMaxPrice sets the upper bound, clamped to at least MinPrice.
func (s *State) SetMaxPrice(v int) {
	if v < s.MinPrice {
		v = s.MinPrice
	}
	s.MaxPrice = v
	s.PriceModified = true
}

// SetPriceRange sets both bounds at once. Negative values become zero and an
// inverted range collapses onto min.
func (s *State) SetPriceRange(min, max int) {
	if min < 0 {
		min = 0
	}
	if max < min {
		max = min
	}
	s.MinPrice = min
	s.MaxPrice = max
	s.PriceModified = true
}

// ResetPrice restores the default range and lets preferences supply it again.
func (s *State) ResetPrice() {
	s.MinPrice = DefaultMinPrice
	s.MaxPrice = DefaultMaxPrice
	s.PriceModified = false
}

// ToggleAmenity adds the amenity when absent and removes it when present.
func (s *State) ToggleAmenity(amenity string) {
	amenity = strings.TrimSpace(amenity)
	if amenity == "" {
		return
	}
	for i, a := range s.SelectedAmenities {
		if strings.EqualFold(a, amenity) {
			s.SelectedAmenities = append(s.SelectedAmenities[:i:i], s.SelectedAmenities[i+1:]...)
			return
		}
	}
	s.SelectedAmenities = append(s.SelectedAmenities, amenity)
}

// SetAmenities replaces the selection, dropping blanks and duplicates.
func (s *State) SetAmenities(amenities []string) {
	out := make([]string, 0, len(amenities))
	seen := make(map[string]struct{}, len(amenities))
	for _, a := range amenities {
		a = strings.TrimSpace(a)
		key := strings.ToLower(a)
		if a == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, a)
	}
	s.SelectedAmenities = out
}

// Patch is a partial update from the filter panel. Nil fields are left alone.
type Patch struct {
	Search        *string         `json:"search,omitempty"`
	PropertyType  *string         `json:"propertyType,omitempty"`
	Region        *string         `json:"region,omitempty"`
	Location      *model.Location `json:"location,omitempty"`
	ResetLocation bool            `json:"resetLocation,omitempty"`
	MinPrice      *int            `json:"minPrice,omitempty"`
	MaxPrice      *int            `json:"maxPrice,omitempty"`
	ResetPrice    bool            `json:"resetPrice,omitempty"`
	Bedrooms      *string         `json:"bedrooms,omitempty"`
	Availability  *string         `json:"availability,omitempty"`
	Amenities     *[]string       `json:"amenities,omitempty"`
	ToggleAmenity *string         `json:"toggleAmenity,omitempty"`
	PetsAllowed   *bool           `json:"petsAllowed,omitempty"`
}

// Apply performs the patch through the typed setters so every invariant holds afterwards.
// Resets run before sets, so a patch can clear and set a field in one go.
func (s *State) Apply(p Patch) {
	if p.Search != nil {
		s.Search = strings.TrimSpace(*p.Search)
	}
	if p.PropertyType != nil {
		s.PropertyType = strings.TrimSpace(*p.PropertyType)
	}
	if p.Region != nil {
		s.Region = strings.TrimSpace(*p.Region)
	}

	if p.ResetLocation {
		s.ResetLocation()
	}
	if p.Location != nil {
		s.SetLocation(*p.Location)
	}

	if p.ResetPrice {
		s.ResetPrice()
	}
	switch {
	case p.MinPrice != nil && p.MaxPrice != nil:
		s.SetPriceRange(*p.MinPrice, *p.MaxPrice)
	case p.MinPrice != nil:
		s.SetMinPrice(*p.MinPrice)
	case p.MaxPrice != nil:
		s.SetMaxPrice(*p.MaxPrice)
	}

	if p.Bedrooms != nil {
		s.Bedrooms = strings.TrimSpace(*p.Bedrooms)
	}
	if p.Availability != nil {
		s.Availability = strings.TrimSpace(*p.Availability)
	}
	if p.Amenities != nil {
		s.SetAmenities(*p.Amenities)
	}
	if p.ToggleAmenity != nil {
		s.ToggleAmenity(*p.ToggleAmenity)
	}
	if p.PetsAllowed != nil {
		s.PetsAllowed = *p.PetsAllowed
	}
}
