package filter

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leasehub/internal/model"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
func boolPtr(v bool) *bool    { return &v }

func prefsFromJSON(t *testing.T, body string) *model.TenantPreferences {
	t.Helper()
	var p model.TenantPreferences
	require.NoError(t, json.Unmarshal([]byte(body), &p))
	return &p
}

func TestState_PriceClampHoldsForEveryMutation(t *testing.T) {
	tests := []struct {
		name  string
		patch Patch
	}{
		{"min above max", Patch{MinPrice: intPtr(60000)}},
		{"max below min", Patch{MinPrice: intPtr(2000), MaxPrice: intPtr(1000)}},
		{"negative min", Patch{MinPrice: intPtr(-5)}},
		{"negative range", Patch{MinPrice: intPtr(-5), MaxPrice: intPtr(-10)}},
		{"max only below current min", Patch{MaxPrice: intPtr(-1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			s.SetMinPrice(1500)
			s.Apply(tt.patch)

			assert.GreaterOrEqual(t, s.MinPrice, 0)
			assert.LessOrEqual(t, s.MinPrice, s.MaxPrice)
			assert.True(t, s.PriceModified)
		})
	}
}

func TestState_SetMinPriceClampsToMax(t *testing.T) {
	s := Default()
	s.SetMaxPrice(3000)
	s.SetMinPrice(4000)

	assert.Equal(t, 3000, s.MinPrice)
	assert.Equal(t, 3000, s.MaxPrice)
}

func TestState_ToggleAmenity(t *testing.T) {
	s := Default()
	s.ToggleAmenity("Pool")
	s.ToggleAmenity("Gym")
	s.ToggleAmenity("pool")

	assert.Equal(t, []string{"Gym"}, s.SelectedAmenities)
}

func TestState_SetAmenitiesDropsBlanksAndDuplicates(t *testing.T) {
	s := Default()
	s.SetAmenities([]string{"Pool", " ", "pool", "Parking"})

	assert.Equal(t, []string{"Pool", "Parking"}, s.SelectedAmenities)
}

func TestState_Reset(t *testing.T) {
	s := Default()
	s.SetLocation(model.Location{City: "Dallas"})
	s.SetPriceRange(100, 200)
	s.Reset()

	assert.Equal(t, Default(), s)
}

func TestReconcile_PreferenceLocationWhenUntouched(t *testing.T) {
	prefs := prefsFromJSON(t, `{"location":{"country":"US","state":"TX","city":"Austin"}}`)

	q := Reconcile(Default(), prefs, true)

	assert.Equal(t, "Austin", q.Get(ParamCity))
	assert.Equal(t, "TX", q.Get(ParamState))
	assert.Equal(t, "US", q.Get(ParamCountry))
}

func TestReconcile_ManualLocationIsSticky(t *testing.T) {
	prefs := prefsFromJSON(t, `{"location":{"country":"US","state":"TX","city":"Austin"}}`)

	s := Default()
	s.Apply(Patch{Location: &model.Location{Country: "US", State: "TX", City: "Dallas"}})

	on := Reconcile(s, prefs, true)
	off := Reconcile(s, prefs, false)
	onAgain := Reconcile(s, prefs, true)

	assert.Equal(t, "Dallas", on.Get(ParamCity))
	assert.Equal(t, "Dallas", off.Get(ParamCity))
	assert.Equal(t, "Dallas", onAgain.Get(ParamCity))
}

func TestReconcile_ResetLocationRestoresPreferences(t *testing.T) {
	prefs := prefsFromJSON(t, `{"location":{"country":"US","state":"TX","city":"Austin"}}`)

	s := Default()
	s.SetLocation(model.Location{City: "Dallas"})
	s.Apply(Patch{ResetLocation: true})

	assert.Equal(t, "Austin", Reconcile(s, prefs, true).Get(ParamCity))
}

func TestReconcile_Price(t *testing.T) {
	prefs := prefsFromJSON(t, `{"criteria":{"minPrice":900,"maxPrice":"1800"}}`)

	t.Run("untouched uses preferences", func(t *testing.T) {
		q := Reconcile(Default(), prefs, true)
		assert.Equal(t, "900", q.Get(ParamMinPrice))
		assert.Equal(t, "1800", q.Get(ParamMaxPrice))
	})

	t.Run("untouched without preferences omits price", func(t *testing.T) {
		q := Reconcile(Default(), prefs, false)
		assert.False(t, q.Has(ParamMinPrice))
		assert.False(t, q.Has(ParamMaxPrice))
	})

	t.Run("explicit range wins", func(t *testing.T) {
		s := Default()
		s.SetPriceRange(1000, 2500)
		q := Reconcile(s, prefs, true)
		assert.Equal(t, "1000", q.Get(ParamMinPrice))
		assert.Equal(t, "2500", q.Get(ParamMaxPrice))
	})

	t.Run("modified back to defaults still wins", func(t *testing.T) {
		s := Default()
		s.SetPriceRange(DefaultMinPrice, DefaultMaxPrice)
		q := Reconcile(s, prefs, true)
		assert.Equal(t, "0", q.Get(ParamMinPrice))
		assert.Equal(t, "50000", q.Get(ParamMaxPrice))
	})
}

func TestReconcile_Bedrooms(t *testing.T) {
	tests := []struct {
		name     string
		filter   string
		prefBeds string
		want     string
	}{
		{"filter wins", "3", "2", "3"},
		{"filter any falls back to preference", "Any", "2", "2"},
		{"filter all falls back to preference", "All", "2", "2"},
		{"preference any is omitted", "", "Any", ""},
		{"nothing set", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			s.Bedrooms = tt.filter
			prefs := &model.TenantPreferences{Criteria: model.Criteria{Beds: model.FlexString(tt.prefBeds)}}

			assert.Equal(t, tt.want, Reconcile(s, prefs, true).Get(ParamBedrooms))
		})
	}
}

func TestReconcile_BathsAndPetsFromPreferencesOnly(t *testing.T) {
	prefs := prefsFromJSON(t, `{"criteria":{"baths":2,"petsAllowed":false}}`)

	s := Default()
	s.PetsAllowed = true

	on := Reconcile(s, prefs, true)
	assert.Equal(t, "2", on.Get(ParamBathrooms))
	assert.Equal(t, "false", on.Get(ParamPetsAllowed))

	off := Reconcile(s, prefs, false)
	assert.False(t, off.Has(ParamBathrooms))
	assert.Equal(t, "true", off.Get(ParamPetsAllowed))
}

func TestReconcile_PropertyTypeIsFilterOnly(t *testing.T) {
	prefs := prefsFromJSON(t, `{"rentalTypes":["house"]}`)

	s := Default()
	assert.False(t, Reconcile(s, prefs, true).Has(ParamPropertyType))

	s.PropertyType = "apartment"
	assert.Equal(t, "apartment", Reconcile(s, prefs, true).Get(ParamPropertyType))

	s.PropertyType = "All"
	assert.False(t, Reconcile(s, prefs, true).Has(ParamPropertyType))
}

func TestReconcile_OmitsEmptyFields(t *testing.T) {
	q := Reconcile(Default(), nil, true)
	assert.Equal(t, url.Values{}, q)
}

func TestReconcile_Idempotent(t *testing.T) {
	prefs := prefsFromJSON(t, `{"location":{"country":"US","state":"TX","city":"Austin"},"criteria":{"beds":"2","baths":"1","minPrice":500,"petsAllowed":true}}`)

	s := Default()
	s.Apply(Patch{
		Search:        strPtr("loft"),
		PropertyType:  strPtr("apartment"),
		Amenities:     &[]string{"Pool", "Gym"},
		Availability:  strPtr("immediate"),
		PetsAllowed:   boolPtr(true),
		ToggleAmenity: strPtr("Parking"),
	})

	for _, use := range []bool{true, false} {
		first := Reconcile(s, prefs, use)
		second := Reconcile(s, prefs, use)
		assert.Equal(t, first.Encode(), second.Encode())
	}
	assert.Equal(t, "Pool,Gym,Parking", Reconcile(s, prefs, true).Get(ParamAmenities))
}
