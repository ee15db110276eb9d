// Package listing turns upstream property payloads into search-result cards.
package listing

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"leasehub/internal/model"
)

const (
	defaultCurrency = "USD"
	defaultTag      = "For Rent"
)

var currencySymbols = map[string]string{
	"USD": "$",
	"CAD": "$",
	"AUD": "$",
	"EUR": "€",
	"GBP": "£",
	"NGN": "₦",
	"INR": "₹",
}

// ResolveAmount returns the first amount present among listing.monthlyRent,
// listing.listingPrice and property.marketRent, or zero.
func ResolveAmount(p model.PropertyPayload, l *model.ListingPayload) decimal.Decimal {
	if l != nil {
		if l.MonthlyRent.Valid {
			return l.MonthlyRent.Decimal
		}
		if l.ListingPrice.Valid {
			return l.ListingPrice.Decimal
		}
	}
	if p.MarketRent.Valid {
		return p.MarketRent.Decimal
	}
	return decimal.Zero
}

// FormatRent renders an amount as a monthly rent label, e.g. "$1,250/month".
func FormatRent(amount decimal.Decimal, currency string) string {
	symbol, ok := currencySymbols[strings.ToUpper(currency)]
	if !ok {
		symbol = strings.ToUpper(currency) + " "
	}
	return symbol + groupThousands(amount.StringFixedBank(0)) + "/month"
}

func groupThousands(digits string) string {
	neg := strings.HasPrefix(digits, "-")
	digits = strings.TrimPrefix(digits, "-")
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// FormatAddress joins the non-empty address parts.
func FormatAddress(a model.Address) string {
	parts := make([]string, 0, 4)
	for _, p := range []string{a.Street, a.City, a.State, a.Country} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// entry is one property paired with at most one of its listings.
type entry struct {
	property model.PropertyPayload
	listing  *model.ListingPayload
}

func flatten(payloads []model.PropertyPayload) []entry {
	out := make([]entry, 0, len(payloads))
	for _, p := range payloads {
		switch {
		case len(p.Listings) > 0:
			for i := range p.Listings {
				out = append(out, entry{property: p, listing: &p.Listings[i]})
			}
		case p.Listing != nil:
			out = append(out, entry{property: p, listing: p.Listing})
		default:
			out = append(out, entry{property: p})
		}
	}
	return out
}

// Key is the card identity: propertyId-listingId, or propertyId-index when the
// listing id is missing.
func Key(propertyID, listingID string, index int) string {
	if listingID != "" {
		return propertyID + "-" + listingID
	}
	return propertyID + "-" + strconv.Itoa(index)
}

func toCard(e entry, index int) model.PropertyCard {
	p := e.property
	id := firstNonEmpty(p.PropertyID, p.ID)

	var listingID string
	currency := firstNonEmpty(p.Currency, defaultCurrency)
	tag := defaultTag
	if e.listing != nil {
		listingID = e.listing.ID
		currency = firstNonEmpty(e.listing.Currency, currency)
		tag = firstNonEmpty(e.listing.Status, e.listing.ListingType, tag)
	}

	images := make([]string, 0, len(p.Images)+1)
	if p.CoverImage != "" {
		images = append(images, p.CoverImage)
	}
	for _, img := range p.Images {
		if img != "" && img != p.CoverImage {
			images = append(images, img)
		}
	}
	var image string
	if len(images) > 0 {
		image = images[0]
	}

	amount := ResolveAmount(p, e.listing)
	return model.PropertyCard{
		ID:       id,
		Key:      Key(id, listingID, index),
		Title:    firstNonEmpty(p.Title, p.Name, FormatAddress(p.Address)),
		Address:  FormatAddress(p.Address),
		Type:     firstNonEmpty(p.PropertyType, p.Type),
		Price:    amount,
		Rent:     FormatRent(amount, currency),
		Currency: strings.ToUpper(currency),
		Tag:      tag,
		Image:    image,
		Images:   images,
	}
}

// Cards maps payloads into cards, one per listing, and drops every card whose
// key was already produced. The first occurrence wins.
func Cards(payloads []model.PropertyPayload) []model.PropertyCard {
	entries := flatten(payloads)
	cards := make([]model.PropertyCard, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	for i, e := range entries {
		card := toCard(e, i)
		if _, dup := seen[card.Key]; dup {
			continue
		}
		seen[card.Key] = struct{}{}
		cards = append(cards, card)
	}
	return cards
}

// Detail maps a single property payload to its detail view.
func Detail(p model.PropertyPayload) model.PropertyDetail {
	var first *model.ListingPayload
	switch {
	case len(p.Listings) > 0:
		first = &p.Listings[0]
	case p.Listing != nil:
		first = p.Listing
	}

	listings := p.Listings
	if len(listings) == 0 && p.Listing != nil {
		listings = []model.ListingPayload{*p.Listing}
	}

	return model.PropertyDetail{
		PropertyCard: toCard(entry{property: p, listing: first}, 0),
		Bedrooms:     string(p.Bedrooms),
		Bathrooms:    string(p.Bathrooms),
		Amenities:    p.Amenities,
		Description:  p.Description,
		Location: model.Location{
			Country: p.Address.Country,
			State:   p.Address.State,
			City:    p.Address.City,
		},
		Listings: listings,
	}
}
