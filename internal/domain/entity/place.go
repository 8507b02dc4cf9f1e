package entity

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Place holds the postal components and coordinates of an address.
type Place struct {
	ID         uuid.UUID
	AccountID  uuid.UUID
	Country    string     // ISO 3166-1 alpha-2 code, empty when unknown.
	Street     string
	City       string
	Province   string
	PostalCode string
	Location   *orb.Point // Longitude/latitude pair, nil when no coordinates were given.
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Latitude returns the latitude, or nil when the place has no coordinates.
func (p *Place) Latitude() *float64 {
	if p.Location == nil {
		return nil
	}
	lat := p.Location.Lat()

	return &lat
}

// Longitude returns the longitude, or nil when the place has no coordinates.
func (p *Place) Longitude() *float64 {
	if p.Location == nil {
		return nil
	}
	lon := p.Location.Lon()

	return &lon
}

// AddressString renders the place on a single line: street, city, province,
// postal code and country name, skipping empty parts.
func (p *Place) AddressString(countryName string) string {
	parts := []string{p.Street, p.City, p.Province, p.PostalCode}
	if p.Country != "" {
		parts = append(parts, countryName)
	}

	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}

// MapURL returns a map search link for the formatted address.
func (p *Place) MapURL(baseURL, countryName string) string {
	return baseURL + url.QueryEscape(p.AddressString(countryName))
}

// MapURLWithCoordinates returns a map link centered on the coordinates,
// or an empty string when the place has none.
func (p *Place) MapURLWithCoordinates(baseURL string, zoom int) string {
	if p.Location == nil {
		return ""
	}

	query := strconv.FormatFloat(p.Location.Lat(), 'f', -1, 64) + "," +
		strconv.FormatFloat(p.Location.Lon(), 'f', -1, 64)

	return baseURL + "?q=" + query + "&z=" + strconv.Itoa(zoom)
}

// NewLocation builds a point from optional coordinates. Both must be present.
func NewLocation(latitude, longitude *float64) *orb.Point {
	if latitude == nil || longitude == nil {
		return nil
	}

	return &orb.Point{*longitude, *latitude}
}
