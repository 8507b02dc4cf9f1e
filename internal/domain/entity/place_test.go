package entity

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float(v float64) *float64 {
	return &v
}

func TestPlace_AddressString(t *testing.T) {
	tests := []struct {
		name        string
		place       Place
		countryName string
		want        string
	}{
		{
			name: "all parts",
			place: Place{
				Country: "US", Street: "1 Main St", City: "Springfield",
				Province: "IL", PostalCode: "62704",
			},
			countryName: "United States",
			want:        "1 Main St Springfield IL 62704 United States",
		},
		{
			name:        "missing parts are skipped",
			place:       Place{City: "Paris", Country: "FR"},
			countryName: "France",
			want:        "Paris France",
		},
		{
			name:        "country name ignored without country code",
			place:       Place{Street: "  12   Rue   Verte ", City: "Lyon"},
			countryName: "France",
			want:        "12 Rue Verte Lyon",
		},
		{
			name: "empty place",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.place.AddressString(tt.countryName))
		})
	}
}

func TestPlace_MapURL(t *testing.T) {
	place := Place{Street: "1 Main St", City: "Springfield", Country: "US"}

	got := place.MapURL("https://www.google.com/maps/place/", "United States")

	assert.Equal(t, "https://www.google.com/maps/place/1+Main+St+Springfield+United+States", got)
}

func TestPlace_MapURLWithCoordinates(t *testing.T) {
	place := Place{Location: NewLocation(float(39.8), float(-89.6))}

	got := place.MapURLWithCoordinates("https://maps.google.com/maps", 7)

	assert.Equal(t, "https://maps.google.com/maps?q=39.8,-89.6&z=7", got)
	assert.Empty(t, (&Place{}).MapURLWithCoordinates("https://maps.google.com/maps", 7))
}

func TestPlace_Coordinates(t *testing.T) {
	place := Place{Location: &orb.Point{-89.6, 39.8}}

	require.NotNil(t, place.Latitude())
	require.NotNil(t, place.Longitude())
	assert.InDelta(t, 39.8, *place.Latitude(), 1e-9)
	assert.InDelta(t, -89.6, *place.Longitude(), 1e-9)

	empty := Place{}
	assert.Nil(t, empty.Latitude())
	assert.Nil(t, empty.Longitude())
}

func TestNewLocation_RequiresBothCoordinates(t *testing.T) {
	assert.Nil(t, NewLocation(float(1), nil))
	assert.Nil(t, NewLocation(nil, float(1)))
	assert.Equal(t, &orb.Point{2, 1}, NewLocation(float(1), float(2)))
}
