package handler

import (
	"testing"

	"contacts/config"
	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	mockService "contacts/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMapsConfig() *config.Config {
	return &config.Config{Maps: &config.MapsConfig{
		PlaceURL:       "https://www.google.com/maps/place/",
		CoordinatesURL: "https://maps.google.com/maps",
		Zoom:           7,
	}}
}

func float(v float64) *float64 {
	return &v
}

func springfield() *entity.Address {
	return &entity.Address{
		ID:   uuid.MustParse("0190a6a4-1c2b-7cde-8f00-000000000001"),
		Name: "Home",
		Place: &entity.Place{
			Country:    "US",
			Street:     "1 Main St",
			City:       "Springfield",
			Province:   "IL",
			PostalCode: "62704",
			Location:   entity.NewLocation(float(39.8), float(-89.6)),
		},
	}
}

func TestAddressPresenter_Present(t *testing.T) {
	catalog := mockService.NewMockCountryCatalog(t)
	catalog.EXPECT().Name("en", "US").Return("United States")
	presenter := NewAddressPresenter(catalog, testMapsConfig())

	view, err := presenter.Present("en", springfield())
	require.NoError(t, err)

	assert.Equal(t, &AddressView{
		ID:                       uuid.MustParse("0190a6a4-1c2b-7cde-8f00-000000000001"),
		Name:                     "Home",
		GoogleMapAddress:         "https://www.google.com/maps/place/1+Main+St+Springfield+IL+62704+United+States",
		GoogleMapAddressLatitude: "https://maps.google.com/maps?q=39.8,-89.6&z=7",
		Address:                  "1 Main St Springfield IL 62704 United States",
		Country:                  "US",
		CountryName:              "United States",
		Street:                   "1 Main St",
		City:                     "Springfield",
		Province:                 "IL",
		PostalCode:               "62704",
		Latitude:                 float(39.8),
		Longitude:                float(-89.6),
		Edit:                     false,
	}, view)
}

func TestAddressPresenter_Present_IsDeterministic(t *testing.T) {
	catalog := mockService.NewMockCountryCatalog(t)
	catalog.EXPECT().Name("fr", "US").Return("États-Unis")
	presenter := NewAddressPresenter(catalog, testMapsConfig())
	address := springfield()

	first, err := presenter.Present("fr", address)
	require.NoError(t, err)
	second, err := presenter.Present("fr", address)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, springfield(), address, "presenting must not modify the address")
}

func TestAddressPresenter_Present_WithoutCountryOrCoordinates(t *testing.T) {
	presenter := NewAddressPresenter(mockService.NewMockCountryCatalog(t), testMapsConfig())

	view, err := presenter.Present("en", &entity.Address{
		Name:  "PO box",
		Place: &entity.Place{City: "Lyon", PostalCode: "69001"},
	})
	require.NoError(t, err)

	assert.Empty(t, view.CountryName)
	assert.Equal(t, "Lyon 69001", view.Address)
	assert.Empty(t, view.GoogleMapAddressLatitude)
	assert.Nil(t, view.Latitude)
	assert.Nil(t, view.Longitude)
}

func TestAddressPresenter_Present_MissingAssociation(t *testing.T) {
	presenter := NewAddressPresenter(mockService.NewMockCountryCatalog(t), testMapsConfig())

	_, err := presenter.Present("en", nil)
	assert.ErrorIs(t, err, domainerrors.ErrMissingAssociation)

	_, err = presenter.Present("en", &entity.Address{Name: "Home"})
	assert.ErrorIs(t, err, domainerrors.ErrMissingAssociation)

	_, err = presenter.PresentAll("en", []*entity.Address{{Name: "Home"}})
	assert.ErrorIs(t, err, domainerrors.ErrMissingAssociation)
}
