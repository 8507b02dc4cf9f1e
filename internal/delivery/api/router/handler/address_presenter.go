package handler

import (
	"contacts/config"
	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/service"

	"github.com/google/uuid"
)

// AddressView is the JSON shape of an address returned to clients.
type AddressView struct {
	ID                       uuid.UUID `json:"id"`
	Name                     string    `json:"name"`
	GoogleMapAddress         string    `json:"googleMapAddress"`
	GoogleMapAddressLatitude string    `json:"googleMapAddressLatitude"`
	Address                  string    `json:"address"`
	Country                  string    `json:"country"`
	CountryName              string    `json:"country_name"`
	Street                   string    `json:"street"`
	City                     string    `json:"city"`
	Province                 string    `json:"province"`
	PostalCode               string    `json:"postal_code"`
	Latitude                 *float64  `json:"latitude"`
	Longitude                *float64  `json:"longitude"`
	Edit                     bool      `json:"edit"`
}

// AddressPresenter shapes addresses for responses. It holds no mutable state.
type AddressPresenter struct {
	catalog service.CountryCatalog
	maps    config.MapsConfig
}

// NewAddressPresenter is the constructor for AddressPresenter.
func NewAddressPresenter(catalog service.CountryCatalog, cfg *config.Config) *AddressPresenter {
	presenter := &AddressPresenter{catalog: catalog}
	if cfg.Maps != nil {
		presenter.maps = *cfg.Maps
	}

	return presenter
}

// Present builds the view of an address in the given locale.
// The address and its place must both be loaded.
func (p *AddressPresenter) Present(locale string, address *entity.Address) (*AddressView, error) {
	if address == nil || !address.HasPlace() {
		return nil, domainerrors.ErrMissingAssociation
	}
	place := address.Place

	countryName := ""
	if place.Country != "" {
		countryName = p.catalog.Name(locale, place.Country)
	}

	return &AddressView{
		ID:                       address.ID,
		Name:                     address.Name,
		GoogleMapAddress:         place.MapURL(p.maps.PlaceURL, countryName),
		GoogleMapAddressLatitude: place.MapURLWithCoordinates(p.maps.CoordinatesURL, p.maps.Zoom),
		Address:                  place.AddressString(countryName),
		Country:                  place.Country,
		CountryName:              countryName,
		Street:                   place.Street,
		City:                     place.City,
		Province:                 place.Province,
		PostalCode:               place.PostalCode,
		Latitude:                 place.Latitude(),
		Longitude:                place.Longitude(),
		Edit:                     false,
	}, nil
}

// PresentAll presents each address in order, failing on the first one without a place.
func (p *AddressPresenter) PresentAll(locale string, addresses []*entity.Address) ([]*AddressView, error) {
	views := make([]*AddressView, 0, len(addresses))
	for _, address := range addresses {
		view, err := p.Present(locale, address)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	return views, nil
}
