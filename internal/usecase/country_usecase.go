package usecase

import (
	"context"

	"contacts/internal/domain/entity"
)

// CountryUsecase serves the reference list of countries for address forms.
type CountryUsecase interface {
	// GetCountries returns every country named in the request locale.
	GetCountries(ctx context.Context) ([]entity.Country, error)
}
