package service

import (
	"context"

	"contacts/internal/domain/entity"
)

// CountryCatalog is the reference data source for countries.
type CountryCatalog interface {
	// All returns every country with its name in the given locale, sorted for display.
	All(ctx context.Context, locale string) ([]entity.Country, error)

	// Name returns the display name of a country code in the given locale.
	// Unknown codes are returned unchanged.
	Name(locale, code string) string
}

// LocaleResolver determines the locale of the current request.
type LocaleResolver interface {
	// Resolve returns a supported locale tag such as "en" or "pt-BR".
	Resolve(ctx context.Context) string
}
