package impl

import (
	"context"
	"log/slog"

	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/service"
	"contacts/internal/infra/cache"
	"contacts/internal/usecase"

	"go.uber.org/fx"
)

const countriesKeyPrefix = "countries."

// countryService implements the CountryUsecase interface.
type countryService struct {
	catalog  service.CountryCatalog
	resolver service.LocaleResolver
	memo     *cache.Memo[[]entity.Country]
	logger   *slog.Logger
}

// CountryServiceParams holds dependencies for CountryService, injected by Fx.
type CountryServiceParams struct {
	fx.In

	Catalog  service.CountryCatalog
	Resolver service.LocaleResolver
	Memo     *cache.Memo[[]entity.Country]
	Logger   *slog.Logger
}

// NewCountryService is the constructor for countryService.
func NewCountryService(params CountryServiceParams) usecase.CountryUsecase {
	return &countryService{
		catalog:  params.Catalog,
		resolver: params.Resolver,
		memo:     params.Memo,
		logger:   params.Logger,
	}
}

// GetCountries returns the country list for the request locale, building it once per locale.
func (srv *countryService) GetCountries(ctx context.Context) ([]entity.Country, error) {
	locale := srv.resolver.Resolve(ctx)

	countries, err := srv.memo.GetOrCompute(countriesKeyPrefix+locale, func() ([]entity.Country, error) {
		srv.logger.Debug("Building country list", slog.String("locale", locale))

		// Memoized for the process lifetime; detached from request cancellation.
		return srv.catalog.All(context.WithoutCancel(ctx), locale)
	})
	if err != nil {
		return nil, domainerrors.ErrCountryCatalogUnavailable.WrapMessage(err.Error())
	}

	return countries, nil
}
