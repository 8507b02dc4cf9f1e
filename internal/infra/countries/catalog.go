// Package countries implements the country reference data with the CLDR
// tables shipped in golang.org/x/text.
package countries

import (
	"context"
	"slices"
	"strings"

	"contacts/internal/domain/entity"
	"contacts/internal/domain/service"
	"contacts/internal/errors"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

type catalog struct {
	regions []language.Region
	byCode  map[string]language.Region
}

// NewCatalog parses the ISO code table once and returns the catalog.
func NewCatalog() (service.CountryCatalog, error) {
	regions := make([]language.Region, 0, len(isoCodes))
	byCode := make(map[string]language.Region, len(isoCodes))
	for _, code := range isoCodes {
		region, err := language.ParseRegion(code)
		if err != nil {
			return nil, errors.Wrapf(err, "parse region %s", code)
		}
		regions = append(regions, region)
		byCode[code] = region
	}

	return &catalog{regions: regions, byCode: byCode}, nil
}

// All returns every country named in the locale and ordered by that locale's collation.
func (c *catalog) All(ctx context.Context, locale string) ([]entity.Country, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, errors.Wrapf(err, "parse locale %q", locale)
	}

	namer := regionNamer(tag)
	countries := make([]entity.Country, 0, len(c.regions))
	for _, region := range c.regions {
		if err := ctx.Err(); err != nil {
			return nil, errors.WithStack(err)
		}
		countries = append(countries, entity.Country{
			Code: region.String(),
			Name: nameOf(namer, region),
		})
	}

	collator := collate.New(tag, collate.Loose)
	slices.SortStableFunc(countries, func(a, b entity.Country) int {
		return collator.CompareString(a.Name, b.Name)
	})

	return countries, nil
}

// Name returns the localized name of code, or code itself when it is not one of
// the alpha-2 codes All offers.
func (c *catalog) Name(locale, code string) string {
	region, ok := c.byCode[strings.ToUpper(code)]
	if !ok {
		return code
	}

	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}

	return nameOf(regionNamer(tag), region)
}

func regionNamer(tag language.Tag) display.Namer {
	if namer := display.Regions(tag); namer != nil {
		return namer
	}

	return display.English.Regions()
}

func nameOf(namer display.Namer, region language.Region) string {
	if name := namer.Name(region); name != "" {
		return name
	}
	if name := display.English.Regions().Name(region); name != "" {
		return name
	}

	return region.String()
}
