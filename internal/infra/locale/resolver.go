package locale

import (
	"context"

	"contacts/config"
	"contacts/internal/domain/service"
	"contacts/internal/errors"

	"golang.org/x/text/language"
)

type resolver struct {
	supported []language.Tag
	matcher   language.Matcher
}

// NewResolver builds a resolver over the configured locales. The default
// locale is the fallback, whatever its position in the supported list.
func NewResolver(cfg *config.Config) (service.LocaleResolver, error) {
	def, err := language.Parse(cfg.Locale.Default)
	if err != nil {
		return nil, errors.Wrapf(err, "parse default locale %q", cfg.Locale.Default)
	}

	// the matcher falls back to its first tag
	supported := []language.Tag{def}
	for _, raw := range cfg.Locale.Supported {
		tag, err := language.Parse(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "parse supported locale %q", raw)
		}
		if tag != def {
			supported = append(supported, tag)
		}
	}

	return &resolver{
		supported: supported,
		matcher:   language.NewMatcher(supported),
	}, nil
}

// Resolve picks the user's locale first, then Accept-Language, then the default.
func (r *resolver) Resolve(ctx context.Context) string {
	prefs := PreferencesFromContext(ctx)

	if prefs.UserLocale != "" {
		if tag, err := language.Parse(prefs.UserLocale); err == nil {
			if match, ok := r.match(tag); ok {
				return match
			}
		}
	}

	if prefs.AcceptLanguage != "" {
		if tags, _, err := language.ParseAcceptLanguage(prefs.AcceptLanguage); err == nil && len(tags) > 0 {
			if match, ok := r.match(tags...); ok {
				return match
			}
		}
	}

	return r.supported[0].String()
}

func (r *resolver) match(tags ...language.Tag) (string, bool) {
	_, index, confidence := r.matcher.Match(tags...)
	if confidence == language.No {
		return "", false
	}

	return r.supported[index].String(), true
}
