// Package locale resolves the language a request should be answered in.
package locale

import "context"

type preferencesKey struct{}

// Preferences are the raw locale hints carried by a request.
type Preferences struct {
	UserLocale     string // From the authenticated user's settings.
	AcceptLanguage string // The request's Accept-Language header.
}

// WithPreferences returns a new context carrying the request's locale hints.
func WithPreferences(ctx context.Context, prefs Preferences) context.Context {
	return context.WithValue(ctx, preferencesKey{}, prefs)
}

// PreferencesFromContext extracts the locale hints, or the zero value.
func PreferencesFromContext(ctx context.Context) Preferences {
	prefs, _ := ctx.Value(preferencesKey{}).(Preferences)

	return prefs
}
