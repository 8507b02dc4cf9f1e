package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"maps": map[string]any{
			"placeUrl":       "",
			"coordinatesUrl": "",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "MAPS_PLACEURL", want: "maps.placeUrl"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "LOCALE__DEFAULT", want: "locale.default"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, defaultLocale, cfg.Locale.Default)
	assert.Equal(t, []string{defaultLocale}, cfg.Locale.Supported)
	assert.Equal(t, defaultPlaceURL, cfg.Maps.PlaceURL)
	assert.Equal(t, defaultCoordinatesURL, cfg.Maps.CoordinatesURL)
	assert.Equal(t, defaultMapZoom, cfg.Maps.Zoom)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Locale: &LocaleConfig{Default: "fr", Supported: []string{"fr", "en"}},
		Maps:   &MapsConfig{PlaceURL: "https://maps.example/place/", Zoom: 12},
	}
	cfg.applyDefaults()

	assert.Equal(t, "fr", cfg.Locale.Default)
	assert.Equal(t, []string{"fr", "en"}, cfg.Locale.Supported)
	assert.Equal(t, "https://maps.example/place/", cfg.Maps.PlaceURL)
	assert.Equal(t, defaultCoordinatesURL, cfg.Maps.CoordinatesURL)
	assert.Equal(t, 12, cfg.Maps.Zoom)
}
