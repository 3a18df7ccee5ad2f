package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nazarious-ucu/weather-informer/internal/models"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Setenv("API_KEY", "secret")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, "https://api.weather.yandex.ru/v2/forecast", cfg.APIURL)
	assert.Equal(t, 3, cfg.Forecast.Limit)
	assert.Equal(t, "ru_RU", cfg.Forecast.Lang)
	assert.True(t, cfg.Output.VerboseEcho)
	assert.False(t, cfg.Output.StrictStatus)
	assert.Equal(t, 10*time.Second, cfg.Timeout())
	assert.Equal(t, models.Location{Latitude: 55.890999, Longitude: 37.725437}, cfg.Point())
}

func TestNewConfig_MissingKeyIsNotAnError(t *testing.T) {
	t.Setenv("API_KEY", "")

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Empty(t, cfg.APIKey)
}

func TestNewConfig_Overrides(t *testing.T) {
	t.Setenv("API_URL", "http://127.0.0.1:9999/v2/forecast")
	t.Setenv("LATITUDE", "59.93")
	t.Setenv("LONGITUDE", "30.31")
	t.Setenv("FORECAST_LIMIT", "7")
	t.Setenv("VERBOSE_ECHO", "false")
	t.Setenv("STRICT_STATUS", "true")
	t.Setenv("HTTP_TIMEOUT", "3")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:9999/v2/forecast", cfg.APIURL)
	assert.Equal(t, models.Location{Latitude: 59.93, Longitude: 30.31}, cfg.Point())
	assert.Equal(t, 7, cfg.Forecast.Limit)
	assert.False(t, cfg.Output.VerboseEcho)
	assert.True(t, cfg.Output.StrictStatus)
	assert.Equal(t, 3*time.Second, cfg.Timeout())
}

func TestNewConfig_InvalidNumber(t *testing.T) {
	t.Setenv("FORECAST_LIMIT", "three")

	_, err := NewConfig()
	assert.Error(t, err)
}

func TestTimeout_NonPositiveMeansNoDeadline(t *testing.T) {
	for _, v := range []string{"0", "-5"} {
		t.Run(v, func(t *testing.T) {
			t.Setenv("HTTP_TIMEOUT", v)

			cfg, err := NewConfig()
			require.NoError(t, err)
			assert.Zero(t, cfg.Timeout())
		})
	}
}
