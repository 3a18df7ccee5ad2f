package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/Nazarious-ucu/weather-informer/internal/models"
)

type Location struct {
	Latitude  float64 `envconfig:"LATITUDE" default:"55.890999"`
	Longitude float64 `envconfig:"LONGITUDE" default:"37.725437"`
}

type Forecast struct {
	Limit int    `envconfig:"FORECAST_LIMIT" default:"3"`
	Lang  string `envconfig:"LANG_TAG" default:"ru_RU"`
}

type Output struct {
	VerboseEcho     bool   `envconfig:"VERBOSE_ECHO" default:"true"`
	StrictStatus    bool   `envconfig:"STRICT_STATUS" default:"false"`
	MetricsTextfile string `envconfig:"METRICS_TEXTFILE"`
}

type Config struct {
	// APIKey is not validated here, an empty key is rejected by the weather service.
	APIKey      string `envconfig:"API_KEY"`
	APIURL      string `envconfig:"API_URL" default:"https://api.weather.yandex.ru/v2/forecast"`
	HTTPTimeout int    `envconfig:"HTTP_TIMEOUT" default:"10"`

	Location Location
	Forecast Forecast
	Output   Output

	LogsPath      string `envconfig:"LOGS_PATH"`
	HTTPTracePath string `envconfig:"HTTP_TRACE_PATH"`
	LogLevel      string `envconfig:"LOG_LEVEL" default:"info"`
}

func NewConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Timeout is the deadline for the whole forecast exchange. Zero means no
// deadline beyond the transport defaults.
func (c Config) Timeout() time.Duration {
	if c.HTTPTimeout <= 0 {
		return 0
	}
	return time.Duration(c.HTTPTimeout) * time.Second
}

func (c Config) Point() models.Location {
	return models.Location{
		Latitude:  c.Location.Latitude,
		Longitude: c.Location.Longitude,
	}
}
