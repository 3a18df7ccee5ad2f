package forecast

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Nazarious-ucu/weather-informer/internal/models"
)

var (
	ErrMalformedPayload = errors.New("malformed forecast payload")
	ErrUnexpectedShape  = errors.New("unexpected forecast payload shape")
)

// ParseSnapshot decodes a forecast response body. The body must be a JSON
// object carrying info.url, fact.temp, fact.season, fact.condition and
// forecasts, each forecast with parts.day_short.temp. Null counts as missing.
func ParseSnapshot(body []byte) (models.Snapshot, error) {
	var shape payloadShape
	if err := json.Unmarshal(body, &shape); err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	if err := shape.check(); err != nil {
		return models.Snapshot{}, err
	}

	var snap models.Snapshot
	if err := json.Unmarshal(body, &snap); err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}

	snap.Raw = json.RawMessage(body)
	return snap, nil
}

// AverageTemperature is the mean short day temperature. An empty slice
// yields the plain sum, which is zero.
func AverageTemperature(forecasts []models.Forecast) float64 {
	sum := 0
	for _, f := range forecasts {
		sum += f.DayTemp()
	}
	if len(forecasts) == 0 {
		return float64(sum)
	}
	return float64(sum) / float64(len(forecasts))
}
