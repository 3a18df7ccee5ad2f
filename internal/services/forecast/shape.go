package forecast

import (
	"encoding/json"
	"fmt"
)

// payloadShape mirrors models.Snapshot with every required field as a
// pointer, so absent and null values can be told apart from zero values.
type payloadShape struct {
	Info *struct {
		URL *string `json:"url"`
	} `json:"info"`
	Fact *struct {
		Temp      *json.Number `json:"temp"`
		Season    *string      `json:"season"`
		Condition *string      `json:"condition"`
	} `json:"fact"`
	Forecasts *[]struct {
		Parts struct {
			DayShort *struct {
				Temp *int `json:"temp"`
			} `json:"day_short"`
		} `json:"parts"`
	} `json:"forecasts"`
}

func (p payloadShape) check() error {
	switch {
	case p.Info == nil:
		return fmt.Errorf("%w: missing info", ErrUnexpectedShape)
	case p.Info.URL == nil:
		return fmt.Errorf("%w: missing info.url", ErrUnexpectedShape)
	case p.Fact == nil:
		return fmt.Errorf("%w: missing fact", ErrUnexpectedShape)
	case p.Fact.Temp == nil:
		return fmt.Errorf("%w: missing fact.temp", ErrUnexpectedShape)
	case p.Fact.Season == nil:
		return fmt.Errorf("%w: missing fact.season", ErrUnexpectedShape)
	case p.Fact.Condition == nil:
		return fmt.Errorf("%w: missing fact.condition", ErrUnexpectedShape)
	case p.Forecasts == nil:
		return fmt.Errorf("%w: missing forecasts", ErrUnexpectedShape)
	}

	for i, f := range *p.Forecasts {
		if f.Parts.DayShort == nil {
			return fmt.Errorf("%w: missing forecasts[%d].parts.day_short", ErrUnexpectedShape, i)
		}
		if f.Parts.DayShort.Temp == nil {
			return fmt.Errorf("%w: missing forecasts[%d].parts.day_short.temp", ErrUnexpectedShape, i)
		}
	}
	return nil
}
