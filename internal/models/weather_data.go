package models

import "encoding/json"

// Location is a point in degrees.
type Location struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

type Info struct {
	URL string `json:"url"`
}

type Fact struct {
	Temp      json.Number `json:"temp"`
	Season    string      `json:"season"`
	Condition string      `json:"condition"`
}

type DayPart struct {
	Temp int `json:"temp"`
}

type Parts struct {
	DayShort *DayPart `json:"day_short"`
}

type Forecast struct {
	Date  string `json:"date"`
	Parts Parts  `json:"parts"`
}

// DayTemp returns the short day temperature of a parsed forecast.
func (f Forecast) DayTemp() int {
	if f.Parts.DayShort == nil {
		return 0
	}
	return f.Parts.DayShort.Temp
}

// Snapshot is one parsed forecast response. Raw holds the body it was decoded from.
type Snapshot struct {
	Info      *Info      `json:"info"`
	Fact      *Fact      `json:"fact"`
	Forecasts []Forecast `json:"forecasts"`

	Raw json.RawMessage `json:"-"`
}
