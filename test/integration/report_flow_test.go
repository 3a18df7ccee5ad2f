//go:build integration
// +build integration

package integration

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nazarious-ucu/weather-informer/internal/app"
	"github.com/Nazarious-ucu/weather-informer/internal/services/forecast"
)

func TestReportFlow_Success(t *testing.T) {
	var out bytes.Buffer

	err := app.New(*cfg, zerolog.Nop(), &out).Run(context.Background())
	require.NoError(t, err)

	report := out.String()
	assert.Contains(t, report, "Today "+time.Now().Format("02.01.2006"))
	assert.Contains(t, report, "In the N-city (55.890999, 37.725437) winter\n")
	assert.Contains(t, report, "Temperature: -7°C, light-snow\n")
	assert.Contains(t, report, "(more info here: https://yandex.ru/pogoda/moscow)\n")
	assert.Contains(t, report, "Average temperature for the next 3 days: -6.33°C\n")
}

func TestReportFlow_WrongKey(t *testing.T) {
	wrong := *cfg
	wrong.APIKey = "not-" + testKey
	var out bytes.Buffer

	err := app.New(wrong, zerolog.Nop(), &out).Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, forecast.ErrUnexpectedShape)
	assert.Empty(t, out.String())
}

func TestReportFlow_StrictWrongKey(t *testing.T) {
	strict := *cfg
	strict.APIKey = ""
	strict.Output.StrictStatus = true
	var out bytes.Buffer

	err := app.New(strict, zerolog.Nop(), &out).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
}
