package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/zap"

	"github.com/Nazarious-ucu/weather-informer/internal/config"
	"github.com/Nazarious-ucu/weather-informer/internal/services/forecast"
	loggerT "github.com/Nazarious-ucu/weather-informer/internal/services/logger"
	metricsSvc "github.com/Nazarious-ucu/weather-informer/internal/services/metrics"
	"github.com/Nazarious-ucu/weather-informer/internal/services/report"
	"github.com/Nazarious-ucu/weather-informer/internal/services/weather"
)

const metricsNamespace = "weather_informer"

// App runs the forecast pipeline once: build URI, fetch, parse, average, render.
type App struct {
	cfg config.Config
	l   zerolog.Logger
	out io.Writer
	now func() time.Time
}

// New prepares an App that writes its report to out.
func New(cfg config.Config, logger zerolog.Logger, out io.Writer) *App {
	return &App{
		cfg: cfg,
		l:   logger,
		out: out,
		now: time.Now,
	}
}

// Run performs a single report. Errors are logged here and returned so the
// caller only has to pick an exit code.
func (a *App) Run(ctx context.Context) error {
	if timeout := a.cfg.Timeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	traceLogger, err := loggerT.NewFileLogger(a.cfg.HTTPTracePath)
	if err != nil {
		a.l.Error().Err(err).Msg("failed to create HTTP trace logger")
		traceLogger = zap.NewNop()
	}
	defer func(logger *zap.Logger) {
		// Sync on stderr/stdout sinks fails on some platforms, nothing to do about it.
		_ = logger.Sync()
	}(traceLogger)

	httpClient := &http.Client{Transport: loggerT.NewRoundTripper(traceLogger)}
	client := weather.NewClientYandex(a.cfg.APIKey, httpClient, a.l, a.cfg.Output.StrictStatus)
	m := metricsSvc.NewMetrics(metricsNamespace)
	defer a.writeMetrics(m)

	if a.cfg.APIKey == "" {
		a.l.Warn().Msg("API_KEY is empty, the request will most likely be rejected")
	}

	uri := weather.BuildRequestURI(a.cfg.APIURL, a.cfg.Point(), a.cfg.Forecast.Lang, a.cfg.Forecast.Limit)

	start := time.Now()
	resp, err := client.Fetch(ctx, uri)
	status := resp.StatusCode
	var statusErr *weather.StatusError
	if errors.As(err, &statusErr) {
		status = statusErr.Code
	}
	m.ObserveRequest(time.Since(start), status, err)
	if err != nil {
		a.l.Error().Err(err).Msg("forecast request failed")
		return fmt.Errorf("fetch forecast: %w", err)
	}

	if !resp.OK() {
		a.l.Warn().
			Int("status_code", resp.StatusCode).
			Msg("rendering report from a non-200 response")
	}

	snap, err := forecast.ParseSnapshot(resp.Body)
	if err != nil {
		a.l.Error().
			Err(err).
			Int("status_code", resp.StatusCode).
			Msg("failed to parse forecast response")
		return fmt.Errorf("parse forecast: %w", err)
	}

	avg := forecast.AverageTemperature(snap.Forecasts)
	m.ObserveReport(len(snap.Forecasts), avg, snap.Fact.Temp, a.now())

	renderer := report.NewRenderer(a.cfg.Point(), a.cfg.Output.VerboseEcho, a.now)
	if err := renderer.Render(a.out, snap, avg); err != nil {
		a.l.Error().Err(err).Msg("failed to render report")
		return err
	}

	a.l.Debug().
		Int("forecasts", len(snap.Forecasts)).
		Float64("average", avg).
		Msg("report rendered")

	return nil
}

func (a *App) writeMetrics(m *metricsSvc.Metrics) {
	path := a.cfg.Output.MetricsTextfile
	if path == "" {
		return
	}
	if err := m.WriteTextfile(path); err != nil {
		a.l.Error().Err(err).Str("path", path).Msg("failed to write metrics")
	}
}
