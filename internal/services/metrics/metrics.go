package metrics

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const divisor = 100

// Metrics holds the Prometheus collectors for a single informer run.
type Metrics struct {
	reg *prometheus.Registry

	RequestDuration    prometheus.Histogram
	ResponsesTotal     *prometheus.CounterVec
	ForecastEntries    prometheus.Gauge
	AverageTemperature prometheus.Gauge
	CurrentTemperature prometheus.Gauge
	LastRunTimestamp   prometheus.Gauge
}

// NewMetrics constructs and registers all run metrics on a private registry.
func NewMetrics(namespace string) *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),

		RequestDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "request_duration_seconds",
				Help:      "Duration of the forecast request",
				Buckets:   prometheus.DefBuckets,
			},
		),

		ResponsesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "responses_total",
				Help:      "Forecast responses by status class",
			},
			[]string{"status_class"},
		),

		ForecastEntries: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "forecast_entries",
				Help:      "Number of forecast days in the last response",
			},
		),

		AverageTemperature: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "forecast_average_temperature_celsius",
				Help:      "Average short day temperature over the forecast",
			},
		),

		CurrentTemperature: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "current_temperature_celsius",
				Help:      "Current temperature reported by the service",
			},
		),

		LastRunTimestamp: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "last_run_timestamp_seconds",
				Help:      "Unix time of the last completed report",
			},
		),
	}

	m.reg.MustRegister(
		m.RequestDuration,
		m.ResponsesTotal,
		m.ForecastEntries,
		m.AverageTemperature,
		m.CurrentTemperature,
		m.LastRunTimestamp,
	)

	return m
}

// ObserveRequest records one exchange. A failed exchange has no status.
func (m *Metrics) ObserveRequest(d time.Duration, status int, err error) {
	m.RequestDuration.Observe(d.Seconds())

	class := getStatusClass(status)
	if err != nil && status == 0 {
		class = "transport_error"
	}
	m.ResponsesTotal.WithLabelValues(class).Inc()
}

// ObserveReport records the values that went into a rendered report.
func (m *Metrics) ObserveReport(entries int, avg float64, current json.Number, at time.Time) {
	m.ForecastEntries.Set(float64(entries))
	m.AverageTemperature.Set(avg)
	if v, err := current.Float64(); err == nil {
		m.CurrentTemperature.Set(v)
	}
	m.LastRunTimestamp.Set(float64(at.Unix()))
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.reg
}

// WriteTextfile dumps the registry in the text exposition format for the
// node exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.reg); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}

func getStatusClass(code int) string {
	return fmt.Sprintf("%dxx", code/divisor)
}
