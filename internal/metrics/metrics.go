package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus metrics of joke sessions.
// All recording methods are safe to call on a nil *Metrics.
type Metrics struct {
	registry *prometheus.Registry

	// Session metrics
	SessionsTotal *prometheus.CounterVec

	// Command metrics
	CommandsTotal     *prometheus.CounterVec
	InvalidInputTotal *prometheus.CounterVec
	HandlerDuration   *prometheus.HistogramVec

	// Joke metrics
	JokesFetchedTotal   *prometheus.CounterVec
	HistoryResetsTotal  prometheus.Counter
	ProviderErrorsTotal prometheus.Counter
}

// NewMetrics creates and registers all metrics
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,

		SessionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jokebot_sessions_total",
				Help: "Total number of finished sessions by outcome",
			},
			[]string{"outcome"},
		),

		CommandsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jokebot_commands_total",
				Help: "Total number of validated menu commands",
			},
			[]string{"choice"},
		),
		InvalidInputTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jokebot_invalid_input_total",
				Help: "Total number of rejected inputs by prompt kind",
			},
			[]string{"kind"},
		),
		HandlerDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "jokebot_handler_duration_seconds",
				Help:    "Duration of state handlers in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"state"},
		),

		JokesFetchedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jokebot_jokes_fetched_total",
				Help: "Total number of jokes fetched",
			},
			[]string{"language", "category"},
		),
		HistoryResetsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "jokebot_history_resets_total",
				Help: "Total number of joke history resets",
			},
		),
		ProviderErrorsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "jokebot_provider_errors_total",
				Help: "Total number of failed joke retrievals",
			},
		),
	}

	m.registry.MustRegister(
		m.SessionsTotal,
		m.CommandsTotal,
		m.InvalidInputTotal,
		m.HandlerDuration,
		m.JokesFetchedTotal,
		m.HistoryResetsTotal,
		m.ProviderErrorsTotal,
	)

	return m
}

// Registry returns the Prometheus registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordSession counts a finished session ("completed" or "failed").
func (m *Metrics) RecordSession(outcome string) {
	if m == nil {
		return
	}
	m.SessionsTotal.WithLabelValues(outcome).Inc()
}

// RecordCommand counts a validated menu choice.
func (m *Metrics) RecordCommand(choice string) {
	if m == nil {
		return
	}
	m.CommandsTotal.WithLabelValues(choice).Inc()
}

// RecordInvalidInput counts a rejected input for a prompt kind.
func (m *Metrics) RecordInvalidInput(kind string) {
	if m == nil {
		return
	}
	m.InvalidInputTotal.WithLabelValues(kind).Inc()
}

// ObserveHandler records how long a state handler ran.
func (m *Metrics) ObserveHandler(state string, d time.Duration) {
	if m == nil {
		return
	}
	m.HandlerDuration.WithLabelValues(state).Observe(d.Seconds())
}

// RecordJokeFetched counts a successfully fetched joke.
func (m *Metrics) RecordJokeFetched(language, category string) {
	if m == nil {
		return
	}
	m.JokesFetchedTotal.WithLabelValues(language, category).Inc()
}

// RecordHistoryReset counts a history reset.
func (m *Metrics) RecordHistoryReset() {
	if m == nil {
		return
	}
	m.HistoryResetsTotal.Inc()
}

// RecordProviderError counts a failed joke retrieval.
func (m *Metrics) RecordProviderError() {
	if m == nil {
		return
	}
	m.ProviderErrorsTotal.Inc()
}

// WriteTextfile writes the registry in the Prometheus text exposition format,
// suitable for the node_exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil || path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create metrics directory: %w", err)
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
