package metrics

import (
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	CompletionRequestsTotal   metric.Int64Counter
	CompletionDuration        metric.Float64Histogram
	ItineraryFallbacksTotal   metric.Int64Counter
	InsightParseFailuresTotal metric.Int64Counter
	AuthRequestsTotal         metric.Int64Counter
	MediaRequestsTotal        metric.Int64Counter
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics creates the instruments once, from the global MeterProvider.
// Call it after the provider is installed; before that the instruments are no-ops.
func InitAppMetrics() {
	once.Do(func() {
		appMetrics = newAppMetrics(otel.GetMeterProvider().Meter("travelmind-api"))
	})
}

// Get returns the instruments, initializing them on first use.
func Get() *AppMetrics {
	InitAppMetrics()
	return appMetrics
}

func newAppMetrics(meter metric.Meter) *AppMetrics {
	m := &AppMetrics{}

	// Instrument constructors only fail on invalid names; the no-op fallback
	// returned alongside the error is still safe to record on.
	m.CompletionRequestsTotal, _ = meter.Int64Counter(
		"completion_requests_total",
		metric.WithDescription("Completion provider calls by provider, mode and outcome"),
		metric.WithUnit("{request}"),
	)
	m.CompletionDuration, _ = meter.Float64Histogram(
		"completion_duration_seconds",
		metric.WithDescription("Latency of completion provider calls"),
		metric.WithUnit("s"),
	)
	m.ItineraryFallbacksTotal, _ = meter.Int64Counter(
		"itinerary_fallbacks_total",
		metric.WithDescription("Itinerary documents replaced by the fallback document"),
		metric.WithUnit("{document}"),
	)
	m.InsightParseFailuresTotal, _ = meter.Int64Counter(
		"insight_parse_failures_total",
		metric.WithDescription("Insight responses that were not valid JSON"),
		metric.WithUnit("{document}"),
	)
	m.AuthRequestsTotal, _ = meter.Int64Counter(
		"auth_requests_total",
		metric.WithDescription("Authentication requests by operation and outcome"),
		metric.WithUnit("{request}"),
	)
	m.MediaRequestsTotal, _ = meter.Int64Counter(
		"media_requests_total",
		metric.WithDescription("Media search requests by kind and outcome"),
		metric.WithUnit("{request}"),
	)

	return m
}
