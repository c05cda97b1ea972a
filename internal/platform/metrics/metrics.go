package metrics

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

type Provider struct {
	RequestsTotal    metric.Int64Counter
	RequestDuration  metric.Float64Histogram
	RequestsInFlight metric.Int64UpDownCounter
	FormSubmissions  metric.Int64Counter
	FormFieldErrors  metric.Int64Counter
	SessionsExpired  metric.Int64Counter
	registry         *prometheus.Registry
}

func NewProvider() (*Provider, error) {
	registry := prometheus.NewRegistry()

	exporter, err := promexporter.New(
		promexporter.WithRegisterer(registry),
	)
	if err != nil {
		return nil, err
	}

	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	meter := provider.Meter("sobasite")

	requestsTotal, err := meter.Int64Counter(
		"http_requests",
		metric.WithDescription("Total number of HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	requestDuration, err := meter.Float64Histogram(
		"http_request_duration",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10),
	)
	if err != nil {
		return nil, err
	}

	requestsInFlight, err := meter.Int64UpDownCounter(
		"http_requests_in_flight",
		metric.WithDescription("Number of HTTP requests currently in flight"),
	)
	if err != nil {
		return nil, err
	}

	formSubmissions, err := meter.Int64Counter(
		"form_submissions",
		metric.WithDescription("Reservation form submit attempts by outcome and category"),
	)
	if err != nil {
		return nil, err
	}

	formFieldErrors, err := meter.Int64Counter(
		"form_field_errors",
		metric.WithDescription("Field validation failures on rejected submissions"),
	)
	if err != nil {
		return nil, err
	}

	sessionsExpired, err := meter.Int64Counter(
		"form_sessions_expired",
		metric.WithDescription("Idle form sessions removed by the sweeper"),
	)
	if err != nil {
		return nil, err
	}

	return &Provider{
		RequestsTotal:    requestsTotal,
		RequestDuration:  requestDuration,
		RequestsInFlight: requestsInFlight,
		FormSubmissions:  formSubmissions,
		FormFieldErrors:  formFieldErrors,
		SessionsExpired:  sessionsExpired,
		registry:         registry,
	}, nil
}

func (p *Provider) RecordSubmission(ctx context.Context, outcome, category string) {
	p.FormSubmissions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
		attribute.String("category", category),
	))
}

func (p *Provider) RecordFieldError(ctx context.Context, field, kind string) {
	p.FormFieldErrors.Add(ctx, 1, metric.WithAttributes(
		attribute.String("field", field),
		attribute.String("kind", kind),
	))
}

func (p *Provider) RecordSessionsExpired(ctx context.Context, n int) {
	if n <= 0 {
		return
	}
	p.SessionsExpired.Add(ctx, int64(n))
}

func (p *Provider) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}
