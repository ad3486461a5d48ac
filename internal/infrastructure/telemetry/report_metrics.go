package telemetry

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// ErrMeterNil is returned when a nil meter is passed to a metrics constructor
var ErrMeterNil = errors.New("telemetry: meter cannot be nil")

// ReportMetrics records report assembly and export activity
type ReportMetrics struct {
	assemblies     metric.Int64Counter
	domainFailures metric.Int64Counter
	exports        metric.Int64Counter
	exportFailures metric.Int64Counter
	exportDuration metric.Float64Histogram
	deliveries     metric.Int64Counter
}

// NewReportMetrics registers the report instruments on meter
func NewReportMetrics(meter metric.Meter) (*ReportMetrics, error) {
	if meter == nil {
		return nil, ErrMeterNil
	}

	var (
		m   ReportMetrics
		err error
	)
	if m.assemblies, err = meter.Int64Counter("report_assemblies_total",
		metric.WithDescription("Composite report payloads assembled")); err != nil {
		return nil, err
	}
	if m.domainFailures, err = meter.Int64Counter("report_domain_failures_total",
		metric.WithDescription("Domain fetches that fell back to zero statistics")); err != nil {
		return nil, err
	}
	if m.exports, err = meter.Int64Counter("report_exports_total",
		metric.WithDescription("Export artifacts produced")); err != nil {
		return nil, err
	}
	if m.exportFailures, err = meter.Int64Counter("report_export_failures_total",
		metric.WithDescription("Exports that failed to render or persist")); err != nil {
		return nil, err
	}
	if m.exportDuration, err = meter.Float64Histogram("report_export_duration_ms",
		metric.WithDescription("Export rendering time"),
		metric.WithUnit("ms")); err != nil {
		return nil, err
	}
	if m.deliveries, err = meter.Int64Counter("report_deliveries_total",
		metric.WithDescription("Scheduled report hand-offs to the delivery collaborator")); err != nil {
		return nil, err
	}
	return &m, nil
}

// NoopReportMetrics returns metrics backed by a no-op meter, for tests and
// for wiring before a provider exists.
func NoopReportMetrics() *ReportMetrics {
	m, _ := NewReportMetrics(noop.NewMeterProvider().Meter(TracerName))
	return m
}

// RecordAssembly counts one payload with the number of degraded domains
func (m *ReportMetrics) RecordAssembly(ctx context.Context, degraded int) {
	m.assemblies.Add(ctx, 1, metric.WithAttributes(attribute.Bool("degraded", degraded > 0)))
}

// RecordDomainFailure counts a domain that fell back to its zero default
func (m *ReportMetrics) RecordDomainFailure(ctx context.Context, domain string) {
	m.domainFailures.Add(ctx, 1, metric.WithAttributes(attribute.String("domain", domain)))
}

// RecordExport counts an export and its duration
func (m *ReportMetrics) RecordExport(ctx context.Context, format, reportType string, elapsed time.Duration, err error) {
	attrs := metric.WithAttributes(
		attribute.String("format", format),
		attribute.String("report_type", reportType),
	)
	if err != nil {
		m.exportFailures.Add(ctx, 1, attrs)
		return
	}
	m.exports.Add(ctx, 1, attrs)
	m.exportDuration.Record(ctx, float64(elapsed.Microseconds())/1000, attrs)
}

// RecordDelivery counts a scheduled hand-off
func (m *ReportMetrics) RecordDelivery(ctx context.Context, provider string, err error) {
	m.deliveries.Add(ctx, 1, metric.WithAttributes(
		attribute.String("provider", provider),
		attribute.Bool("success", err == nil),
	))
}
