package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

const attrLeague = "league"

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Setup configures OpenTelemetry metrics with a Prometheus exporter and
// optional OTLP exporter. It returns a Recorder, the Prometheus HTTP
// handler, and a shutdown function.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, http.Handler, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), nil, func(context.Context) error { return nil }, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = "sports-ticker"
	}

	promReader, promHandler, err := prometheusComponents()
	if err != nil {
		return nil, nil, nil, err
	}

	opts := []sdkmetric.Option{sdkmetric.WithReader(promReader)}

	if cfg.OtlpEndpoint != "" {
		otlpReader, err := buildOTLPReader(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
		if err != nil {
			return nil, nil, nil, err
		}
		opts = append(opts, sdkmetric.WithReader(otlpReader))
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, nil, nil, err
	}
	opts = append(opts, sdkmetric.WithResource(res))

	provider := sdkmetric.NewMeterProvider(opts...)

	instruments, err := newOtelInstruments(provider)
	if err != nil {
		return nil, nil, nil, err
	}

	shutdown := func(ctx context.Context) error {
		return provider.Shutdown(ctx)
	}
	return newRecorder(instruments), promHandler, shutdown, nil
}

func prometheusComponents() (sdkmetric.Reader, http.Handler, error) {
	reg := prometheus.NewRegistry()
	promExp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return promExp, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), nil
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	otlpOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		otlpOpts = append(otlpOpts, otlpmetrichttp.WithInsecure())
	}
	otlpExp, err := otlpmetrichttp.New(ctx, otlpOpts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(otlpExp, sdkmetric.WithInterval(15*time.Second)), nil
}

type otelInstruments struct {
	ctx               context.Context
	fetches           metric.Int64Counter
	fetchErrors       metric.Int64Counter
	fetchLatencyMs    metric.Float64Histogram
	rateLimitHits     metric.Int64Counter
	retryAfterMs      metric.Float64Histogram
	refreshCycles     metric.Int64Counter
	refreshErrors     metric.Int64Counter
	refreshLatencyMs  metric.Float64Histogram
	refreshGameCount  metric.Int64Histogram
	rebuilds          metric.Int64Counter
	stripWidthPx      metric.Int64Histogram
	rebuildLatencyMs  metric.Float64Histogram
	frames            metric.Int64Counter
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	meter := provider.Meter("sports-ticker")

	fetches, err := meter.Int64Counter("scoreboard_fetches_total")
	if err != nil {
		return nil, err
	}
	fetchErrors, err := meter.Int64Counter("scoreboard_fetch_errors_total")
	if err != nil {
		return nil, err
	}
	fetchLatency, err := meter.Float64Histogram("scoreboard_fetch_duration_ms")
	if err != nil {
		return nil, err
	}
	rateLimitHits, err := meter.Int64Counter("scoreboard_rate_limit_hits_total")
	if err != nil {
		return nil, err
	}
	retryAfter, err := meter.Float64Histogram("scoreboard_retry_after_ms")
	if err != nil {
		return nil, err
	}
	refreshCycles, err := meter.Int64Counter("refresh_cycles_total")
	if err != nil {
		return nil, err
	}
	refreshErrors, err := meter.Int64Counter("refresh_errors_total")
	if err != nil {
		return nil, err
	}
	refreshLatency, err := meter.Float64Histogram("refresh_cycle_duration_ms")
	if err != nil {
		return nil, err
	}
	refreshGames, err := meter.Int64Histogram("refresh_game_count")
	if err != nil {
		return nil, err
	}
	rebuilds, err := meter.Int64Counter("strip_rebuilds_total")
	if err != nil {
		return nil, err
	}
	stripWidth, err := meter.Int64Histogram("strip_width_px")
	if err != nil {
		return nil, err
	}
	rebuildLatency, err := meter.Float64Histogram("strip_rebuild_duration_ms")
	if err != nil {
		return nil, err
	}
	frames, err := meter.Int64Counter("frames_rendered_total")
	if err != nil {
		return nil, err
	}

	return &otelInstruments{
		ctx:              context.Background(),
		fetches:          fetches,
		fetchErrors:      fetchErrors,
		fetchLatencyMs:   fetchLatency,
		rateLimitHits:    rateLimitHits,
		retryAfterMs:     retryAfter,
		refreshCycles:    refreshCycles,
		refreshErrors:    refreshErrors,
		refreshLatencyMs: refreshLatency,
		refreshGameCount: refreshGames,
		rebuilds:         rebuilds,
		stripWidthPx:     stripWidth,
		rebuildLatencyMs: rebuildLatency,
		frames:           frames,
	}, nil
}

func (o *otelInstruments) recordFetch(league string, duration time.Duration, err error) {
	attrs := metric.WithAttributes(attribute.String(attrLeague, league))
	o.fetches.Add(o.ctx, 1, attrs)
	o.fetchLatencyMs.Record(o.ctx, float64(duration.Milliseconds()), attrs)
	if err != nil {
		o.fetchErrors.Add(o.ctx, 1, attrs)
	}
}

func (o *otelInstruments) recordRateLimit(league string, retryAfter time.Duration) {
	attrs := metric.WithAttributes(attribute.String(attrLeague, league))
	o.rateLimitHits.Add(o.ctx, 1, attrs)
	if retryAfter > 0 {
		o.retryAfterMs.Record(o.ctx, float64(retryAfter.Milliseconds()), attrs)
	}
}

func (o *otelInstruments) recordRefreshCycle(duration time.Duration, games int, err error) {
	o.refreshCycles.Add(o.ctx, 1)
	o.refreshLatencyMs.Record(o.ctx, float64(duration.Milliseconds()))
	o.refreshGameCount.Record(o.ctx, int64(games))
	if err != nil {
		o.refreshErrors.Add(o.ctx, 1)
	}
}

func (o *otelInstruments) recordRebuild(stripWidth, blocks int, duration time.Duration) {
	_ = blocks
	o.rebuilds.Add(o.ctx, 1)
	o.stripWidthPx.Record(o.ctx, int64(stripWidth))
	o.rebuildLatencyMs.Record(o.ctx, float64(duration.Milliseconds()))
}

func (o *otelInstruments) recordFrame() {
	o.frames.Add(o.ctx, 1)
}
