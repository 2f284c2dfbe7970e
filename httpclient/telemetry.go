package httpclient

import (
	"context"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/shoplo/shipx-go/httpclient"

// Attribute keys recorded on spans and metrics.
const (
	AttrMethod     = "http.request.method"
	AttrURL        = "url.full"
	AttrServer     = "server.address"
	AttrStatusCode = "http.response.status_code"
	AttrErrorType  = "error.type"
)

// Instrument names.
const (
	MetricRequestDuration = "http.client.request.duration"
	MetricRequestCount    = "shipx.http.client.requests"
)

type telemetry struct {
	tracer     trace.Tracer
	propagator propagation.TextMapPropagator
	duration   metric.Float64Histogram
	requests   metric.Int64Counter
}

func newTelemetry(tp trace.TracerProvider, mp metric.MeterProvider, p propagation.TextMapPropagator) *telemetry {
	meter := mp.Meter(instrumentationName)

	duration, err := meter.Float64Histogram(MetricRequestDuration,
		metric.WithUnit("s"),
		metric.WithDescription("Duration of outbound HTTP requests."))
	if err != nil {
		otel.Handle(err)
		duration = noop.Float64Histogram{}
	}

	requests, err := meter.Int64Counter(MetricRequestCount,
		metric.WithDescription("Number of outbound HTTP requests."))
	if err != nil {
		otel.Handle(err)
		requests = noop.Int64Counter{}
	}

	return &telemetry{
		tracer:     tp.Tracer(instrumentationName),
		propagator: p,
		duration:   duration,
		requests:   requests,
	}
}

// start opens a client span for req and injects its context into req's headers.
func (t *telemetry) start(ctx context.Context, req *http.Request) (context.Context, trace.Span) {
	ctx, span := t.tracer.Start(ctx, "HTTP "+req.Method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String(AttrMethod, req.Method),
			attribute.String(AttrURL, req.URL.Redacted()),
			attribute.String(AttrServer, req.URL.Hostname()),
		))
	t.propagator.Inject(ctx, propagation.HeaderCarrier(req.Header))
	return ctx, span
}

func (t *telemetry) finish(ctx context.Context, span trace.Span, method string, resp *Response, err error, elapsed time.Duration) {
	defer span.End()

	attrs := []attribute.KeyValue{attribute.String(AttrMethod, method)}
	if resp != nil {
		attrs = append(attrs, attribute.Int(AttrStatusCode, resp.StatusCode))
		span.SetAttributes(attribute.Int(AttrStatusCode, resp.StatusCode))
	}
	if err != nil {
		errType := "unknown"
		if e, ok := err.(*Error); ok {
			errType = e.Code.String()
		}
		attrs = append(attrs, attribute.String(AttrErrorType, errType))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	set := metric.WithAttributes(attrs...)
	t.duration.Record(ctx, elapsed.Seconds(), set)
	t.requests.Add(ctx, 1, set)
}
