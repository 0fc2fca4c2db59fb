package middleware

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/go-pathway/pathway"
	"github.com/go-pathway/pathway/observability"
)

// tracerName identifies spans created by this package.
const tracerName = "github.com/go-pathway/pathway/middleware"

// Tracing returns a middleware creating one server span per call on the
// given provider. The span's trace ID is also placed in the context so
// access logs can be correlated with traces.
func Tracing(provider trace.TracerProvider) pathway.Middleware {
	tracer := provider.Tracer(tracerName)
	return func(next pathway.Service) pathway.Service {
		return wrap(next, func(ctx context.Context, req *pathway.Request) (*pathway.Response, error) {
			ctx, span := tracer.Start(ctx, req.Method+" "+req.Path,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.request.method", req.Method),
					attribute.String("url.path", req.Path),
				),
			)
			defer span.End()

			ctx = observability.ContextWithTraceID(ctx, span.SpanContext().TraceID().String())

			resp, err := next.Call(ctx, req)

			switch {
			case err != nil:
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			default:
				span.SetAttributes(attribute.Int("http.response.status_code", resp.Status))
				if resp.Status >= 500 {
					span.SetStatus(codes.Error, "server error")
				}
			}

			return resp, err
		})
	}
}
