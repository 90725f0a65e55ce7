package utils

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// TraceOperation traces an operation with timing and attributes
func TraceOperation(ctx context.Context, operationName string, attributes map[string]interface{}) (context.Context, trace.Span, func()) {
	start := time.Now()

	otelAttrs := make([]attribute.KeyValue, 0, len(attributes))
	for k, v := range attributes {
		switch val := v.(type) {
		case string:
			otelAttrs = append(otelAttrs, attribute.String(k, val))
		case int:
			otelAttrs = append(otelAttrs, attribute.Int(k, val))
		case int64:
			otelAttrs = append(otelAttrs, attribute.Int64(k, val))
		case bool:
			otelAttrs = append(otelAttrs, attribute.Bool(k, val))
		case float64:
			otelAttrs = append(otelAttrs, attribute.Float64(k, val))
		default:
			otelAttrs = append(otelAttrs, attribute.String(k, "unknown_type"))
		}
	}

	spanCtx, span := otel.Tracer("app-client").Start(ctx, operationName, trace.WithAttributes(otelAttrs...))

	cleanup := func() {
		duration := time.Since(start)
		span.SetAttributes(
			attribute.Int64("duration_ms", duration.Milliseconds()),
			attribute.String("duration", duration.String()),
		)
		span.End()
	}

	return spanCtx, span, cleanup
}

// TraceAPICall traces an outbound call to the wellness API
func TraceAPICall(ctx context.Context, method, path string) (context.Context, trace.Span, func()) {
	attributes := map[string]interface{}{
		"http.method": method,
		"http.route":  path,
	}

	return TraceOperation(ctx, "api."+method+" "+path, attributes)
}

// TraceSessionExchange traces the one-time session exchange
func TraceSessionExchange(ctx context.Context) (context.Context, trace.Span, func()) {
	return TraceOperation(ctx, "auth.session_exchange", map[string]interface{}{
		"auth.operation": "process_session",
	})
}

// TraceValidationOperation traces a validation operation
func TraceValidationOperation(ctx context.Context, validationType, field string) (context.Context, trace.Span, func()) {
	attributes := map[string]interface{}{
		"validation.type":  validationType,
		"validation.field": field,
	}

	return TraceOperation(ctx, "validation."+validationType, attributes)
}

// RecordErrorInSpan records an error in a span with additional context
func RecordErrorInSpan(span trace.Span, err error, context map[string]interface{}) {
	span.RecordError(err)

	for k, v := range context {
		switch val := v.(type) {
		case string:
			span.SetAttributes(attribute.String(k, val))
		case int:
			span.SetAttributes(attribute.Int(k, val))
		case bool:
			span.SetAttributes(attribute.Bool(k, val))
		default:
			span.SetAttributes(attribute.String(k, "unknown_type"))
		}
	}
}
