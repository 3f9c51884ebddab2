package telemetry

import (
	"context"
	"errors"
	"fmt"

	"github.com/acme/backend/internal/domain/shared"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracerName names spans started by the service helpers
const TracerName = "acme-backend"

// StartServiceSpan starts a "{role}.{operation}" span, e.g. "sponsor.invoice.publish".
func StartServiceSpan(ctx context.Context, role, operation string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.GetTracerProvider().Tracer(TracerName).Start(ctx,
		fmt.Sprintf("%s.%s", role, operation),
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
}

// EndSpan records err on span and ends it. Authorization and validation
// failures are expected outcomes and only get an attribute.
func EndSpan(span trace.Span, err error) {
	defer span.End()
	if err == nil {
		span.SetStatus(codes.Ok, "")
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		span.SetAttributes(attribute.String("error.code", domainErr.Code))
		if errors.Is(err, shared.ErrForbidden) || errors.Is(err, shared.ErrInvalidInput) {
			return
		}
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
