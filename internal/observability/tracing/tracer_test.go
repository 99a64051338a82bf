package tracing

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func installRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })
	return recorder
}

func TestStartSpan_Success(t *testing.T) {
	recorder := installRecorder(t)

	_, span := StartSpan(context.Background(), "magazine.TopPublisher", attribute.Int("magazines", 3))
	EndSpan(span, nil)

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	got := spans[0]
	if got.Name() != "magazine.TopPublisher" {
		t.Errorf("expected span name 'magazine.TopPublisher', got '%s'", got.Name())
	}
	if got.Status().Code != codes.Unset {
		t.Errorf("expected unset status, got %v", got.Status().Code)
	}
	if got.InstrumentationScope().Name != InstrumentationName {
		t.Errorf("expected scope %q, got %q", InstrumentationName, got.InstrumentationScope().Name)
	}

	found := false
	for _, attr := range got.Attributes() {
		if attr.Key == "magazines" && attr.Value.AsInt64() == 3 {
			found = true
		}
	}
	if !found {
		t.Error("expected magazines attribute on span")
	}
}

func TestEndSpan_RecordsError(t *testing.T) {
	recorder := installRecorder(t)

	_, span := StartSpan(context.Background(), "author.Create")
	EndSpan(span, errors.New("validation failed"))

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Status().Code != codes.Error {
		t.Errorf("expected error status, got %v", spans[0].Status().Code)
	}
	if spans[0].Status().Description != "validation failed" {
		t.Errorf("unexpected status description %q", spans[0].Status().Description)
	}
	if len(spans[0].Events()) == 0 {
		t.Error("expected an exception event")
	}
}
