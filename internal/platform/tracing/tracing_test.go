package tracing

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"pet-shop-api/internal/domain/rules"
)

func newRecorder() (*Tracer, *tracetest.SpanRecorder) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	return New(tp, "users"), rec
}

func TestTracer_RecordsAttributesAndInfraErrors(t *testing.T) {
	tr, rec := newRecorder()

	_, span := tr.Start(context.Background(), "users.Create", "user.id", int64(7), "email", "a@x.com", 3, "ignored")
	End(span, errors.New("db down"))

	spans := rec.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	s := spans[0]
	if s.Name() != "users.Create" {
		t.Fatalf("unexpected span name %q", s.Name())
	}
	if s.InstrumentationScope().Name != "pet-shop-api/users" {
		t.Fatalf("unexpected scope %q", s.InstrumentationScope().Name)
	}
	want := map[attribute.Key]bool{"user.id": false, "email": false}
	for _, a := range s.Attributes() {
		if _, ok := want[a.Key]; ok {
			want[a.Key] = true
		}
	}
	for k, seen := range want {
		if !seen {
			t.Fatalf("missing attribute %s", k)
		}
	}
	if s.Status().Code != codes.Error {
		t.Fatalf("expected error status, got %v", s.Status().Code)
	}
}

func TestTracer_RejectionIsNotSpanError(t *testing.T) {
	tr, rec := newRecorder()

	_, span := tr.Start(context.Background(), "pets.Create")
	End(span, rules.Conflict("duplicate pet"))

	s := rec.Ended()[0]
	if s.Status().Code == codes.Error {
		t.Fatalf("business rejection must not mark span as error")
	}
	found := false
	for _, a := range s.Attributes() {
		if a.Key == "petshop.rejection" && a.Value.AsString() == "conflict" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected rejection attribute")
	}
}
