package tracing

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"pet-shop-api/internal/domain/rules"
)

const instrumentationName = "pet-shop-api"

// Tracer envuelve un trace.Tracer de OpenTelemetry para los workflows.
// Sin provider configurado usa el global (noop por defecto).
type Tracer struct {
	tracer trace.Tracer
}

func New(provider trace.TracerProvider, component string) *Tracer {
	if provider == nil {
		provider = otel.GetTracerProvider()
	}
	name := instrumentationName
	if component != "" {
		name += "/" + component
	}
	return &Tracer{tracer: provider.Tracer(name)}
}

// Start abre un span con atributos simples (string/int/int64/bool, resto con fmt).
func (t *Tracer) Start(ctx context.Context, name string, kv ...any) (context.Context, trace.Span) {
	if t == nil || t.tracer == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return t.tracer.Start(ctx, name, trace.WithAttributes(attrs(kv)...))
}

// End cierra el span. Los rechazos de negocio quedan como atributo, no como error del span.
func End(span trace.Span, err error) {
	if err != nil {
		if k, ok := rules.KindOf(err); ok {
			span.SetAttributes(attribute.String("petshop.rejection", k.String()))
		} else {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}
	span.End()
}

func attrs(kv []any) []attribute.KeyValue {
	out := make([]attribute.KeyValue, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok || key == "" {
			continue
		}
		switch v := kv[i+1].(type) {
		case string:
			out = append(out, attribute.String(key, v))
		case int:
			out = append(out, attribute.Int(key, v))
		case int64:
			out = append(out, attribute.Int64(key, v))
		case bool:
			out = append(out, attribute.Bool(key, v))
		case error:
			out = append(out, attribute.String(key, v.Error()))
		default:
			out = append(out, attribute.String(key, fmt.Sprint(v)))
		}
	}
	return out
}
