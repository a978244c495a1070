// Package telemetry настраивает OpenTelemetry-трейсинг для сервера.
package telemetry

import (
	"context"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	serviceName    = "gravenhold-server"
	serviceVersion = "0.1.0"
)

// Setup инициализирует OTLP HTTP экспортер.
// Конфигурация берется из стандартных OTEL_* переменных окружения:
//   - OTEL_EXPORTER_OTLP_ENDPOINT
//   - OTEL_EXPORTER_OTLP_HEADERS
//
// Возвращает shutdown-функцию, которую нужно вызвать при остановке сервера.
func Setup(ctx context.Context) (shutdown func(context.Context) error, err error) {
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}

	// Собираем resource сами, без слияния с Default(),
	// чтобы не ловить конфликты schema URL.
	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
			attribute.String("host.name", getHostname()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.name", "go"),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Tracer возвращает именованный трейсер для компонента.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer("gravenhold/" + name)
}

// NoopTracer возвращает трейсер-заглушку, когда телеметрия выключена.
func NoopTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer("gravenhold/noop")
}

func getHostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return hostname
}
