package otel

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/propagation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// setup configures the enabled signal providers and returns a combined
// shutdown function. Exporters read their endpoint from the standard
// OTEL_EXPORTER_OTLP_* environment variables.
func (feature OTel) setup(ctx context.Context) (
	shutdown func(context.Context) error,
	err error,
) {
	var shutdownFuncs []func(context.Context) error

	shutdown = func(ctx context.Context) error {
		var err error
		for _, fn := range shutdownFuncs {
			err = errors.Join(err, fn(ctx))
		}
		shutdownFuncs = nil
		return err
	}

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	if feature.TracesEnabled {
		var exporter sdktrace.SpanExporter
		exporter, err = otlptracehttp.New(ctx)
		if err != nil {
			return
		}

		provider := sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(exporter),
		)
		shutdownFuncs = append(shutdownFuncs, provider.Shutdown)
		otel.SetTracerProvider(provider)
	}

	if feature.MetricsEnabled {
		var exporter sdkmetric.Exporter
		exporter, err = otlpmetrichttp.New(ctx)
		if err != nil {
			err = errors.Join(err, shutdown(ctx))
			return
		}

		provider := sdkmetric.NewMeterProvider(
			sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
		)
		shutdownFuncs = append(shutdownFuncs, provider.Shutdown)
		otel.SetMeterProvider(provider)
	}

	if feature.LogsEnabled {
		var exporter sdklog.Exporter
		exporter, err = otlploghttp.New(ctx)
		if err != nil {
			err = errors.Join(err, shutdown(ctx))
			return
		}

		provider := sdklog.NewLoggerProvider(
			sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
		)
		shutdownFuncs = append(shutdownFuncs, provider.Shutdown)
		global.SetLoggerProvider(provider)
	}

	return
}
