package observability

import (
	"testing"

	"github.com/prefeitura-rio/app-research-agent/internal/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.uber.org/zap"
)

func TestInitTracerDisabled(t *testing.T) {
	InitTracer(&config.Config{TracingEnabled: false}, zap.NewNop())

	if tracerProvider != nil {
		t.Fatalf("tracer provider should not be created when tracing is disabled")
	}

	fields := otel.GetTextMapPropagator().Fields()
	found := false
	for _, f := range fields {
		if f == "traceparent" {
			found = true
		}
	}
	if !found {
		t.Errorf("propagator fields = %v, want traceparent", fields)
	}

	// no-op without a provider
	ShutdownTracer(zap.NewNop())
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator())
}
