package observability

import (
	"context"
	"sync"
	"testing"

	"go.opentelemetry.io/otel/trace/noop"
)

func TestInitialize_WithDisabled(t *testing.T) {
	resetInitState()

	shutdown, err := Initialize(context.Background(), Config{Enabled: false})
	if err != nil {
		t.Fatalf("Initialize should not return error when disabled: %v", err)
	}
	if shutdown == nil {
		t.Fatal("shutdown function should not be nil")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown should not return error: %v", err)
	}
}

func TestInitialize_WithInvalidConfig(t *testing.T) {
	resetInitState()

	cfg := Config{
		Enabled: true,
		Sampler: "invalid-sampler",
	}
	if _, err := Initialize(context.Background(), cfg); err == nil {
		t.Fatal("expected error for invalid config")
	}
}

func TestInitialize_OnlyRunsOnce(t *testing.T) {
	resetInitState()

	ctx := context.Background()
	first, err := Initialize(ctx, Config{Enabled: false})
	if err != nil {
		t.Fatal(err)
	}

	// A second call with a broken config still returns the first result.
	second, err := Initialize(ctx, Config{Enabled: true, Sampler: "invalid"})
	if err != nil {
		t.Fatalf("second Initialize should reuse first result, got error: %v", err)
	}
	_ = first
	_ = second
}

func TestCreateSampler(t *testing.T) {
	for _, samplerType := range []string{AlwaysOnSample, AlwaysOffSample, TraceIDRatioSample, "unknown"} {
		if sampler := createSampler(samplerType); sampler == nil {
			t.Errorf("createSampler(%q) returned nil", samplerType)
		}
	}
}

func TestTracerReturnsNoopByDefault(t *testing.T) {
	resetInitState()

	tracer := Tracer()
	if tracer == nil {
		t.Fatal("Tracer() should not return nil")
	}

	_, span := tracer.Start(context.Background(), "registry-load")
	if span == nil {
		t.Fatal("span should not be nil")
	}
	if span.IsRecording() {
		t.Error("noop span should not be recording")
	}
	span.End()
}

// resetInitState resets the initialization state for testing Initialize().
func resetInitState() {
	globalTracerProvider = noop.NewTracerProvider()
	initOnce = sync.Once{}
	initErr = nil
	initShutdown = nil
}
