package observability

import (
	"context"
	"testing"
)

func TestDefaultTracerConfig(t *testing.T) {
	cfg := DefaultTracerConfig("svc")
	if cfg.ServiceName != "svc" {
		t.Errorf("unexpected service name: %s", cfg.ServiceName)
	}
	if cfg.Endpoint != "localhost:4318" || !cfg.Insecure {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("development default should sample everything, got %f", cfg.SampleRate)
	}
}

func TestServiceHealth_Aggregation(t *testing.T) {
	sh := NewServiceHealth("svc", "1.0.0")
	if sh.Status != HealthStatusUp {
		t.Fatalf("fresh service health should be up, got %s", sh.Status)
	}

	sh.AddComponent(Health{Name: "store", Status: HealthStatusUp})
	if sh.Status != HealthStatusUp {
		t.Errorf("up component must not change status, got %s", sh.Status)
	}

	sh.AddComponent(Health{Name: "cache", Status: HealthStatusDegraded})
	if sh.Status != HealthStatusDegraded {
		t.Errorf("degraded component should degrade service, got %s", sh.Status)
	}

	sh.AddComponent(Health{Name: "db", Status: HealthStatusDown})
	if sh.Status != HealthStatusDown {
		t.Errorf("down component should take service down, got %s", sh.Status)
	}

	sh.AddComponent(Health{Name: "late", Status: HealthStatusDegraded})
	if sh.Status != HealthStatusDown {
		t.Errorf("down must stick, got %s", sh.Status)
	}

	if len(sh.Components) != 4 {
		t.Errorf("expected 4 components, got %d", len(sh.Components))
	}
}

func TestSpanHelpers_NoProvider(t *testing.T) {
	// Without an initialized provider these must be safe no-ops.
	ctx, span := StartSpan(context.Background(), "test")
	SetSpanError(ctx, nil)
	span.End()

	if got := SpanFromContext(context.Background()); got == nil {
		t.Error("SpanFromContext must return a usable no-op span")
	}
}
