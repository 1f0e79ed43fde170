package logger

import (
	"testing"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.Level != "info" {
		t.Errorf("expected level info, got %s", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected format console, got %s", cfg.Format)
	}
	if !cfg.Timestamp {
		t.Error("expected timestamp enabled by default")
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := Config{Level: "verbose", Format: "json"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid level")
	}

	cfg = Config{Level: "debug", Format: "xml"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid format")
	}

	cfg = Config{Level: "debug", Format: "json"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestFields(t *testing.T) {
	m := Fields("a", 1, "b", "two")
	if m["a"] != 1 || m["b"] != "two" {
		t.Fatalf("unexpected map: %v", m)
	}

	// Odd trailing value is dropped.
	m = Fields("a", 1, "dangling")
	if len(m) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(m))
	}
}

func TestWithComponent(t *testing.T) {
	base := NewDefault("svc")
	tagged := base.WithComponent("auth")
	if tagged == base {
		t.Fatal("expected a new logger instance")
	}
}

func TestGlobalLogger(t *testing.T) {
	SetGlobalLogger(nil)
	l := GetGlobalLogger()
	if l == nil {
		t.Fatal("expected default global logger")
	}
	custom := NewDefault("custom")
	SetGlobalLogger(custom)
	if GetGlobalLogger() != custom {
		t.Fatal("expected custom global logger")
	}
}
