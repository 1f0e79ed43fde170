package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "github.com/dygo/dykit/errors"
	"github.com/dygo/dykit/observability"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.ReadTimeout != 15 || cfg.WriteTimeout != 15 || cfg.IdleTimeout != 60 {
		t.Errorf("unexpected timeout defaults: %+v", cfg)
	}
	if cfg.MaxBodySize != "10MB" {
		t.Errorf("expected 10MB body limit, got %s", cfg.MaxBodySize)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "*" {
		t.Errorf("unexpected CORS defaults: %+v", cfg.CORS)
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := Config{Port: 70000}
	if err := cfg.Validate(); err == nil {
		t.Error("out-of-range port must fail validation")
	}
	cfg = Config{Port: 8080, ReadTimeout: -1}
	if err := cfg.Validate(); err == nil {
		t.Error("negative timeout must fail validation")
	}
	cfg = Config{Port: 8080}
	if err := cfg.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}
}

func TestRespondWithError_AppError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/fail", func(c *gin.Context) {
		RespondWithError(c, apperrors.NotFound("Widget not found"))
	})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/fail", http.NoBody))

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["code"] != "NOT_FOUND" || body["message"] != "Widget not found" {
		t.Errorf("unexpected body: %v", body)
	}
	if _, present := body["details"]; present {
		t.Error("empty details must be omitted")
	}
}

func TestRespondWithError_PlainError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/boom", func(c *gin.Context) {
		RespondWithError(c, errors.New("socket closed unexpectedly"))
	})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/boom", http.NoBody))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
	if !json.Valid(rr.Body.Bytes()) {
		t.Fatal("body must be JSON")
	}
	body := rr.Body.String()
	if !strings.Contains(body, "INTERNAL_SERVER_ERROR") {
		t.Errorf("plain errors must become opaque internals: %s", body)
	}
	if strings.Contains(body, "socket closed") {
		t.Errorf("internal cause must never leak to clients: %s", body)
	}
}

func TestHealth_Aggregates(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	checker := func(_ context.Context) []observability.Health {
		return []observability.Health{
			{Name: "store", Status: observability.HealthStatusUp},
			{Name: "broker", Status: observability.HealthStatusDown, Message: "connection refused"},
		}
	}
	router.GET("/health", Health("test-svc", checker))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/health", http.NoBody))

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("a down component should yield 503, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"status":"down"`) {
		t.Errorf("unexpected body: %s", rr.Body.String())
	}
}

func TestHealth_NoChecker(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/health", Health("test-svc", nil))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/health", http.NoBody))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 with no checker, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"status":"up"`) {
		t.Errorf("unexpected body: %s", rr.Body.String())
	}
}
