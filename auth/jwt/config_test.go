package jwt

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.AccessTokenExpirySecs != 900 {
		t.Errorf("expected access TTL 900, got %d", cfg.AccessTokenExpirySecs)
	}
	if cfg.RefreshTokenExpirySecs != 604800 {
		t.Errorf("expected refresh TTL 604800, got %d", cfg.RefreshTokenExpirySecs)
	}
	if cfg.Issuer != "dy-rs" {
		t.Errorf("expected issuer dy-rs, got %s", cfg.Issuer)
	}
	if cfg.Audience != "dy-rs-api" {
		t.Errorf("expected audience dy-rs-api, got %s", cfg.Audience)
	}
	if !cfg.IsDevSecret() {
		t.Error("default config should carry the dev placeholder secret")
	}
	if cfg.AccessTokenTTL() != 15*time.Minute {
		t.Errorf("unexpected access TTL duration: %s", cfg.AccessTokenTTL())
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "env-secret")
	t.Setenv("AUTH_ACCESS_TOKEN_EXPIRY_SECS", "111")
	t.Setenv("AUTH_REFRESH_TOKEN_EXPIRY_SECS", "222")
	t.Setenv("AUTH_ISSUER", "env-iss")
	t.Setenv("AUTH_AUDIENCE", "env-aud")

	cfg := FromEnv()
	if cfg.Secret != "env-secret" {
		t.Errorf("expected env-secret, got %s", cfg.Secret)
	}
	if cfg.AccessTokenExpirySecs != 111 {
		t.Errorf("expected 111, got %d", cfg.AccessTokenExpirySecs)
	}
	if cfg.RefreshTokenExpirySecs != 222 {
		t.Errorf("expected 222, got %d", cfg.RefreshTokenExpirySecs)
	}
	if cfg.Issuer != "env-iss" || cfg.Audience != "env-aud" {
		t.Errorf("expected env issuer/audience, got %s/%s", cfg.Issuer, cfg.Audience)
	}
	if cfg.IsDevSecret() {
		t.Error("env secret should not be reported as dev placeholder")
	}
}

func TestFromEnv_IgnoresUnparsableNumbers(t *testing.T) {
	t.Setenv("AUTH_ACCESS_TOKEN_EXPIRY_SECS", "not-a-number")
	t.Setenv("AUTH_REFRESH_TOKEN_EXPIRY_SECS", "-5")

	cfg := FromEnv()
	if cfg.AccessTokenExpirySecs != 900 {
		t.Errorf("unparsable access TTL should keep default, got %d", cfg.AccessTokenExpirySecs)
	}
	if cfg.RefreshTokenExpirySecs != 604800 {
		t.Errorf("unparsable refresh TTL should keep default, got %d", cfg.RefreshTokenExpirySecs)
	}
}

func TestApplyDefaults_FillsZeroFields(t *testing.T) {
	cfg := Config{Secret: "s"}
	cfg.ApplyDefaults()

	if cfg.Secret != "s" {
		t.Errorf("explicit secret must be kept, got %s", cfg.Secret)
	}
	if cfg.AccessTokenExpirySecs == 0 || cfg.Issuer == "" || cfg.Audience == "" {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestValidate_RequiresSecret(t *testing.T) {
	cfg := Config{}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing secret")
	}
}
