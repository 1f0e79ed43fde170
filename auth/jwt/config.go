package jwt

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// DefaultDevSecret is the signing secret used when nothing else is
// configured. It exists so development servers work out of the box.
// Production deployments must set AUTH_JWT_SECRET.
const DefaultDevSecret = "dy-dev-secret-change-me-in-production"

// Config configures token issuance and verification.
type Config struct {
	// Secret is the HMAC signing key.
	Secret string `yaml:"secret" mapstructure:"secret"`

	// AccessTokenExpirySecs is the access token lifetime in seconds (default: 900).
	AccessTokenExpirySecs uint64 `yaml:"access_token_expiry_secs" mapstructure:"access_token_expiry_secs"`

	// RefreshTokenExpirySecs is the refresh token lifetime in seconds (default: 604800).
	RefreshTokenExpirySecs uint64 `yaml:"refresh_token_expiry_secs" mapstructure:"refresh_token_expiry_secs"`

	// Issuer is the "iss" claim.
	Issuer string `yaml:"issuer" mapstructure:"issuer"`

	// Audience is the "aud" claim.
	Audience string `yaml:"audience" mapstructure:"audience"`
}

// DefaultConfig returns a development configuration: 15 minute access
// tokens, 7 day refresh tokens, and the placeholder signing secret.
func DefaultConfig() Config {
	return Config{
		Secret:                 DefaultDevSecret,
		AccessTokenExpirySecs:  15 * 60,
		RefreshTokenExpirySecs: 7 * 24 * 60 * 60,
		Issuer:                 "dy-rs",
		Audience:               "dy-rs-api",
	}
}

// FromEnv returns the default configuration with environment overrides
// applied.
func FromEnv() Config {
	cfg := DefaultConfig()
	cfg.ApplyEnv()
	return cfg
}

// ApplyEnv overrides fields from the environment. Recognized variables:
//
//	AUTH_JWT_SECRET
//	AUTH_ACCESS_TOKEN_EXPIRY_SECS
//	AUTH_REFRESH_TOKEN_EXPIRY_SECS
//	AUTH_ISSUER
//	AUTH_AUDIENCE
//
// Unparsable numeric values are ignored.
func (c *Config) ApplyEnv() {
	if secret := os.Getenv("AUTH_JWT_SECRET"); secret != "" {
		c.Secret = secret
	}
	if v := os.Getenv("AUTH_ACCESS_TOKEN_EXPIRY_SECS"); v != "" {
		if secs, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.AccessTokenExpirySecs = secs
		}
	}
	if v := os.Getenv("AUTH_REFRESH_TOKEN_EXPIRY_SECS"); v != "" {
		if secs, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.RefreshTokenExpirySecs = secs
		}
	}
	if issuer := os.Getenv("AUTH_ISSUER"); issuer != "" {
		c.Issuer = issuer
	}
	if audience := os.Getenv("AUTH_AUDIENCE"); audience != "" {
		c.Audience = audience
	}
}

// ApplyDefaults fills in zero-value fields with the development defaults.
func (c *Config) ApplyDefaults() {
	def := DefaultConfig()
	if c.Secret == "" {
		c.Secret = def.Secret
	}
	if c.AccessTokenExpirySecs == 0 {
		c.AccessTokenExpirySecs = def.AccessTokenExpirySecs
	}
	if c.RefreshTokenExpirySecs == 0 {
		c.RefreshTokenExpirySecs = def.RefreshTokenExpirySecs
	}
	if c.Issuer == "" {
		c.Issuer = def.Issuer
	}
	if c.Audience == "" {
		c.Audience = def.Audience
	}
}

// Validate checks required fields.
func (c *Config) Validate() error {
	if c.Secret == "" {
		return errors.New("jwt: secret is required")
	}
	return nil
}

// IsDevSecret reports whether the placeholder signing secret is in use.
func (c *Config) IsDevSecret() bool {
	return c.Secret == DefaultDevSecret
}

// AccessTokenTTL returns the access token lifetime as a Duration.
func (c *Config) AccessTokenTTL() time.Duration {
	return time.Duration(c.AccessTokenExpirySecs) * time.Second
}

// RefreshTokenTTL returns the refresh token lifetime as a Duration.
func (c *Config) RefreshTokenTTL() time.Duration {
	return time.Duration(c.RefreshTokenExpirySecs) * time.Second
}
