package config

import (
	"fmt"

	"github.com/dygo/dykit/auth/jwt"
	"github.com/dygo/dykit/auth/password"
	"github.com/dygo/dykit/logger"
	"github.com/dygo/dykit/server"
	"github.com/dygo/dykit/util"
)

// AppConfig composes the full configuration for an HTTP service with auth:
// base service fields, HTTP server, token codec, and password hashing.
type AppConfig struct {
	ServiceConfig `yaml:",inline" mapstructure:",squash"`

	Server   server.Config   `yaml:"server" mapstructure:"server"`
	Auth     jwt.Config      `yaml:"auth" mapstructure:"auth"`
	Password password.Config `yaml:"password" mapstructure:"password"`
}

// ApplyDefaults fills in zero-value fields across all sections.
func (c *AppConfig) ApplyDefaults() {
	c.ServiceConfig.ApplyDefaults()
	c.Server.ApplyDefaults()
	c.Auth.ApplyDefaults()
	c.Password.ApplyDefaults()
}

// Validate checks all sections.
func (c *AppConfig) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("config.server: %w", err)
	}
	if err := c.Auth.Validate(); err != nil {
		return fmt.Errorf("config.auth: %w", err)
	}
	return nil
}

// LoadApp loads an AppConfig for the named service. Precedence, lowest to
// highest: built-in defaults, config.yml, AUTH_* environment variables.
// The placeholder signing secret triggers a warning so it cannot reach
// production silently.
func LoadApp(serviceName string, opts ...LoaderOption) (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := LoadConfig(serviceName, cfg, opts...); err != nil {
		return nil, err
	}

	if cfg.Name == "" {
		cfg.Name = serviceName
	}
	cfg.Auth.ApplyEnv()
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Auth.IsDevSecret() {
		logger.Warn("Using built-in development JWT secret; set AUTH_JWT_SECRET", logger.Fields(
			"secret", util.MaskSecret(cfg.Auth.Secret, 4),
		))
	}
	return cfg, nil
}
