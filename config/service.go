package config

import (
	"fmt"

	"github.com/dygo/dykit/logger"
)

// ServiceConfig carries the fields every service needs. Projects extend it
// by embedding:
//
//	type MyConfig struct {
//	    config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
//	    Server server.Config `yaml:"server" mapstructure:"server"`
//	}
type ServiceConfig struct {
	Name        string        `yaml:"name" mapstructure:"name"`
	Environment string        `yaml:"environment" mapstructure:"environment"`
	Version     string        `yaml:"version" mapstructure:"version"`
	Debug       bool          `yaml:"debug" mapstructure:"debug"`
	Logging     logger.Config `yaml:"logging" mapstructure:"logging"`
}

// GetServiceConfig returns the embedded ServiceConfig. Promotion makes any
// embedding struct expose it without extra wiring.
func (c *ServiceConfig) GetServiceConfig() *ServiceConfig {
	return c
}

// IsDevelopment reports whether the service runs in the development
// environment.
func (c *ServiceConfig) IsDevelopment() bool {
	return c.Environment == "development"
}

// ApplyDefaults fills in zero-value fields. Development implies debug.
func (c *ServiceConfig) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.IsDevelopment() {
		c.Debug = true
	}
	if c.Debug && c.Logging.Level == "" {
		c.Logging.Level = "debug"
	}
	c.Logging.ApplyDefaults()
}

// Validate checks the base fields. Embedding structs should call this before
// validating their own sections.
func (c *ServiceConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("config.name is required")
	}
	validEnvs := []string{"development", "staging", "production"}
	found := false
	for _, env := range validEnvs {
		if c.Environment == env {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("config.environment must be one of %v (got: %s)", validEnvs, c.Environment)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	return nil
}
