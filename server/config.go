package server

import (
	"fmt"

	"github.com/dygo/dykit/server/middleware"
)

// Defaults applied by Config.ApplyDefaults.
const (
	DefaultPort         = 8080
	DefaultReadTimeout  = 15
	DefaultWriteTimeout = 15
	DefaultIdleTimeout  = 60
	DefaultMaxBodySize  = "10MB"
)

// Config holds HTTP server configuration. Timeouts are in seconds;
// MaxBodySize takes a human-readable size such as "10MB".
type Config struct {
	Host         string                `yaml:"host" mapstructure:"host"`
	Port         int                   `yaml:"port" mapstructure:"port"`
	ReadTimeout  int                   `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout int                   `yaml:"write_timeout" mapstructure:"write_timeout"`
	IdleTimeout  int                   `yaml:"idle_timeout" mapstructure:"idle_timeout"`
	MaxBodySize  string                `yaml:"max_body_size" mapstructure:"max_body_size"`
	CORS         middleware.CORSConfig `yaml:"cors" mapstructure:"cors"`
}

// ApplyDefaults fills in zero-value fields, including a permissive CORS
// policy suited to development.
func (c *Config) ApplyDefaults() {
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = DefaultReadTimeout
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = DefaultWriteTimeout
	}
	if c.IdleTimeout == 0 {
		c.IdleTimeout = DefaultIdleTimeout
	}
	if c.MaxBodySize == "" {
		c.MaxBodySize = DefaultMaxBodySize
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = []string{"*"}
	}
	if len(c.CORS.AllowedMethods) == 0 {
		c.CORS.AllowedMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	}
	if len(c.CORS.AllowedHeaders) == 0 {
		c.CORS.AllowedHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	}
}

// Validate checks ranges. A zero port is allowed so ApplyDefaults can fill
// it in later.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("server.port must be between 0 and 65535 (got: %d)", c.Port)
	}
	for name, v := range map[string]int{
		"server.read_timeout":  c.ReadTimeout,
		"server.write_timeout": c.WriteTimeout,
		"server.idle_timeout":  c.IdleTimeout,
	} {
		if v < 0 {
			return fmt.Errorf("%s must be non-negative (got: %d)", name, v)
		}
	}
	return nil
}
