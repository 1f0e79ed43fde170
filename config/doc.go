// Package config loads service configuration from YAML files and the
// environment. LoadConfig resolves a config.yml and .env file from standard
// locations (or explicit paths), layers environment variables on top via
// viper, and unmarshals the result into a caller-provided struct.
//
// ServiceConfig carries the fields every service needs (name, environment,
// logging) and is meant to be embedded with mapstructure:",squash".
// AppConfig composes the full stack for an HTTP service with auth and is
// loaded in one call with LoadApp.
package config
