package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/dygo/dykit/logger"
)

// FileSystem abstracts the file operations the loader performs, so tests can
// run against a fake tree.
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

// RealFileSystem implements FileSystem against the OS.
type RealFileSystem struct{}

func (RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// LoaderConfig holds the loader dependencies and optional explicit file
// paths. Zero values mean "search the standard locations".
type LoaderConfig struct {
	FileSystem FileSystem
	ConfigFile string
	EnvFile    string
}

// LoaderOption customizes LoadConfig.
type LoaderOption func(*LoaderConfig)

// WithFileSystem substitutes the filesystem used for resolution.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile pins the YAML config file path, skipping the search.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile pins the .env file path, skipping the search.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// Resolver locates config.yml and .env files for a service.
type Resolver struct {
	FileSystem FileSystem
}

// ResolvedFiles holds the paths the resolver settled on. Empty strings mean
// no file was found.
type ResolvedFiles struct {
	ConfigFile string
	EnvFile    string
}

// ResolveFiles returns explicit paths from opts when set, otherwise searches
// the standard locations.
func (r *Resolver) ResolveFiles(serviceName string, opts LoaderConfig) ResolvedFiles {
	resolved := ResolvedFiles{
		ConfigFile: opts.ConfigFile,
		EnvFile:    opts.EnvFile,
	}
	if resolved.ConfigFile == "" {
		resolved.ConfigFile = r.findConfigFile(serviceName)
	}
	if resolved.EnvFile == "" {
		resolved.EnvFile = r.findEnvFile(serviceName)
	}
	return resolved
}

func (r *Resolver) findConfigFile(serviceName string) string {
	searchPaths := []string{
		fmt.Sprintf("./cmd/%s/config.yml", serviceName),
		fmt.Sprintf("../cmd/%s/config.yml", serviceName),
		fmt.Sprintf("./examples/%s/config.yml", serviceName),
		"./config/config.yml",
		"../config/config.yml",
		"./config.yml",
	}
	for _, path := range searchPaths {
		if r.FileSystem.Exists(path) {
			return path
		}
	}
	return ""
}

func (r *Resolver) findEnvFile(serviceName string) string {
	// A service-specific .env wins over the shared one.
	envFiles := []string{fmt.Sprintf(".env.%s", serviceName), ".env"}
	basePaths := []string{
		fmt.Sprintf("./cmd/%s", serviceName),
		fmt.Sprintf("./examples/%s", serviceName),
		".",
		"..",
	}
	for _, envFile := range envFiles {
		for _, base := range basePaths {
			path := base + "/" + envFile
			if r.FileSystem.Exists(path) {
				return path
			}
		}
	}
	return ""
}

// LoadConfig loads configuration for a service into cfg. YAML is read first,
// then environment variables (including any loaded from a .env file) are
// layered on top, so the environment always wins.
func LoadConfig(serviceName string, cfg interface{}, opts ...LoaderOption) error {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.FileSystem == nil {
		lc.FileSystem = RealFileSystem{}
	}

	resolver := &Resolver{FileSystem: lc.FileSystem}
	files := resolver.ResolveFiles(serviceName, lc)

	v := viper.New()

	if files.ConfigFile != "" && lc.FileSystem.Exists(files.ConfigFile) {
		v.SetConfigFile(files.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			logger.Warn("Failed to read config file", logger.Fields(
				"file", files.ConfigFile,
				"error", err.Error(),
			))
		}
	}

	v.AutomaticEnv()
	bindEnvironment(v)

	if files.EnvFile != "" && lc.FileSystem.Exists(files.EnvFile) {
		if err := lc.FileSystem.LoadEnv(files.EnvFile); err != nil {
			logger.Warn("Failed to load .env file", logger.Fields(
				"file", files.EnvFile,
				"error", err.Error(),
			))
		} else {
			// Pick up variables the .env file just introduced.
			bindEnvironment(v)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unmarshal config for %s: %w", serviceName, err)
	}
	return nil
}

// bindEnvironment sets every environment variable into viper under all key
// shapes it could map to, since SERVER_READ_TIMEOUT cannot tell us whether
// the struct nests at server.read_timeout or server.read.timeout.
func bindEnvironment(v *viper.Viper) {
	for _, env := range os.Environ() {
		pair := strings.SplitN(env, "=", 2)
		if len(pair) != 2 {
			continue
		}
		for _, variant := range envKeyVariants(pair[0]) {
			v.Set(variant, pair[1])
		}
	}
}

// envKeyVariants expands an environment key into candidate viper keys.
// SERVER_READ_TIMEOUT becomes server_read_timeout, server.read.timeout,
// server.read_timeout, and server.read.timeout.
func envKeyVariants(envKey string) []string {
	lowerKey := strings.ToLower(envKey)
	parts := strings.Split(lowerKey, "_")
	if len(parts) <= 1 {
		return []string{lowerKey}
	}

	variants := []string{
		lowerKey,
		strings.ReplaceAll(lowerKey, "_", "."),
	}
	// Progressive nesting: each prefix becomes a dotted path and the rest
	// stays underscored.
	for i := 1; i < len(parts); i++ {
		variants = append(variants, strings.Join(parts[:i], ".")+"."+strings.Join(parts[i:], "_"))
	}

	seen := make(map[string]bool, len(variants))
	out := variants[:0]
	for _, variant := range variants {
		if !seen[variant] {
			seen[variant] = true
			out = append(out, variant)
		}
	}
	return out
}
