package password

// Default argon2id parameters.
const (
	// DefaultMemoryCost is the memory cost in KiB (64 MB).
	DefaultMemoryCost uint32 = 65536
	// DefaultTimeCost is the number of iterations.
	DefaultTimeCost uint32 = 3
	// DefaultParallelism is the number of threads.
	DefaultParallelism uint8 = 4
)

// Config configures argon2id hashing parameters.
type Config struct {
	// MemoryCost is the argon2 memory cost in KiB (default: 65536 = 64MB).
	MemoryCost uint32 `yaml:"memory_cost" mapstructure:"memory_cost"`

	// TimeCost is the number of argon2 iterations (default: 3).
	TimeCost uint32 `yaml:"time_cost" mapstructure:"time_cost"`

	// Parallelism is the argon2 thread count (default: 4).
	Parallelism uint8 `yaml:"parallelism" mapstructure:"parallelism"`
}

// ApplyDefaults sets default values for zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.MemoryCost == 0 {
		c.MemoryCost = DefaultMemoryCost
	}
	if c.TimeCost == 0 {
		c.TimeCost = DefaultTimeCost
	}
	if c.Parallelism == 0 {
		c.Parallelism = DefaultParallelism
	}
}

// NewHasher creates an argon2id Hasher from configuration.
func NewHasher(cfg Config) Hasher {
	cfg.ApplyDefaults()
	return NewArgon2Hasher(
		WithMemory(cfg.MemoryCost),
		WithTime(cfg.TimeCost),
		WithParallelism(cfg.Parallelism),
	)
}

// Hash hashes a password with the given configuration.
func Hash(password string, cfg Config) (string, error) {
	return NewHasher(cfg).Hash(password)
}

// HashDefault hashes a password with the default configuration.
func HashDefault(password string) (string, error) {
	return Hash(password, Config{})
}

// Verify reports whether the password matches the hash. The hash is
// self-describing, so no configuration is needed.
func Verify(password, hash string) (bool, error) {
	return NewArgon2Hasher().Verify(password, hash)
}
