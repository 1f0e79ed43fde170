// Package password provides password hashing, verification, and strength
// validation for the auth subsystem.
//
// It defines a Hasher interface with two implementations:
//   - Argon2Hasher: memory-hard argon2id hashing (the default)
//   - BcryptHasher: bcrypt, for compatibility with existing password stores
//
// Hashes are self-describing: the algorithm identifier, its parameters, and
// the per-password random salt are embedded in the encoded string, so
// verification needs no external configuration.
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/dygo/dykit/errors"
)

// Hasher defines the interface for password hashing and verification.
type Hasher interface {
	// Hash returns a hashed representation of the password.
	Hash(password string) (string, error)

	// Verify reports whether a password matches the given hash. The error
	// is non-nil only when the hash itself is malformed.
	Verify(password, hash string) (bool, error)
}

// --- Argon2id Implementation ---

// Argon2Hasher implements Hasher using argon2id.
type Argon2Hasher struct {
	memory  uint32
	time    uint32
	threads uint8
	keyLen  uint32
	saltLen int
}

// Argon2Option configures the argon2id hasher.
type Argon2Option func(*Argon2Hasher)

// WithMemory sets the memory cost in KiB (default: 65536 = 64MB).
func WithMemory(m uint32) Argon2Option {
	return func(h *Argon2Hasher) { h.memory = m }
}

// WithTime sets the number of iterations (default: 3).
func WithTime(t uint32) Argon2Option {
	return func(h *Argon2Hasher) { h.time = t }
}

// WithParallelism sets the degree of parallelism (default: 4).
func WithParallelism(p uint8) Argon2Option {
	return func(h *Argon2Hasher) { h.threads = p }
}

// NewArgon2Hasher creates an argon2id-based password hasher.
func NewArgon2Hasher(opts ...Argon2Option) *Argon2Hasher {
	h := &Argon2Hasher{
		memory:  DefaultMemoryCost,
		time:    DefaultTimeCost,
		threads: DefaultParallelism,
		keyLen:  32,
		saltLen: 16,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Hash returns the PHC-encoded argon2id hash of the password:
// $argon2id$v=19$m=MEMORY,t=TIME,p=THREADS$SALT$HASH
func (h *Argon2Hasher) Hash(password string) (string, error) {
	if h.memory == 0 || h.time == 0 || h.threads == 0 {
		return "", apperrors.Internal("Invalid argon2 parameters")
	}

	salt, err := generateRandomBytes(h.saltLen)
	if err != nil {
		return "", apperrors.Internal("Failed to generate salt").WithCause(err)
	}

	hash := argon2.IDKey([]byte(password), salt, h.time, h.memory, h.threads, h.keyLen)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.memory, h.time, h.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	)
	return encoded, nil
}

// Verify recomputes the hash with the parameters embedded in encodedHash and
// compares in constant time.
func (h *Argon2Hasher) Verify(password, encodedHash string) (bool, error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false, apperrors.Internal("Invalid password hash format")
	}

	var memory, iterations uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &threads); err != nil {
		return false, apperrors.Internal("Invalid password hash parameters").WithCause(err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, apperrors.Internal("Invalid password hash salt").WithCause(err)
	}

	expected, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, apperrors.Internal("Invalid password hash digest").WithCause(err)
	}

	hash := argon2.IDKey([]byte(password), salt, iterations, memory, threads, uint32(len(expected)))
	return subtle.ConstantTimeCompare(hash, expected) == 1, nil
}

// --- Bcrypt Implementation ---

// BcryptHasher implements Hasher using bcrypt.
type BcryptHasher struct {
	cost int
}

// BcryptOption configures the bcrypt hasher.
type BcryptOption func(*BcryptHasher)

// WithCost sets the bcrypt cost parameter (default: 12, range: 4-31).
func WithCost(cost int) BcryptOption {
	return func(h *BcryptHasher) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			h.cost = cost
		}
	}
}

// NewBcryptHasher creates a bcrypt-based password hasher.
func NewBcryptHasher(opts ...BcryptOption) *BcryptHasher {
	h := &BcryptHasher{cost: 12}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	if len(password) > 72 {
		return "", apperrors.Internal("Password exceeds the 72-byte bcrypt limit")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", apperrors.Internal("Failed to hash password").WithCause(err)
	}
	return string(hash), nil
}

func (h *BcryptHasher) Verify(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, apperrors.Internal("Invalid password hash format").WithCause(err)
	}
}

// generateRandomBytes returns cryptographically secure random bytes.
func generateRandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, err
	}
	return b, nil
}
