// Package hash provides salted password hashing and verification.
// It uses Argon2id, a memory-hard algorithm, and encodes every parameter
// into the stored string so verification needs no out-of-band state.
package hash

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// ErrMalformedHash is returned when a stored hash cannot be decoded.
// This indicates corrupted stored data, not a wrong password.
var ErrMalformedHash = errors.New("malformed password hash")

// Argon2id parameters. Changing them only affects newly created hashes;
// existing hashes keep verifying with the parameters embedded in them.
const (
	defaultMemory      = 64 * 1024 // KiB
	defaultIterations  = 3
	defaultParallelism = 2
	saltLength         = 16
	keyLength          = 32
)

// Hasher hashes and verifies passwords.
type Hasher struct {
	memory      uint32
	iterations  uint32
	parallelism uint8
}

// NewHasher creates a Hasher with the default Argon2id parameters.
func NewHasher() *Hasher {
	return &Hasher{
		memory:      defaultMemory,
		iterations:  defaultIterations,
		parallelism: defaultParallelism,
	}
}

// Hash derives a salted Argon2id hash from the plaintext password and
// returns it in PHC string format:
//
//	$argon2id$v=19$m=65536,t=3,p=2$<salt>$<key>
func (h *Hasher) Hash(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, h.iterations, h.memory, h.parallelism, keyLength)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.memory,
		h.iterations,
		h.parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)
	return encoded, nil
}

// Verify recomputes the hash with the parameters embedded in encoded and
// compares in constant time. A wrong password returns (false, nil); an
// undecodable stored hash returns ErrMalformedHash.
func (h *Hasher) Verify(encoded, password string) (bool, error) {
	salt, key, iterations, memory, parallelism, err := decodeHash(encoded)
	if err != nil {
		return false, err
	}

	candidate := argon2.IDKey([]byte(password), salt, iterations, memory, parallelism, uint32(len(key)))

	return subtle.ConstantTimeCompare(key, candidate) == 1, nil
}

// decodeHash splits a PHC-format Argon2id string into its components.
func decodeHash(encoded string) (salt, key []byte, iterations, memory uint32, parallelism uint8, err error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return nil, nil, 0, 0, 0, ErrMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return nil, nil, 0, 0, 0, ErrMalformedHash
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &parallelism); err != nil {
		return nil, nil, 0, 0, 0, ErrMalformedHash
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, 0, 0, 0, ErrMalformedHash
	}
	key, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return nil, nil, 0, 0, 0, ErrMalformedHash
	}

	return salt, key, iterations, memory, parallelism, nil
}
