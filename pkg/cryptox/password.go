package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Configuration for Argon2id hashing.
const (
	memory      = 19 * 1024 // Memory usage in KiB (19 MiB)
	iterations  = 2         // Iteration count
	parallelism = 1         // Number of threads
	keyLength   = 32        // Length of the generated hash
	saltLength  = 16        // Length of the salt
)

// Hasher is anything that can turn a plaintext password into a self-describing
// hash string and check a plaintext against one later.
type Hasher interface {
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches encoded. Malformed hashes are
	// reported as a mismatch, never as an error.
	Verify(plaintext, encoded string) bool
}

// Argon2Hasher hashes passwords with Argon2id and encodes them in PHC format.
// The zero value is usable and hashes without a pepper.
type Argon2Hasher struct {
	pepper string
}

// NewArgon2Hasher returns a hasher that appends pepper to every plaintext
// before hashing. An empty pepper disables peppering.
func NewArgon2Hasher(pepper string) *Argon2Hasher {
	return &Argon2Hasher{pepper: pepper}
}

var _ Hasher = (*Argon2Hasher)(nil)

// Hash generates a PHC-format Argon2id hash string including salt and parameters.
func (h *Argon2Hasher) Hash(plaintext string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	hash := argon2.IDKey(
		[]byte(plaintext+h.pepper),
		salt,
		iterations,
		memory,
		parallelism,
		keyLength,
	)
	b64Salt := base64.RawStdEncoding.EncodeToString(salt)
	b64Hash := base64.RawStdEncoding.EncodeToString(hash)

	// Return PHC-style encoded string
	return fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		memory,
		iterations,
		parallelism,
		b64Salt,
		b64Hash,
	), nil
}

// Verify compares a plaintext password against a PHC-style Argon2id hash.
func (h *Argon2Hasher) Verify(plaintext, encoded string) bool {
	p, err := parsePHC(encoded)
	if err != nil {
		return false
	}

	computed := argon2.IDKey(
		[]byte(plaintext+h.pepper),
		p.salt,
		p.iterations,
		p.memory,
		p.parallelism,
		uint32(len(p.digest)), // #nosec G115 - digest length is bounded by the parser
	)

	return subtle.ConstantTimeCompare(computed, p.digest) == 1
}

type phcParams struct {
	memory      uint32
	iterations  uint32
	parallelism uint8
	salt        []byte
	digest      []byte
}

// maxDigestLength stops a hostile hash string from asking argon2 for a huge
// output buffer.
const maxDigestLength = 1024

// parsePHC splits $argon2id$v=19$m=X,t=Y,p=Z$salt$hash into its parts.
func parsePHC(encoded string) (phcParams, error) {
	var p phcParams

	// ["", "argon2id", "v=19", "m=X,t=Y,p=Z", "salt", "hash"]
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 {
		return p, fmt.Errorf("invalid hash format: expected 6 parts, got %d", len(parts))
	}
	if parts[0] != "" || parts[1] != "argon2id" {
		return p, fmt.Errorf("invalid hash format: not argon2id")
	}
	if parts[2] != fmt.Sprintf("v=%d", argon2.Version) {
		return p, fmt.Errorf("invalid hash format: wrong version")
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.memory, &p.iterations, &p.parallelism); err != nil {
		return p, fmt.Errorf("invalid hash format: failed to parse parameters: %w", err)
	}
	if p.memory == 0 || p.iterations == 0 || p.parallelism == 0 {
		return p, fmt.Errorf("invalid hash format: zero parameter")
	}

	var err error
	if p.salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		return p, fmt.Errorf("invalid hash format: failed to decode salt: %w", err)
	}
	if p.digest, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil {
		return p, fmt.Errorf("invalid hash format: failed to decode hash: %w", err)
	}
	if len(p.digest) == 0 || len(p.digest) > maxDigestLength {
		return p, fmt.Errorf("invalid hash format: bad digest length %d", len(p.digest))
	}

	return p, nil
}
