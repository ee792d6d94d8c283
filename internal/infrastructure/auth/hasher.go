package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"wordnest/internal/shared/config"
)

const (
	saltLength = 16
	keyLength  = 32
)

// Argon2idPasswordHasher hashes passwords with Argon2id and encodes them in
// the PHC string format, so the parameters travel with each hash and can be
// raised later without invalidating stored credentials.
type Argon2idPasswordHasher struct {
	time    uint32
	memory  uint32 // KiB
	threads uint8
}

func NewArgon2idPasswordHasher(cfg config.PasswordConfig) *Argon2idPasswordHasher {
	h := &Argon2idPasswordHasher{
		time:    cfg.ArgonTime,
		memory:  cfg.ArgonMemory,
		threads: cfg.ArgonThreads,
	}
	if h.time == 0 {
		h.time = 3
	}
	if h.memory == 0 {
		h.memory = 128 * 1024
	}
	if h.threads == 0 {
		h.threads = 1
	}
	return h
}

func (h *Argon2idPasswordHasher) Hash(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, h.time, h.memory, h.threads, keyLength)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.memory, h.time, h.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)
	return encoded, nil
}

// Verify checks a password against a stored PHC hash. Any malformed or
// unsupported hash verifies as a mismatch rather than an error, so callers
// get a single failure path regardless of the cause.
func (h *Argon2idPasswordHasher) Verify(password, hash string) error {
	salt, key, time, memory, threads, err := decodeHash(hash)
	if err != nil {
		return fmt.Errorf("password verification failed")
	}

	candidate := argon2.IDKey([]byte(password), salt, time, memory, threads, uint32(len(key)))
	if subtle.ConstantTimeCompare(candidate, key) != 1 {
		return fmt.Errorf("password verification failed")
	}
	return nil
}

func decodeHash(hash string) (salt, key []byte, time, memory uint32, threads uint8, err error) {
	parts := strings.Split(hash, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return nil, nil, 0, 0, 0, fmt.Errorf("malformed argon2id hash")
	}

	var version int
	if _, err = fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, nil, 0, 0, 0, fmt.Errorf("malformed argon2id version: %w", err)
	}
	if version != argon2.Version {
		return nil, nil, 0, 0, 0, fmt.Errorf("unsupported argon2 version: %d", version)
	}

	if _, err = fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return nil, nil, 0, 0, 0, fmt.Errorf("malformed argon2id parameters: %w", err)
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, 0, 0, 0, fmt.Errorf("malformed argon2id salt: %w", err)
	}
	key, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return nil, nil, 0, 0, 0, fmt.Errorf("malformed argon2id key: %w", err)
	}
	if len(key) == 0 {
		return nil, nil, 0, 0, 0, fmt.Errorf("empty argon2id key")
	}
	return salt, key, time, memory, threads, nil
}
