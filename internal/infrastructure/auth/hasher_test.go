package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordnest/internal/shared/config"
)

// Low-cost parameters keep the test fast; the hasher does not care about
// parameter strength, only correctness.
func testHasher() *Argon2idPasswordHasher {
	return NewArgon2idPasswordHasher(config.PasswordConfig{
		ArgonTime:    1,
		ArgonMemory:  8 * 1024,
		ArgonThreads: 1,
	})
}

func TestArgon2idHashAndVerify(t *testing.T) {
	h := testHasher()

	hash, err := h.Hash("correct horse battery staple")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=8192,t=1,p=1$"))
	assert.NoError(t, h.Verify("correct horse battery staple", hash))
	assert.Error(t, h.Verify("wrong password", hash))
}

func TestArgon2idHashIsSalted(t *testing.T) {
	h := testHasher()

	first, err := h.Hash("same password")
	require.NoError(t, err)
	second, err := h.Hash("same password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NoError(t, h.Verify("same password", first))
	assert.NoError(t, h.Verify("same password", second))
}

func TestArgon2idVerifyRejectsMalformedHashes(t *testing.T) {
	h := testHasher()

	malformed := []string{
		"",
		"not a hash",
		"$argon2i$v=19$m=8192,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=18$m=8192,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=19$m=8192,t=1,p=1$!!!$a2V5",
		"$argon2id$v=19$m=8192,t=1,p=1$c2FsdA$!!!",
		"$argon2id$v=19$m=8192,t=1,p=1$c2FsdA",
		"$argon2id$v=19$garbage$c2FsdA$a2V5",
	}

	for _, hash := range malformed {
		assert.Error(t, h.Verify("any password", hash), "hash: %q", hash)
	}
}

func TestArgon2idDefaultParameters(t *testing.T) {
	h := NewArgon2idPasswordHasher(config.PasswordConfig{})

	assert.Equal(t, uint32(3), h.time)
	assert.Equal(t, uint32(128*1024), h.memory)
	assert.Equal(t, uint8(1), h.threads)
}
