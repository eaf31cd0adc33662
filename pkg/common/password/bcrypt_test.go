package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewBcryptHasher_ClampsCost(t *testing.T) {
	assert.Equal(t, bcrypt.MinCost, NewBcryptHasher(1).Cost())
	assert.Equal(t, DefaultCost, NewBcryptHasher(0).Cost())
}

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("secretpw")
	require.NoError(t, err)
	assert.NotContains(t, hash, "secretpw")

	ok, err := h.Verify("secretpw", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("secretPW", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_SaltsEveryHash(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	first, err := h.Hash("same-secret")
	require.NoError(t, err)
	second, err := h.Hash("same-secret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_LongSecret(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	long := strings.Repeat("x", 100)

	hash, err := h.Hash(long)
	require.NoError(t, err)

	ok, err := h.Verify(long, hash)
	require.NoError(t, err)
	assert.True(t, ok)

	// Differences past byte 72 still matter.
	ok, err = h.Verify(strings.Repeat("x", 99)+"y", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_VerifyMalformedHash(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	ok, err := h.Verify("secretpw", "not-a-hash")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_Burn(t *testing.T) {
	NewBcryptHasher(bcrypt.MinCost).Burn("anything")
}
