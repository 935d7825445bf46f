package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcrypt_HashAndCompare(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)

	hash, err := h.Hash("secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", hash)

	assert.NoError(t, h.Compare(hash, "secret"))
	assert.ErrorIs(t, h.Compare(hash, "wrong"), ErrMismatch)
}

func TestBcrypt_SaltedHashesDiffer(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)

	a, err := h.Hash("secret")
	require.NoError(t, err)
	b, err := h.Hash("secret")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestBcrypt_CompareMalformedHash(t *testing.T) {
	err := NewBcrypt(bcrypt.MinCost).Compare("not-a-hash", "secret")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMismatch)
}

func TestNewBcrypt_InvalidCostFallsBack(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcrypt(100).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcrypt(0).cost)
	assert.Equal(t, bcrypt.MinCost, NewBcrypt(bcrypt.MinCost).cost)
}
