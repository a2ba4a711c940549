package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasher()

	hash, err := hasher.Hash("mic-check-12")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "mic-check-12", hash)

	assert.True(t, hasher.Check("mic-check-12", hash))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasher()

	hash, err := hasher.Hash("mic-check-12")
	require.NoError(t, err)

	assert.True(t, hasher.Check("mic-check-12", hash))
	assert.False(t, hasher.Check("wrong-pass", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check("mic-check-12", "invalid_hash"))
}
