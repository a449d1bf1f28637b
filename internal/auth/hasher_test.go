package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	h := NewHasher()

	hash, err := h.Hash("admin123")
	require.NoError(t, err)

	assert.NotEqual(t, "admin123", hash, "hash must never equal the plaintext")
	assert.NoError(t, h.Verify(hash, "admin123"))
	assert.Error(t, h.Verify(hash, "admin124"))
}

func TestHashIsSalted(t *testing.T) {
	h := NewHasher()

	first, err := h.Hash("same-secret")
	require.NoError(t, err)
	second, err := h.Hash("same-secret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "two hashes of one secret must differ")
}
