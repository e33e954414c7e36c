package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	h := NewPasswordHasher()

	hash, err := h.Hash("hunter2")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

	ok, err := h.Verify(hash, "hunter2")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify(hash, "hunter3")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPasswordHashSalted(t *testing.T) {
	h := NewPasswordHasher()
	a, err := h.Hash("same")
	require.NoError(t, err)
	b, err := h.Hash("same")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestVerifyMalformedHash(t *testing.T) {
	h := NewPasswordHasher()
	for _, bad := range []string{"", "plaintext", "$argon2id$nope", "$bcrypt$x$y$z$w$v"} {
		_, err := h.Verify(bad, "pw")
		assert.ErrorIs(t, err, ErrBadHashFormat, "hash %q", bad)
	}
}
