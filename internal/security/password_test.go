package security_test

import (
	"strings"
	"testing"

	"github.com/rahibvk/buyandsellmarketplace/internal/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHashAndVerify(t *testing.T) {
	h := security.NewPasswordHasher(bcrypt.MinCost)

	digest, err := h.Hash("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", digest)

	assert.True(t, h.Verify("s3cret-password", digest))
	assert.False(t, h.Verify("wrong-password", digest))
	assert.False(t, h.Verify("s3cret-password", "not-a-digest"))
}

func TestPasswordHashIsSalted(t *testing.T) {
	h := security.NewPasswordHasher(bcrypt.MinCost)

	first, err := h.Hash("same-input")
	require.NoError(t, err)
	second, err := h.Hash("same-input")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "digests embed a random salt")
	assert.True(t, h.Verify("same-input", first))
	assert.True(t, h.Verify("same-input", second))
}

func TestVerifySurvivesCostChange(t *testing.T) {
	old := security.NewPasswordHasher(bcrypt.MinCost)
	digest, err := old.Hash("password")
	require.NoError(t, err)

	// A hasher configured with a different cost still verifies old digests;
	// the cost is read from the digest itself.
	migrated := security.NewPasswordHasher(bcrypt.MinCost + 2)
	assert.True(t, migrated.Verify("password", digest))
}

func TestHashTokenHandlesLongSecrets(t *testing.T) {
	h := security.NewPasswordHasher(bcrypt.MinCost)

	// Signed tokens are far past bcrypt's 72-byte input limit
	token := strings.Repeat("header.payload.signature", 10)
	require.Greater(t, len(token), 72)

	digest, err := h.HashToken(token)
	require.NoError(t, err)

	assert.True(t, h.VerifyToken(token, digest))
	assert.False(t, h.VerifyToken(token+"x", digest))
}

func TestInvalidCostFallsBack(t *testing.T) {
	h := security.NewPasswordHasher(99)

	digest, err := h.Hash("password")
	require.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(digest))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
