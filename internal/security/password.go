package security

import (
	"crypto/sha256"
	"encoding/base64"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher wraps bcrypt hashing for user passwords and for refresh-token
// secrets at rest. The cost is fixed at construction; verification reads the
// cost embedded in each digest, so old digests keep verifying after a cost
// change.
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash generates a bcrypt digest of a plain text password
func (h *PasswordHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	return string(bytes), err
}

// Verify compares a bcrypt digest with a plain text password
func (h *PasswordHasher) Verify(password, digest string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(password))
	return err == nil
}

// HashToken hashes a refresh-token secret for storage. Tokens exceed bcrypt's
// 72-byte input limit, so they are compressed through SHA-256 first; the
// resulting digest is still salted and cannot be looked up by equality.
func (h *PasswordHasher) HashToken(token string) (string, error) {
	return h.Hash(compressToken(token))
}

// VerifyToken compares a stored token digest with a presented token secret
func (h *PasswordHasher) VerifyToken(token, digest string) bool {
	return h.Verify(compressToken(token), digest)
}

func compressToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return base64.RawStdEncoding.EncodeToString(sum[:])
}
