// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"io"

	"infostore/internal/domain/service"

	"github.com/pkg/errors"
)

// saltedHasher is a concrete implementation of the CredentialService interface.
// It hashes the UTF-8 password bytes followed by a per-account random salt
// with SHA-256. There is no secret key; the defense is the salt's randomness
// and the hash's preimage resistance.
type saltedHasher struct{}

// NewSaltedHasher is the constructor for saltedHasher.
// It returns the implementation as a service.CredentialService interface.
func NewSaltedHasher() service.CredentialService {
	return &saltedHasher{}
}

// GenerateSalt returns service.SaltSize bytes from the system's CSPRNG.
func (h *saltedHasher) GenerateSalt() ([]byte, error) {
	salt := make([]byte, service.SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, errors.Wrap(err, "failed to read random salt")
	}

	return salt, nil
}

// Hash computes SHA-256(password || salt) and returns the 32-byte digest.
func (h *saltedHasher) Hash(password string, salt []byte) []byte {
	digest := sha256.New()
	digest.Write([]byte(password))
	digest.Write(salt)

	return digest.Sum(nil)
}

// Check recomputes the digest and compares it against the stored hash.
// The comparison is constant-time; both sides are fixed-length digests.
func (h *saltedHasher) Check(password string, salt, expected []byte) bool {
	computed := h.Hash(password, salt)

	return subtle.ConstantTimeCompare(computed, expected) == 1
}
